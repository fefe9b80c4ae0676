package rst

import (
	"regexp"
	"strings"
)

// rule is a single rewrite in the strip cascade. When fn is set it is used
// instead of repl, receiving each whole match.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
	fn   func(match string) string
}

func (r rule) apply(text string) string {
	if r.fn != nil {
		return r.re.ReplaceAllStringFunc(text, r.fn)
	}

	return r.re.ReplaceAllString(text, r.repl)
}

// danglingTargetRE matches an angle-bracketed reference target and any
// whitespace before it, including line-wrapped targets.
var danglingTargetRE = regexp.MustCompile(`\s*<([a-z@/][\w. @+=/:-]*)>`)

// stripDanglingTarget removes "text <target>" style RST targets, but keeps
// URL-shaped targets verbatim. RE2 has no lookahead, so the URL exclusion
// lives here rather than in the pattern.
func stripDanglingTarget(match string) string {
	sub := danglingTargetRE.FindStringSubmatch(match)
	target := sub[1]

	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return match
	}

	return ""
}

// rules is the ordered strip cascade. Order is load-bearing: the verbatim
// rule must consume :code:/:literal: roles before the generic role rule, and
// the note directive must be rewritten before the trailing double-colon rule
// sees it.
var rules = []rule{
	{
		// :code:`content` / :literal:`content` keep their content as-is,
		// angle brackets included.
		name: "verbatim",
		re:   regexp.MustCompile(":(?:code|literal):`([^`]*)`"),
		repl: "$1",
	},
	{
		// :role:`display <target>` keeps the display text, drops the target.
		name: "xref",
		re:   regexp.MustCompile(":[a-z]+:`([^`]*?)\\s*<[^>]+>`"),
		repl: "$1",
	},
	{
		// :role:`value`, optionally with the ~ short-form sigil.
		name: "role",
		re:   regexp.MustCompile(":[a-z]+:`~?([^`]*)`"),
		repl: "$1",
	},
	{
		// Dangling "text <target>" targets, unless the target is a URL.
		name: "dangling-target",
		re:   danglingTargetRE,
		fn:   stripDanglingTarget,
	},
	{
		// ``code`` spans.
		name: "literal-span",
		re:   regexp.MustCompile("``([^`]*)``"),
		repl: "$1",
	},
	{
		// `ref`_ hyperlink references.
		name: "hyperlink-ref",
		re:   regexp.MustCompile("`([^`]*)`_"),
		repl: "$1",
	},
	{
		name: "note-directive",
		re:   regexp.MustCompile(`\.\. note::`),
		repl: "Note:",
	},
	{
		name: "versionadded-directive",
		re:   regexp.MustCompile(`\.\. versionadded:: (\S+)`),
		repl: "(added in $1)",
	},
	{
		// The directive line only; the literal code lines below it stay.
		name: "code-block-directive",
		re:   regexp.MustCompile(`\.\. code-block::.*`),
		repl: "",
	},
	{
		// |word| substitution references.
		name: "substitution",
		re:   regexp.MustCompile(`\|(\w+)\|`),
		repl: "$1",
	},
	{
		// Literal-block marker "tasks::" becomes "tasks:".
		name: "double-colon",
		re:   regexp.MustCompile(`(\w)::`),
		repl: "${1}:",
	},
}

// Strip converts a documentation blob in the restricted RST dialect to plain
// text. Empty input yields empty output. Plain text is a fixed point.
func Strip(text string) string {
	if text == "" {
		return ""
	}

	for _, r := range rules {
		text = r.apply(text)
	}

	return strings.TrimSpace(text)
}
