package flagspec

import (
	"regexp"
	"strings"

	"github.com/kitty-conf/docgen/rst"
)

// Entry is one parsed flag: the rendered signature (synonyms joined by
// ", ", plus any choice or repeatable decoration) and a one-line plain-text
// description.
type Entry struct {
	Flags string
	Desc  string
}

// placeholder is a sentinel line kitty inserts for help formatting; it
// carries no content.
const placeholder = "#placeholder_for_formatting#"

var (
	metaLineRE      = regexp.MustCompile(`^(type|default|choices|completion)=`)
	firstSentenceRE = regexp.MustCompile(`^([^.]+\.)\s`)
)

// Parse parses an options spec into its flag entries. An empty spec yields
// nil.
func Parse(spec string) []Entry {
	if spec == "" {
		return nil
	}

	var (
		entries   []Entry
		flags     string
		started   bool
		meta      map[string]string
		descLines []string
	)

	flush := func() {
		if !started {
			return
		}

		entries = append(entries, newEntry(flags, meta, descLines))
	}

	for _, line := range strings.Split(spec, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == placeholder {
			continue
		}

		switch {
		case strings.HasPrefix(line, "--"):
			flush()

			// Synonyms on the flag line: "--long -s" -> "--long, -s".
			flags = strings.Join(strings.Fields(line), ", ")
			started = true
			meta = make(map[string]string)
			descLines = nil

		case started && metaLineRE.MatchString(trimmed):
			key, val, _ := strings.Cut(trimmed, "=")
			meta[key] = val

		case started:
			descLines = append(descLines, line)
		}
	}

	flush()

	return entries
}

// newEntry renders one accumulated flag block. The description is stripped
// of markup, reduced to its first paragraph on a single line, and truncated
// to its first sentence when longer than 120 characters.
func newEntry(flags string, meta map[string]string, descLines []string) Entry {
	desc := rst.Strip(strings.TrimSpace(strings.Join(descLines, "\n")))

	line := ""
	if desc != "" {
		line = rst.CollapseSpace(rst.FirstParagraph(desc))
	}

	if len(line) > 120 {
		if m := firstSentenceRE.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
	}

	sig := flags

	switch {
	case meta["choices"] != "":
		sig += "=" + strings.Join(strings.Split(meta["choices"], ","), "|")
	case meta["type"] == "list":
		sig += " (repeatable)"
	}

	if meta["default"] != "" {
		line += " (default: " + meta["default"] + ")"
	}

	return Entry{Flags: sig, Desc: line}
}

// Format lays entries out as two-line blocks: the flag signature indented,
// then its description (when non-empty) indented one level further.
func Format(entries []Entry) string {
	var lines []string

	for _, e := range entries {
		lines = append(lines, "  "+e.Flags)
		if e.Desc != "" {
			lines = append(lines, "    "+e.Desc)
		}
	}

	return strings.Join(lines, "\n")
}
