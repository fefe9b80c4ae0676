package docgen

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kitty-conf/docgen/rst"
)

const (
	// Extracted choice lists need at least this many distinct values.
	minExtractedValues = 2
	// Values at or above this many runes are likely prose, not enum tokens.
	maxValueLen = 30
)

var (
	// triggerRE finds the sentence announcing an enumeration of legal
	// values.
	triggerRE = regexp.MustCompile(
		`(?i)[^.]*(?:can be|one of|valid values|set to one|allowed values)[^.]*\.`)

	optRefRE    = regexp.MustCompile(":opt:`(\\w+)`")
	codeTokenRE = regexp.MustCompile(":code:`([^`]+)`")
)

// ExtractValues heuristically extracts the enumerated legal values for the
// option optName from its raw documentation. It inspects only the trigger
// sentence of the first paragraph, and bails out when that sentence
// cross-references a different option, since the enumeration then likely
// belongs to the other option (url_color's doc mentions url_style's values).
//
// A nil result means no reliable enumeration was found; that is the normal
// outcome for most options.
func ExtractValues(optName, text string) []string {
	if text == "" {
		return nil
	}

	sentence := triggerRE.FindString(rst.FirstParagraph(text))
	if sentence == "" {
		return nil
	}

	for _, m := range optRefRE.FindAllStringSubmatch(sentence, -1) {
		if m[1] != optName {
			return nil
		}
	}

	var (
		values []string
		seen   = make(map[string]bool)
	)

	for _, m := range codeTokenRE.FindAllStringSubmatch(sentence, -1) {
		if seen[m[1]] {
			continue
		}

		seen[m[1]] = true
		values = append(values, m[1])
	}

	if len(values) < minExtractedValues {
		return nil
	}

	for _, v := range values {
		if utf8.RuneCountInString(v) >= maxValueLen {
			return nil
		}
	}

	return values
}

// NoneIsSpecial reports whether the documentation describes the literal
// value none as a settable value for optName itself. A sentence mentioning
// :code:`none` qualifies when every option it cross-references is optName
// (vacuously, when it references no option at all).
func NoneIsSpecial(optName, rawDoc string) bool {
	if rawDoc == "" {
		return false
	}

	for _, sentence := range rst.SplitSentences(rawDoc) {
		if !strings.Contains(sentence, ":code:`none`") {
			continue
		}

		qualifies := true

		for _, m := range optRefRE.FindAllStringSubmatch(sentence, -1) {
			if m[1] != optName {
				qualifies = false

				break
			}
		}

		if qualifies {
			return true
		}
	}

	return false
}
