package docgen

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Anything shorter than this after removing the forwarding clause carries no
// real content.
const stubContentLen = 20

// stubPrefixRE matches one leading "See ... for details." forwarding clause.
var stubPrefixRE = regexp.MustCompile(`^See\b.*?\bfor details\.?\s*`)

// IsStubDoc reports whether text is a low-content forwarding reference.
// Empty text is not a stub: absence is a different condition than
// low-content.
func IsStubDoc(text string) bool {
	if text == "" {
		return false
	}

	rest := strings.TrimSpace(stubPrefixRE.ReplaceAllString(text, ""))

	return utf8.RuneCountInString(rest) < stubContentLen
}
