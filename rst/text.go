package rst

import "strings"

// FirstParagraph returns the text before the first blank-line break, or the
// whole text if there is none.
func FirstParagraph(text string) string {
	if i := strings.Index(text, "\n\n"); i >= 0 {
		return text[:i]
	}

	return text
}

// CollapseSpace collapses all whitespace runs to single spaces and trims the
// result.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitSentences splits text after terminal punctuation (., !, ?) followed
// by whitespace. The punctuation stays with the preceding sentence; the
// whitespace is dropped.
func SplitSentences(text string) []string {
	var out []string

	start := 0
	i := 0

	for i < len(text) {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isSpace(text[i+1]) {
			out = append(out, text[start:i+1])

			i++
			for i < len(text) && isSpace(text[i]) {
				i++
			}

			start = i

			continue
		}

		i++
	}

	if start < len(text) {
		out = append(out, text[start:])
	}

	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
