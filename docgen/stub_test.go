package docgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitty-conf/docgen/docgen"
)

func TestIsStubDoc(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		want bool
	}{
		"empty is not a stub": {
			text: "",
			want: false,
		},
		"bare forwarding reference": {
			text: "See launch for details.",
			want: true,
		},
		"forwarding reference without period": {
			text: "See the scrolling docs for details",
			want: true,
		},
		"forwarding reference with real content after": {
			text: "See launch for details. Opens a new window with the given command line.",
			want: false,
		},
		"short text without reference": {
			text: "Open a new tab.",
			want: true,
		},
		"substantial text": {
			text: "Scrolls the window contents up by one line.",
			want: false,
		},
		"see without for details clause": {
			text: "See the kittens documentation, which explains this at considerable length.",
			want: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docgen.IsStubDoc(tc.text))
		})
	}
}
