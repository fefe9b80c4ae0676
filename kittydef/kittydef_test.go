package kittydef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty-conf/docgen/kittydef"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	data := []byte(`
options:
  - name: scrollback_lines
    kind: single
    default: "2000"
    group: Scrollback
  - name: env
    kind: multi
    group: Advanced
actions:
  - name: launch
    short_help: Launch a new window
include_keys: [include, globinclude]
remote_commands:
  resize_window: Resize the specified windows.
`)

	def, err := kittydef.Load(data)
	require.NoError(t, err)

	require.Len(t, def.Options, 2)
	assert.Equal(t, "scrollback_lines", def.Options[0].Name)
	assert.Equal(t, kittydef.KindMulti, def.Options[1].Kind)
	require.Len(t, def.Actions, 1)
	assert.Equal(t, []string{"include", "globinclude"}, def.IncludeKeys)
	assert.Equal(t, "Resize the specified windows.", def.RemoteCommands["resize_window"])
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		data string
	}{
		"not yaml": {
			data: "options: [unclosed",
		},
		"option without name": {
			data: "options:\n  - kind: single\n",
		},
		"unknown option kind": {
			data: "options:\n  - name: env\n    kind: repeated\n",
		},
		"action without name": {
			data: "actions:\n  - short_help: something\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := kittydef.Load([]byte(tc.data))
			assert.ErrorIs(t, err, kittydef.ErrInvalidDefinition)
		})
	}
}

func TestGroupFind(t *testing.T) {
	t.Parallel()

	root := &kittydef.Group{
		Name: "",
		Items: []*kittydef.Group{
			{Name: "shortcuts"},
			{
				Name: "mouse",
				Items: []*kittydef.Group{
					{Name: "mouse.mousemap", Title: "Mouse actions"},
				},
			},
		},
	}

	found := root.Find("mouse.mousemap")
	require.NotNil(t, found)
	assert.Equal(t, "Mouse actions", found.Title)

	assert.Nil(t, root.Find("missing"))

	var nilGroup *kittydef.Group
	assert.Nil(t, nilGroup.Find("anything"))
}
