package docgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kitty-conf/docgen/docgen"
	"github.com/kitty-conf/docgen/kittydef"
)

func TestEnrichStubActionsLaunchSpec(t *testing.T) {
	t.Parallel()

	actions := map[string]*docgen.ActionDoc{
		"launch": {Name: "launch", Short: "Launch a window", Doc: "See launch for details."},
	}

	docgen.EnrichStubActions(actions, docgen.Sources{
		LaunchSpec: func() (string, bool) {
			return "--type\nchoices=window,tab\nThe window type.\n--hold", true
		},
	})

	want := strings.Join([]string{
		"Flags:",
		"  --type=window|tab",
		"    The window type.",
		"  --hold",
	}, "\n")

	assert.Equal(t, want, actions["launch"].Doc)
}

func TestEnrichStubActionsLaunchSpecUnavailable(t *testing.T) {
	t.Parallel()

	actions := map[string]*docgen.ActionDoc{
		"launch": {Name: "launch", Doc: "See launch for details."},
	}

	docgen.EnrichStubActions(actions, docgen.Sources{
		LaunchSpec: func() (string, bool) { return "", false },
	})

	// Lookup missed, so the stub keeps its prior value minus the
	// forwarding clause.
	assert.Equal(t, "", actions["launch"].Doc)
}

func TestEnrichStubActionsLaunchNotStub(t *testing.T) {
	t.Parallel()

	doc := "Opens a new window, tab, or OS window with the given command."
	actions := map[string]*docgen.ActionDoc{
		"launch": {Name: "launch", Doc: doc},
	}

	docgen.EnrichStubActions(actions, docgen.Sources{
		LaunchSpec: func() (string, bool) { return "--type\nThe type.", true },
	})

	assert.Equal(t, doc, actions["launch"].Doc)
}

func TestEnrichStubActionsFromShortcuts(t *testing.T) {
	t.Parallel()

	actions := map[string]*docgen.ActionDoc{
		"send_text": {Name: "send_text", Doc: "See send_text for details."},
		"new_tab":   {Name: "new_tab", Doc: "See new_tab for details."},
	}

	docgen.EnrichStubActions(actions, docgen.Sources{
		Shortcuts: map[string][]kittydef.Shortcut{
			"send_text": {{
				LongText: "Send the specified :code:`text` to the active window on a key press.",
			}},
			// A stub long text must not replace the action's doc.
			"new_tab": {{
				LongText: "See tabs for details.",
			}},
		},
	})

	assert.Equal(t,
		"Send the specified text to the active window on a key press.",
		actions["send_text"].Doc)
	assert.Equal(t, "", actions["new_tab"].Doc)
}

func TestEnrichStubActionsFromRemoteCommands(t *testing.T) {
	t.Parallel()

	actions := map[string]*docgen.ActionDoc{
		"disable_ligatures_in": {
			Name: "disable_ligatures_in",
			Doc:  "See disable_ligatures for details.",
		},
		"scroll_window": {
			Name: "scroll_window",
			Doc:  "See scrolling for details.",
		},
	}

	lookups := map[string]string{
		"disable_ligatures": "Control ligature rendering for the specified windows.",
	}

	docgen.EnrichStubActions(actions, docgen.Sources{
		RemoteCommand: func(name string) (string, bool) {
			desc, ok := lookups[name]

			return desc, ok
		},
	})

	// The alias map translates the action name to the command name.
	assert.Equal(t,
		"Control ligature rendering for the specified windows.",
		actions["disable_ligatures_in"].Doc)
	// No command found: the record keeps its prior value minus the
	// forwarding clause.
	assert.Equal(t, "", actions["scroll_window"].Doc)
}

func TestEnrichStubActionsFinalCleanup(t *testing.T) {
	t.Parallel()

	actions := map[string]*docgen.ActionDoc{
		"scroll_line_up": {
			Name:  "scroll_line_up",
			Short: "Scroll up by one line. See scrolling.",
			Doc:   "See scrolling for details. Scrolls the window contents up by one line.",
		},
		"copy_to_clipboard": {
			Name:  "copy_to_clipboard",
			Short: "Copy the selected text to the clipboard",
			Doc:   "",
		},
	}

	docgen.EnrichStubActions(actions, docgen.Sources{})

	assert.Equal(t, "Scroll up by one line", actions["scroll_line_up"].Short)
	assert.Equal(t,
		"Scrolls the window contents up by one line.",
		actions["scroll_line_up"].Doc)

	assert.Equal(t, "Copy the selected text to the clipboard", actions["copy_to_clipboard"].Short)
	assert.Equal(t, "", actions["copy_to_clipboard"].Doc)
}
