package docgen

import (
	"regexp"
	"strings"

	"github.com/kitty-conf/docgen/flagspec"
	"github.com/kitty-conf/docgen/kittydef"
	"github.com/kitty-conf/docgen/rst"
)

// Sources bundles the optional secondary documentation sources consulted by
// [EnrichStubActions]. Every lookup reports whether it had an answer; a
// source that is absent or misses a key is never an error, the record just
// keeps its prior value. Nil funcs disable the corresponding source.
type Sources struct {
	// LaunchSpec returns the options spec of the launch action.
	LaunchSpec func() (string, bool)
	// Shortcuts is the key-binding table, which carries richer long texts
	// for some actions.
	Shortcuts map[string][]kittydef.Shortcut
	// RemoteCommand returns the description of a remote-control command.
	RemoteCommand func(name string) (string, bool)
}

// remoteCommandAliases maps action names to remote-command names where the
// two differ.
var remoteCommandAliases = map[string]string{
	"disable_ligatures_in":  "disable_ligatures",
	"start_resizing_window": "resize_window",
}

var (
	trailingSeeRE = regexp.MustCompile(`\.?\s*See\s+.+$`)
	leadingSeeRE  = regexp.MustCompile(`^See\b`)
)

// EnrichStubActions backfills actions whose doc is a stub, in priority
// order: the launch flag spec for the launch action, the shortcut table's
// long texts, then remote-command descriptions (translated through
// remoteCommandAliases). Afterwards it unconditionally removes trailing
// "See X" clauses from every short text, and leading "See ... for details"
// clauses from docs, keeping whatever content follows.
func EnrichStubActions(actions map[string]*ActionDoc, src Sources) {
	enrichLaunch(actions, src)
	enrichFromShortcuts(actions, src)
	enrichFromRemoteCommands(actions, src)

	// Bare "See X" references are useless in hover text: they are not
	// links there.
	for _, a := range actions {
		a.Short = strings.TrimSpace(trailingSeeRE.ReplaceAllString(a.Short, ""))

		if a.Doc != "" && leadingSeeRE.MatchString(a.Doc) {
			a.Doc = strings.TrimSpace(stubPrefixRE.ReplaceAllString(a.Doc, ""))
		}
	}
}

func enrichLaunch(actions map[string]*ActionDoc, src Sources) {
	a, ok := actions["launch"]
	if !ok || !IsStubDoc(a.Doc) || src.LaunchSpec == nil {
		return
	}

	spec, ok := src.LaunchSpec()
	if !ok {
		return
	}

	entries := flagspec.Parse(spec)
	if len(entries) > 0 {
		a.Doc = "Flags:\n" + flagspec.Format(entries)
	}
}

func enrichFromShortcuts(actions map[string]*ActionDoc, src Sources) {
	for name, mappings := range src.Shortcuts {
		a, ok := actions[name]
		if !ok || !IsStubDoc(a.Doc) || len(mappings) == 0 {
			continue
		}

		m := mappings[0]
		if m.LongText != "" && !IsStubDoc(m.LongText) {
			a.Doc = rst.Strip(m.LongText)
		}
	}
}

func enrichFromRemoteCommands(actions map[string]*ActionDoc, src Sources) {
	if src.RemoteCommand == nil {
		return
	}

	for name, a := range actions {
		if !IsStubDoc(a.Doc) {
			continue
		}

		rcName := name
		if alias, ok := remoteCommandAliases[name]; ok {
			rcName = alias
		}

		desc, ok := src.RemoteCommand(rcName)
		if ok {
			a.Doc = rst.Strip(desc)
		}
	}
}
