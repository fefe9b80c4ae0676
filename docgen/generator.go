package docgen

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kitty-conf/docgen/kittydef"
	"github.com/kitty-conf/docgen/rst"
)

// Sentinel errors returned by the generator and the CLI around it.
var (
	ErrInvalidDefinition = errors.New("invalid definition")
	ErrReadInput         = errors.New("read input")
	ErrWriteOutput       = errors.New("write output")
)

// colorOrNoneParser is the descriptor parser identity that accepts the
// literal value none in addition to colors.
const colorOrNoneParser = "to_color_or_none"

// Generator compiles a descriptor tree into a [Document].
type Generator struct {
	keyNames []string
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{keyNames: DefaultKeyNames()}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithKeyNames overrides the key-name completion tokens emitted in the
// document.
func WithKeyNames(names ...string) Option {
	return func(g *Generator) {
		g.keyNames = names
	}
}

// Generate compiles def into a flat documentation artifact. Options and
// multi-options keep the definition's insertion order; actions are sorted
// by name. Name collisions within a category, or across options,
// multi-options, and directives, are fatal.
func (g *Generator) Generate(def *kittydef.Definition) (*Document, error) {
	doc := &Document{
		Options:      []OptionDoc{},
		MultiOptions: []MultiOptionDoc{},
		Actions:      []ActionDoc{},
		Directives:   []DirectiveDoc{},
		MapFlags:     []MapFlagDoc{},
		KeyNames:     g.keyNames,
	}

	// Names must be unique across options, multi-options, and directives.
	taken := make(map[string]string)

	claim := func(name, category string) error {
		if prev, ok := taken[name]; ok {
			return fmt.Errorf("%w: name %s appears in both %s and %s",
				ErrInvalidDefinition, name, prev, category)
		}

		taken[name] = category

		return nil
	}

	for _, opt := range def.Options {
		switch opt.Kind {
		case "", kittydef.KindSingle:
			err := claim(opt.Name, "options")
			if err != nil {
				return nil, err
			}

			doc.Options = append(doc.Options, buildOption(opt))

		case kittydef.KindMulti:
			err := claim(opt.Name, "multi_options")
			if err != nil {
				return nil, err
			}

			doc.MultiOptions = append(doc.MultiOptions, buildMultiOption(opt))
		}
	}

	doc.Actions = buildActions(def)

	directives, err := buildDirectives(def, claim)
	if err != nil {
		return nil, err
	}

	doc.Directives = directives

	for _, field := range def.KeyMapFields {
		doc.MapFlags = append(doc.MapFlags, buildMapFlag(field))
	}

	return doc, nil
}

// buildOption converts a single-value option descriptor, attaching the
// best-effort choices list.
func buildOption(opt kittydef.Option) OptionDoc {
	out := OptionDoc{
		Name:    opt.Name,
		Default: opt.Default,
		Group:   opt.Group,
		Doc:     rst.Strip(opt.LongText),
	}

	choices := dedupe(opt.Choices)

	if len(choices) == 0 && opt.LongText != "" {
		choices = ExtractValues(opt.Name, opt.LongText)
	}

	// Boolean options document themselves through their default.
	if len(choices) == 0 && (opt.Default == "yes" || opt.Default == "no") {
		choices = []string{"yes", "no"}
	}

	if !slices.Contains(choices, "none") {
		if opt.Parser == colorOrNoneParser || NoneIsSpecial(opt.Name, opt.LongText) {
			choices = append(choices, "none")
		}
	}

	out.Choices = choices

	return out
}

func buildMultiOption(opt kittydef.Option) MultiOptionDoc {
	out := MultiOptionDoc{
		Name:  opt.Name,
		Group: opt.Group,
		Doc:   rst.Strip(opt.LongText),
	}

	if len(opt.Items) > 0 {
		out.Default = opt.Items[0].Default
	}

	return out
}

// buildActions merges the primary action list with shortcut-table aliases,
// runs the enrichment pass, and returns the records sorted by name.
func buildActions(def *kittydef.Definition) []ActionDoc {
	actionMap := make(map[string]*ActionDoc)

	for _, a := range def.Actions {
		actionMap[a.Name] = &ActionDoc{
			Name:  a.Name,
			Short: rst.Strip(a.ShortHelp),
			Doc:   rst.Strip(a.LongHelp),
		}
	}

	// The shortcut table carries aliases the primary list lacks
	// (clear_screen, decrease_font_size, ...).
	for name, mappings := range def.Shortcuts {
		if _, ok := actionMap[name]; ok || len(mappings) == 0 {
			continue
		}

		m := mappings[0]
		actionMap[name] = &ActionDoc{
			Name:  name,
			Short: rst.Strip(m.ShortText),
			Doc:   rst.Strip(m.LongText),
		}
	}

	EnrichStubActions(actionMap, Sources{
		LaunchSpec: func() (string, bool) {
			return def.LaunchSpec, def.LaunchSpec != ""
		},
		Shortcuts: def.Shortcuts,
		RemoteCommand: func(name string) (string, bool) {
			desc, ok := def.RemoteCommands[name]
			if !ok {
				slog.Debug("no remote command description", slog.String("action", name))
			}

			return desc, ok
		},
	})

	actions := make([]ActionDoc, 0, len(actionMap))
	for _, a := range actionMap {
		actions = append(actions, *a)
	}

	slices.SortFunc(actions, func(a, b ActionDoc) int {
		return strings.Compare(a.Name, b.Name)
	})

	return actions
}

// buildDirectives collects map, mouse_map, and the include mechanisms. The
// map directive's doc comes from the start text of the top-level shortcuts
// group; mouse_map's from the mouse.mousemap group located by tree walk.
func buildDirectives(def *kittydef.Definition, claim func(name, category string) error) ([]DirectiveDoc, error) {
	directives := []DirectiveDoc{}

	add := func(d DirectiveDoc) error {
		err := claim(d.Name, "directives")
		if err != nil {
			return err
		}

		directives = append(directives, d)

		return nil
	}

	if def.Groups != nil {
		for _, group := range def.Groups.Items {
			if group.Name == "shortcuts" && group.StartText != "" {
				err := add(DirectiveDoc{Name: "map", Doc: rst.Strip(group.StartText)})
				if err != nil {
					return nil, err
				}

				break
			}
		}
	}

	if mm := def.Groups.Find("mouse.mousemap"); mm != nil && mm.StartText != "" {
		err := add(DirectiveDoc{Name: "mouse_map", Doc: rst.Strip(mm.StartText)})
		if err != nil {
			return nil, err
		}
	}

	// Include mechanisms are config parser syntax; no docs exist for them
	// in the definition.
	for _, key := range def.IncludeKeys {
		err := add(DirectiveDoc{Name: key})
		if err != nil {
			return nil, err
		}
	}

	return directives, nil
}

// buildMapFlag converts a key-map field descriptor to its command-line
// flag form: when_focus_on becomes --when-focus-on.
func buildMapFlag(field kittydef.KeyMapField) MapFlagDoc {
	return MapFlagDoc{
		Name:    "--" + strings.ReplaceAll(field.Name, "_", "-"),
		Choices: dedupe(field.Choices),
		Default: field.Default,
	}
}

// dedupe removes duplicate values, preserving first-seen order. Nil in,
// nil out.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	var (
		out  []string
		seen = make(map[string]bool)
	)

	for _, v := range values {
		if seen[v] {
			continue
		}

		seen[v] = true
		out = append(out, v)
	}

	return out
}
