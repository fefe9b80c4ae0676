package kittydef

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrInvalidDefinition indicates a structurally invalid descriptor dump.
var ErrInvalidDefinition = errors.New("invalid definition")

// Option kinds. An empty kind is treated as [KindSingle].
const (
	KindSingle = "single"
	KindMulti  = "multi"
)

// Definition is the root of the descriptor tree.
type Definition struct {
	Options        []Option              `yaml:"options"`
	Actions        []Action              `yaml:"actions"`
	Shortcuts      map[string][]Shortcut `yaml:"shortcuts"`
	Groups         *Group                `yaml:"groups"`
	IncludeKeys    []string              `yaml:"include_keys"`
	LaunchSpec     string                `yaml:"launch_spec"`
	RemoteCommands map[string]string     `yaml:"remote_commands"`
	KeyMapFields   []KeyMapField         `yaml:"key_map_fields"`
}

// Option is one configuration option descriptor. Kind discriminates between
// single-value and multi-value options; it does not travel past this
// package.
type Option struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Default  string   `yaml:"default"`
	Choices  []string `yaml:"choices"`
	Parser   string   `yaml:"parser"`
	Group    string   `yaml:"group"`
	LongText string   `yaml:"long_text"`
	Items    []Item   `yaml:"items"`
}

// Item is one accumulated value of a multi-value option.
type Item struct {
	Default string `yaml:"default"`
}

// Action is one mappable action descriptor.
type Action struct {
	Name      string `yaml:"name"`
	ShortHelp string `yaml:"short_help"`
	LongHelp  string `yaml:"long_help"`
}

// Shortcut is one entry of the key-binding table, carrying the binding's own
// documentation blobs.
type Shortcut struct {
	ShortText string `yaml:"short_text"`
	LongText  string `yaml:"long_text"`
}

// Group is a node of the settings group tree.
type Group struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	StartText string   `yaml:"start_text"`
	Items     []*Group `yaml:"items"`
}

// Find returns the first group named name in a depth-first walk rooted at g,
// or nil.
func (g *Group) Find(name string) *Group {
	if g == nil {
		return nil
	}

	if g.Name == name {
		return g
	}

	for _, child := range g.Items {
		if found := child.Find(name); found != nil {
			return found
		}
	}

	return nil
}

// KeyMapField describes one field of the key-mapping options dataclass,
// with its accepted literal values when the field is enumerated.
type KeyMapField struct {
	Name    string   `yaml:"name"`
	Choices []string `yaml:"choices"`
	Default string   `yaml:"default"`
}

// Load decodes and validates a descriptor dump.
func Load(data []byte) (*Definition, error) {
	var def Definition

	err := yaml.Unmarshal(data, &def)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	err = def.validate()
	if err != nil {
		return nil, err
	}

	return &def, nil
}

func (d *Definition) validate() error {
	for i, opt := range d.Options {
		if opt.Name == "" {
			return fmt.Errorf("%w: option %d has no name", ErrInvalidDefinition, i)
		}

		switch opt.Kind {
		case "", KindSingle, KindMulti:
		default:
			return fmt.Errorf("%w: option %s has unknown kind %q",
				ErrInvalidDefinition, opt.Name, opt.Kind)
		}
	}

	for i, a := range d.Actions {
		if a.Name == "" {
			return fmt.Errorf("%w: action %d has no name", ErrInvalidDefinition, i)
		}
	}

	return nil
}
