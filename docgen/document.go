package docgen

// OptionDoc documents a single-value configuration option. Choices is
// present only when a legal value set is known.
type OptionDoc struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Group   string   `json:"group"`
	Doc     string   `json:"doc"`
	Choices []string `json:"choices,omitempty"`
}

// MultiOptionDoc documents an option that accumulates multiple values
// rather than holding one.
type MultiOptionDoc struct {
	Name    string `json:"name"`
	Default string `json:"default,omitempty"`
	Group   string `json:"group"`
	Doc     string `json:"doc"`
}

// ActionDoc documents a mappable action. Short and Doc are terminal plain
// text; enrichment never reintroduces markup.
type ActionDoc struct {
	Name  string `json:"name"`
	Short string `json:"short"`
	Doc   string `json:"doc"`
}

// DirectiveDoc documents a configuration keyword that takes no single value
// (map, mouse_map, the include mechanisms).
type DirectiveDoc struct {
	Name string `json:"name"`
	Doc  string `json:"doc,omitempty"`
}

// MapFlagDoc documents one flag of the map/mouse_map mini-language.
type MapFlagDoc struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices,omitempty"`
	Default string   `json:"default,omitempty"`
}

// Document is the complete generated artifact.
type Document struct {
	Options      []OptionDoc      `json:"options"`
	MultiOptions []MultiOptionDoc `json:"multi_options"`
	Actions      []ActionDoc      `json:"actions"`
	Directives   []DirectiveDoc   `json:"directives"`
	MapFlags     []MapFlagDoc     `json:"map_flags"`
	KeyNames     []string         `json:"key_names"`
}

// DefaultKeyNames returns the modifier and key-name tokens offered for map
// key-combo completion.
func DefaultKeyNames() []string {
	return []string{
		"ctrl", "alt", "shift", "super", "cmd", "opt", "kitty_mod",
		"left", "right", "up", "down", "home", "end",
		"page_up", "page_down", "insert", "delete", "backspace",
		"enter", "return", "escape", "tab", "space",
		"f1", "f2", "f3", "f4", "f5", "f6",
		"f7", "f8", "f9", "f10", "f11", "f12",
	}
}
