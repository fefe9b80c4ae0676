package docgen

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// BuildSchema derives a JSON Schema (Draft 7) from a generated document,
// for editors that validate kitty.conf-shaped key/value documents. Option
// choices become enums; defaults are carried; descriptions are the first
// sentence of the hover doc.
func BuildSchema(doc *Document) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Schema:               "http://json-schema.org/draft-07/schema#",
		Title:                "kitty configuration options",
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema),
		AdditionalProperties: &jsonschema.Schema{},
	}

	for _, opt := range doc.Options {
		prop := &jsonschema.Schema{
			Type:        "string",
			Description: firstSentence(opt.Doc),
		}

		for _, c := range opt.Choices {
			prop.Enum = append(prop.Enum, c)
		}

		if opt.Default != "" {
			prop.Default = defaultValue(opt.Default)
		}

		schema.Properties[opt.Name] = prop
	}

	// Multi-value options and directives take free-form values; constrain
	// the type only.
	for _, opt := range doc.MultiOptions {
		schema.Properties[opt.Name] = &jsonschema.Schema{
			Type:        "string",
			Description: firstSentence(opt.Doc),
		}
	}

	for _, d := range doc.Directives {
		schema.Properties[d.Name] = &jsonschema.Schema{
			Type:        "string",
			Description: firstSentence(d.Doc),
		}
	}

	return schema
}

// defaultValue marshals v for use as a JSON Schema default. Returns nil if
// marshaling fails.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

// firstSentence cuts text at the first sentence boundary; hover docs can be
// long, schema descriptions should not be.
func firstSentence(text string) string {
	for i := 0; i+1 < len(text); i++ {
		if text[i] == '.' && (text[i+1] == ' ' || text[i+1] == '\n') {
			return text[:i+1]
		}
	}

	return text
}
