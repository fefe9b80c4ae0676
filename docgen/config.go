package docgen

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for generation configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Output string
	Schema string
	Indent string
}

// Config holds CLI flag values for generation configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags  Flags
	Output string
	Schema string
	Indent int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output: "output",
		Schema: "schema",
		Indent: "indent",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds generation flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "kitty_options.json",
		"output artifact path (- for stdout)")
	flags.StringVar(&c.Schema, c.Flags.Schema, "",
		"also write a JSON Schema for the generated options to this path")
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"JSON indentation spaces")
}

// RegisterCompletions registers shell completions for generation flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Indent, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// IndentString renders the configured indent width as a literal indent.
func (c *Config) IndentString() string {
	indent := "  "
	if c.Indent > 0 {
		indent = ""
		for range c.Indent {
			indent += " "
		}
	}

	return indent
}
