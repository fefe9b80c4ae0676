// Package main provides the CLI entry point for kittydocgen, a build-time
// compiler that turns a kitty configuration descriptor dump into a flat,
// plain-text documentation artifact for editor tooling.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kitty-conf/docgen/docgen"
	"github.com/kitty-conf/docgen/kittydef"
	"github.com/kitty-conf/docgen/log"
	"github.com/kitty-conf/docgen/version"
)

func main() {
	cfg := docgen.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "kittydocgen [flags] <definition.yaml>",
		Short: "Compile kitty option docs into editor-tooling metadata",
		Long: `kittydocgen compiles a YAML dump of kitty's option definition into a flat
JSON artifact of plain-text documentation records (options, multi-options,
actions, directives, map flags) for use in editor completion and hover
tooling. RST markup is stripped on a best-effort basis and legal value
lists are extracted heuristically from the documentation prose.`,
		Version:       version.String(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args[0])
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = logCfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *docgen.Config, defPath string) error {
	data, err := os.ReadFile(defPath)
	if err != nil {
		return fmt.Errorf("%w: %w", docgen.ErrReadInput, err)
	}

	def, err := kittydef.Load(data)
	if err != nil {
		return err
	}

	gen := docgen.NewGenerator()

	doc, err := gen.Generate(def)
	if err != nil {
		return err
	}

	// Marshal everything up front so a failure never leaves a partial
	// artifact behind.
	out, err := json.MarshalIndent(doc, "", cfg.IndentString())
	if err != nil {
		return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = os.Stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}
	} else {
		err = os.WriteFile(cfg.Output, out, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}

		fmt.Printf("Generated %s: %d options, %d multi-options, %d actions\n",
			filepath.Base(cfg.Output), len(doc.Options), len(doc.MultiOptions), len(doc.Actions))
	}

	if cfg.Schema != "" {
		schema := docgen.BuildSchema(doc)

		schemaOut, err := json.MarshalIndent(schema, "", cfg.IndentString())
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}

		schemaOut = append(schemaOut, '\n')

		err = os.WriteFile(cfg.Schema, schemaOut, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
		}
	}

	return nil
}
