// Package main provides the CLI entry point for tscfg, a typed
// configuration schema compiler for HOCON-style documents.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebastian-peter/tscfg"
	"github.com/sebastian-peter/tscfg/hocon"
	"github.com/sebastian-peter/tscfg/irschema"
	"github.com/sebastian-peter/tscfg/log"
	"github.com/sebastian-peter/tscfg/profile"
	"github.com/sebastian-peter/tscfg/version"
)

var (
	// ErrReadInput indicates an I/O error reading the input document.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an I/O error writing the output schema.
	ErrWriteOutput = errors.New("write output")
)

func main() {
	buildCfg := tscfg.NewConfig()
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var output string

	rootCmd := &cobra.Command{
		Use:     "tscfg [flags] <file.conf>",
		Short:   "Compile a HOCON-style config document into a typed schema",
		Long: `tscfg derives a nested Struct tree from a HOCON-style config document, then
enriches it into a typed intermediate representation by parsing the inline
type-spec DSL, resolving "@define" named types and inheritance, and
propagating optionality and defaults. The result is rendered as JSON Schema.`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(buildCfg, logCfg, profileCfg, output, args[0])
		},
	}

	buildCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")

	for _, regErr := range []error{
		buildCfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
		profileCfg.RegisterCompletions(rootCmd),
	} {
		if regErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", regErr)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(buildCfg *tscfg.Config, logCfg *log.Config, profileCfg *profile.Config, output, path string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	profiler := profileCfg.NewProfiler()
	if err := profiler.Start(); err != nil {
		return err
	}

	defer func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("stop profiling", slog.Any("error", stopErr))
		}
	}()

	var data []byte

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	conf, err := hocon.Parse(string(data))
	if err != nil {
		return err
	}

	result, err := buildCfg.Build(conf)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn(w.Message, slog.Int("line", w.Line), slog.String("source", w.Source))
	}

	schema := irschema.Render(result.Root)

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if output == "" || output == "-" {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	} else if err := os.WriteFile(output, out, 0o644); err != nil { //nolint:gosec // Output path from CLI flag is expected.
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
