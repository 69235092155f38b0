package tscfg

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sebastian-peter/tscfg/hocon"
	"github.com/sebastian-peter/tscfg/model"
)

// Flags holds CLI flag names for build configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	AssumeAllRequired string
}

// Config holds CLI flag values controlling how [Config.Build] invokes
// [model.Build].
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Build] to run the pipeline.
type Config struct {
	Flags             Flags
	AssumeAllRequired bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			AssumeAllRequired: "assume-all-required",
		},
	}
}

// RegisterFlags adds build flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.AssumeAllRequired, c.Flags.AssumeAllRequired, false,
		"treat every field as required, ignoring DSL/comment optionality hints")
}

// RegisterCompletions registers shell completions for build flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.AssumeAllRequired, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.AssumeAllRequired, err)
	}

	return nil
}

// Build runs the model builder over conf using the options stored in c.
func (c *Config) Build(conf *hocon.Config) (*model.Result, error) {
	var opts []model.Option

	if c.AssumeAllRequired {
		opts = append(opts, model.AssumeAllRequired())
	}

	return model.Build(conf, opts...)
}
