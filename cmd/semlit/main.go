// Package main provides the semlit binary entry point.
//
// Semlit validates scalar literal values against concepts composed from
// named constraints. The binary is a thin consumer of the library's
// boundary API: it loads concept declarations from semlit.yaml, validates
// values given on the command line, and can verify the soundness of
// declared implications.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	// Register built-in vocabularies via init()
	_ "github.com/c360studio/semlit/vocabulary/numeric"
	_ "github.com/c360studio/semlit/vocabulary/text"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/c360studio/semlit/boundary"
	"github.com/c360studio/semlit/config"
	"github.com/c360studio/semlit/constraint"
	"github.com/c360studio/semlit/resolve"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semlit"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Composable constraint tags for literal values",
		Long: `Semlit declares domain concepts as compositions of named constraints
and validates untrusted scalar values against them exactly once at a
boundary.

Concepts are declared in semlit.yaml:

    units: [year]
    concepts:
      age:
        description: whole number of years, zero or more
        constraints: [number.integer, number.nonnegative, unit<year>]`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(checkCmd(&configPath, &logLevel))
	cmd.AddCommand(conceptsCmd(&configPath, &logLevel))
	cmd.AddCommand(verifyCmd(&configPath, &logLevel))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup configures logging and loads config plus a gate over the default
// registry (built-in vocabularies are registered by the blank imports).
func setup(configPath, logLevel string) (*config.Config, *boundary.Gate, error) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	loader := config.NewLoader(logger)
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = loader.LoadFile(configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gate := boundary.NewGate(resolve.NewResolver(constraint.Default()), boundary.WithLogger(logger))
	return cfg, gate, nil
}

func verifyCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify declared implications against sample values",
		Long: `Verify checks every declared implication edge (e.g. number.positive
implies number.nonnegative) against the sample values from the verify
section of the config. An edge is unsound when a sample satisfies the
implying constraint but not the implied one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gate, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			if _, err := cfg.Declare(gate); err != nil {
				return err
			}

			reg := gate.Resolver().Registry()
			if err := reg.VerifyImplications(cfg.Verify.Samples...); err != nil {
				return err
			}
			fmt.Printf("verified %d constraints against %d samples: all implications sound\n",
				reg.Len(), len(cfg.Verify.Samples))
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example semlit.yaml to the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ProjectConfigFile); err == nil {
				return fmt.Errorf("%s already exists", config.ProjectConfigFile)
			}

			cfg := config.DefaultConfig()
			cfg.Units = []string{"year"}
			cfg.Concepts["age"] = config.ConceptConfig{
				Description: "whole number of years, zero or more",
				Constraints: []string{"number.integer", "number.nonnegative", "unit<year>"},
			}
			if err := cfg.SaveToFile(config.ProjectConfigFile); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", config.ProjectConfigFile)
			return nil
		},
	}
}

func conceptsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "concepts [glob]",
		Short: "List declared concepts and their evaluation plans",
		Long: `Concepts lists every concept declared in the config, with the
constraints it was declared from and the deduplicated evaluation plan the
resolver produced. An optional doublestar glob filters concept names:

    semlit concepts 'user.*'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gate, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			concepts, err := cfg.Declare(gate)
			if err != nil {
				return err
			}

			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}

			matched := 0
			for _, name := range cfg.ConceptNames() {
				ok, err := doublestar.Match(pattern, name)
				if err != nil {
					return fmt.Errorf("invalid pattern %q: %w", pattern, err)
				}
				if !ok {
					continue
				}
				matched++

				cc := cfg.Concepts[name]
				concept := concepts[name]
				fmt.Printf("%s\n", name)
				if cc.Description != "" {
					fmt.Printf("  %s\n", cc.Description)
				}
				fmt.Printf("  declared:  %s\n", strings.Join(cc.Constraints, ", "))
				fmt.Printf("  signature: %s\n", concept.Signature())
				fmt.Printf("  checks:    %s\n", strings.Join(planStepIDs(concept), ", "))
			}
			if matched == 0 {
				fmt.Printf("no concepts match %q\n", pattern)
			}
			return nil
		},
	}
}

func planStepIDs(c *boundary.Concept) []string {
	steps := c.Plan().Steps()
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID()
	}
	return ids
}
