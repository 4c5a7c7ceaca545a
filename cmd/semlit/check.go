package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/semlit/boundary"
)

func checkCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <concept> <value>...",
		Short: "Validate literal values against a declared concept",
		Long: `Check validates one or more literal values against a concept from the
config. Values are parsed as JSON scalars (42, 3.5, true, "text"); anything
that does not parse is treated as a plain string.

Exit status is non-zero when any value is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gate, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			concepts, err := cfg.Declare(gate)
			if err != nil {
				return err
			}

			name := args[0]
			concept, ok := concepts[name]
			if !ok {
				return fmt.Errorf("concept %q is not declared (have: %s)",
					name, strings.Join(cfg.ConceptNames(), ", "))
			}

			fmt.Printf("report %s: concept %s (%s)\n",
				uuid.New().String(), name, concept.Signature())

			rejected := 0
			for _, raw := range args[1:] {
				value, err := parseLiteral(raw)
				if err != nil {
					return fmt.Errorf("value %q: %w", raw, err)
				}

				if _, err := gate.From(concept, value); err != nil {
					rejected++
					var failure *boundary.Failure
					if !errors.As(err, &failure) {
						return err
					}
					fmt.Printf("  %-12q REJECTED\n", raw)
					for _, v := range failure.Violations {
						fmt.Printf("    %s: %s\n", v.Constraint, v.Reason)
					}
					continue
				}
				fmt.Printf("  %-12q ok\n", raw)
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d values rejected", rejected, len(args)-1)
			}
			return nil
		},
	}
}

// parseLiteral parses a command-line argument as a JSON scalar, falling back
// to a plain string. Composite JSON (arrays, objects) is rejected: the
// engine validates scalar literals only.
func parseLiteral(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("composite values are not supported")
	}

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		// Not valid JSON; treat the raw argument as a string literal.
		return raw, nil
	}
	return value, nil
}
