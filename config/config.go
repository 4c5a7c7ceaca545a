// Package config provides configuration loading for semlit: named concept
// declarations, unit tag registration, and implication-verifier samples.
//
// Configuration only composes constraints that already exist in the
// registry; predicates themselves are code and are registered from Go
// (built-in vocabularies or application init). Every declared concept is
// resolved at load time so configuration defects abort startup instead of
// surfacing during validation traffic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semlit/boundary"
	"github.com/c360studio/semlit/constraint"
	"github.com/c360studio/semlit/vocabulary/unit"
)

// Config is the complete semlit configuration.
type Config struct {
	// Concepts maps concept names to their constraint compositions.
	Concepts map[string]ConceptConfig `yaml:"concepts"`

	// Units lists unit tag parameters to register (e.g. "celsius",
	// "year"), making unit<celsius> etc. available to concepts.
	Units []string `yaml:"units"`

	// Verify configures the implication soundness verifier.
	Verify VerifyConfig `yaml:"verify"`
}

// ConceptConfig declares one named concept.
type ConceptConfig struct {
	// Description explains the domain meaning of the concept. Optional.
	Description string `yaml:"description,omitempty"`

	// Constraints lists the constraint identifiers composing the concept.
	Constraints []string `yaml:"constraints"`
}

// VerifyConfig holds sample values for checking declared implications.
type VerifyConfig struct {
	// Samples are representative literal values; every declared
	// implication edge is checked against each of them.
	Samples []any `yaml:"samples"`
}

// DefaultConfig returns a Config with no concepts and a sample set covering
// the base literal kinds and the usual numeric boundary values.
func DefaultConfig() *Config {
	return &Config{
		Concepts: map[string]ConceptConfig{},
		Verify: VerifyConfig{
			Samples: []any{-2, -1, 0, 1, 2, -2.5, 0.5, 3.5, "", "a", " A ", true},
		},
	}
}

// Validate checks the configuration shape: concept names and constraint
// identifiers must be well-formed, and every concept needs at least one
// constraint. Whether the identifiers are actually registered is checked
// by Declare, which has the registry at hand.
func (c *Config) Validate() error {
	for name, cc := range c.Concepts {
		if !constraint.ValidID(name) {
			return fmt.Errorf("invalid concept name %q", name)
		}
		if len(cc.Constraints) == 0 {
			return fmt.Errorf("concept %q declares no constraints", name)
		}
		for _, id := range cc.Constraints {
			if !constraint.ValidID(id) {
				return fmt.Errorf("concept %q: invalid constraint identifier %q", name, id)
			}
		}
	}
	for _, param := range c.Units {
		if !constraint.ValidID(unit.ID(param)) {
			return fmt.Errorf("invalid unit parameter %q", param)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one; other takes precedence.
// Concepts merge by name, units append (deduplicated), and a non-empty
// sample list replaces the current one.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if c.Concepts == nil {
		c.Concepts = make(map[string]ConceptConfig)
	}
	for name, cc := range other.Concepts {
		c.Concepts[name] = cc
	}

	seen := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		seen[u] = true
	}
	for _, u := range other.Units {
		if !seen[u] {
			seen[u] = true
			c.Units = append(c.Units, u)
		}
	}

	if len(other.Verify.Samples) > 0 {
		c.Verify.Samples = other.Verify.Samples
	}
}

// ConceptNames returns the declared concept names, sorted.
func (c *Config) ConceptNames() []string {
	names := make([]string, 0, len(c.Concepts))
	for name := range c.Concepts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declare registers the configured units into the gate's registry and
// declares every configured concept, resolving all plans eagerly. Any
// unknown constraint, family conflict, or duplicate unit registration
// fails the whole load; partial initialization is never returned.
func (c *Config) Declare(gate *boundary.Gate) (map[string]*boundary.Concept, error) {
	if len(c.Units) > 0 {
		if err := unit.Register(gate.Resolver().Registry(), c.Units...); err != nil {
			return nil, fmt.Errorf("register units: %w", err)
		}
	}

	concepts := make(map[string]*boundary.Concept, len(c.Concepts))
	for _, name := range c.ConceptNames() {
		cc := c.Concepts[name]
		concept, err := gate.DeclareNamed(name, cc.Constraints...)
		if err != nil {
			return nil, fmt.Errorf("declare concept %q: %w", name, err)
		}
		concepts[name] = concept
	}
	return concepts, nil
}
