package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semlit/boundary"
	"github.com/c360studio/semlit/constraint"
	"github.com/c360studio/semlit/resolve"
)

// newTestGate builds a gate over an isolated registry with a minimal
// numeric chain, so tests do not depend on the default registry.
func newTestGate(t *testing.T) *boundary.Gate {
	t.Helper()

	asNumber := func(v any) (float64, bool) {
		switch n := v.(type) {
		case int:
			return float64(n), true
		case float64:
			return n, true
		}
		return 0, false
	}

	reg := constraint.NewRegistry()
	reg.MustRegister("number.value", func(v any) bool {
		_, ok := asNumber(v)
		return ok
	})
	reg.MustRegister("number.integer", func(v any) bool {
		f, ok := asNumber(v)
		return ok && f == float64(int64(f))
	}, constraint.WithImplies("number.value"))
	reg.MustRegister("number.nonnegative", func(v any) bool {
		f, ok := asNumber(v)
		return ok && f >= 0
	}, constraint.WithImplies("number.value"))

	return boundary.NewGate(resolve.NewResolver(reg))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "semlit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
units: [year]
concepts:
  age:
    description: whole number of years
    constraints: [number.integer, number.nonnegative, unit<year>]
verify:
  samples: [-1, 0, 1, 3.5]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"year"}, cfg.Units)
	require.Contains(t, cfg.Concepts, "age")
	assert.Equal(t, []string{"number.integer", "number.nonnegative", "unit<year>"}, cfg.Concepts["age"].Constraints)
	assert.Len(t, cfg.Verify.Samples, 4)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: &Config{Concepts: map[string]ConceptConfig{
				"age": {Constraints: []string{"number.integer"}},
			}},
		},
		{
			name: "invalid concept name",
			cfg: &Config{Concepts: map[string]ConceptConfig{
				"Bad Name": {Constraints: []string{"number.integer"}},
			}},
			wantErr: "invalid concept name",
		},
		{
			name: "no constraints",
			cfg: &Config{Concepts: map[string]ConceptConfig{
				"age": {},
			}},
			wantErr: "declares no constraints",
		},
		{
			name: "invalid constraint id",
			cfg: &Config{Concepts: map[string]ConceptConfig{
				"age": {Constraints: []string{"Not An ID"}},
			}},
			wantErr: "invalid constraint identifier",
		},
		{
			name:    "invalid unit",
			cfg:     &Config{Units: []string{"no spaces"}},
			wantErr: "invalid unit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Concepts["age"] = ConceptConfig{Constraints: []string{"number.integer"}}
	base.Units = []string{"year"}

	other := &Config{
		Concepts: map[string]ConceptConfig{
			"age":   {Constraints: []string{"number.integer", "number.nonnegative"}},
			"score": {Constraints: []string{"number.value"}},
		},
		Units: []string{"year", "point"},
		Verify: VerifyConfig{
			Samples: []any{0},
		},
	}

	base.Merge(other)

	assert.Equal(t, []string{"number.integer", "number.nonnegative"}, base.Concepts["age"].Constraints)
	assert.Contains(t, base.Concepts, "score")
	assert.Equal(t, []string{"year", "point"}, base.Units, "units merge deduplicated")
	assert.Equal(t, []any{0}, base.Verify.Samples, "non-empty samples replace defaults")
}

func TestDeclare(t *testing.T) {
	gate := newTestGate(t)

	cfg := &Config{
		Units: []string{"year"},
		Concepts: map[string]ConceptConfig{
			"age":   {Constraints: []string{"number.integer", "number.nonnegative", "unit<year>"}},
			"count": {Constraints: []string{"number.nonnegative"}},
		},
	}
	require.NoError(t, cfg.Validate())

	concepts, err := cfg.Declare(gate)
	require.NoError(t, err)
	require.Len(t, concepts, 2)

	_, err = gate.From(concepts["age"], 42)
	assert.NoError(t, err)
	_, err = gate.From(concepts["age"], -3)
	assert.Error(t, err)
}

func TestDeclareUnknownConstraint(t *testing.T) {
	gate := newTestGate(t)

	cfg := &Config{
		Concepts: map[string]ConceptConfig{
			"age": {Constraints: []string{"number.imaginary"}},
		},
	}

	_, err := cfg.Declare(gate)
	require.Error(t, err)
	assert.ErrorIs(t, err, constraint.ErrUnknownConstraint)
	assert.Contains(t, err.Error(), `declare concept "age"`)
}

func TestConceptNamesSorted(t *testing.T) {
	cfg := &Config{
		Concepts: map[string]ConceptConfig{
			"b": {Constraints: []string{"number.value"}},
			"a": {Constraints: []string{"number.value"}},
			"c": {Constraints: []string{"number.value"}},
		},
	}
	assert.Equal(t, []string{"a", "b", "c"}, cfg.ConceptNames())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "semlit.yaml")

	cfg := DefaultConfig()
	cfg.Units = []string{"year"}
	cfg.Concepts["age"] = ConceptConfig{
		Description: "whole number of years",
		Constraints: []string{"number.integer", "number.nonnegative"},
	}
	require.NoError(t, cfg.SaveToFile(path))

	reloaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Concepts["age"], reloaded.Concepts["age"])
	assert.Equal(t, cfg.Units, reloaded.Units)
}

func TestLoaderLoadFile(t *testing.T) {
	path := writeConfig(t, `
concepts:
  age:
    constraints: [number.integer]
`)

	loader := NewLoader(nil)
	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Contains(t, cfg.Concepts, "age")
	assert.NotEmpty(t, cfg.Verify.Samples, "defaults merge under explicit file")
}
