package resolve

import (
	"errors"
	"strings"
	"testing"
)

func TestTopoOrderWeakerFirst(t *testing.T) {
	// c implies b implies a: evaluation order must be a, b, c.
	edges := map[string][]string{
		"c": {"b"},
		"b": {"a"},
		"a": {},
	}
	got, err := topoOrder([]string{"a", "b", "c"}, func(id string) []string {
		return edges[id]
	})
	if err != nil {
		t.Fatalf("topoOrder: %v", err)
	}
	if strings.Join(got, "") != "abc" {
		t.Errorf("order = %v, want [a b c]", got)
	}
}

func TestTopoOrderDeterministicTieBreak(t *testing.T) {
	// Diamond: d implies b and c, both imply a. b and c are unordered
	// relative to each other; ties break lexicographically.
	edges := map[string][]string{
		"d": {"c", "b"},
		"c": {"a"},
		"b": {"a"},
		"a": {},
	}
	for _, input := range [][]string{
		{"a", "b", "c", "d"},
		{"d", "c", "b", "a"},
		{"c", "a", "d", "b"},
	} {
		got, err := topoOrder(input, func(id string) []string {
			return edges[id]
		})
		if err != nil {
			t.Fatalf("topoOrder(%v): %v", input, err)
		}
		if strings.Join(got, "") != "abcd" {
			t.Errorf("topoOrder(%v) = %v, want [a b c d]", input, got)
		}
	}
}

func TestTopoOrderIgnoresEdgesLeavingSet(t *testing.T) {
	edges := map[string][]string{
		"b": {"a", "external"},
		"a": {},
	}
	got, err := topoOrder([]string{"a", "b"}, func(id string) []string {
		return edges[id]
	})
	if err != nil {
		t.Fatalf("topoOrder: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("order = %v", got)
	}
}

func TestTopoOrderDetectsCycle(t *testing.T) {
	// The registry's registration-order rule makes cycles unreachable
	// through the public API; the defensive check still has to hold for
	// a corrupted graph.
	edges := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}
	_, err := topoOrder([]string{"a", "b", "c"}, func(id string) []string {
		return edges[id]
	})
	if !errors.Is(err, ErrImplicationCycle) {
		t.Fatalf("expected ErrImplicationCycle, got %v", err)
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatal("expected *CycleError")
	}
	if len(cycleErr.Path) < 3 {
		t.Errorf("cycle witness too short: %v", cycleErr.Path)
	}
	if cycleErr.Path[0] != cycleErr.Path[len(cycleErr.Path)-1] {
		t.Errorf("cycle witness should close on itself: %v", cycleErr.Path)
	}
	if !strings.Contains(err.Error(), "->") {
		t.Errorf("cycle error should render the path: %v", err)
	}
}
