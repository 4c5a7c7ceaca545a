package resolve

import (
	"container/heap"
	"sort"
)

func sortStrings(s []string) { sort.Strings(s) }

// topoOrder orders the given identifiers so that every identifier appears
// after all identifiers it implies within the set (weakest first). The
// implies function returns the direct implications of an identifier;
// implications leaving the set are ignored.
//
// Determinism: the ready queue is a min-heap on the identifier, so ties
// break lexicographically regardless of input order.
//
// Returns a *CycleError if the subgraph is not acyclic. The registry's
// registration-order rule makes that impossible through the public API,
// so this is a defensive invariant check.
func topoOrder(ids []string, implies func(id string) []string) ([]string, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Edge implied -> implier: weaker constraints become prerequisites.
	outgoing := make([][]int, len(ids))
	indeg := make([]int, len(ids))
	for i, id := range ids {
		for _, implied := range implies(id) {
			j, ok := index[implied]
			if !ok {
				continue
			}
			outgoing[j] = append(outgoing[j], i)
			indeg[i]++
		}
	}
	for _, adj := range outgoing {
		sort.Ints(adj)
	}

	ready := &idMinHeap{ids: ids}
	heap.Init(ready)
	for i := range indeg {
		if indeg[i] == 0 {
			heap.Push(ready, i)
		}
	}

	out := make([]string, 0, len(ids))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(int)
		out = append(out, ids[n])
		for _, m := range outgoing[n] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}

	if len(out) != len(ids) {
		return nil, &CycleError{Path: findCycle(ids, outgoing)}
	}
	return out, nil
}

// idMinHeap is a min-heap of indices ordered by their identifier.
type idMinHeap struct {
	ids     []string
	indices []int
}

func (h *idMinHeap) Len() int { return len(h.indices) }
func (h *idMinHeap) Less(i, j int) bool {
	return h.ids[h.indices[i]] < h.ids[h.indices[j]]
}
func (h *idMinHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}
func (h *idMinHeap) Push(x any) { h.indices = append(h.indices, x.(int)) }
func (h *idMinHeap) Pop() any {
	old := h.indices
	n := len(old)
	x := old[n-1]
	h.indices = old[:n-1]
	return x
}

// findCycle performs a deterministic DFS to extract one cycle path as a
// stable witness for error reporting. It does not attempt to list all
// cycles.
func findCycle(ids []string, outgoing [][]int) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, len(ids))
	parent := make([]int, len(ids))
	for i := range parent {
		parent[i] = -1
	}

	var cycle []int

	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = gray
		for _, v := range outgoing[u] { // already sorted
			if color[v] == white {
				parent[v] = u
				if dfs(v) {
					return true
				}
				continue
			}
			if color[v] == gray {
				// Back-edge u -> v. Reconstruct cycle v ... u -> v.
				cycle = append(cycle, v)
				cur := u
				for cur != -1 && cur != v {
					cycle = append(cycle, cur)
					cur = parent[cur]
				}
				cycle = append(cycle, v)
				return true
			}
		}
		color[u] = black
		return false
	}

	for i := 0; i < len(ids); i++ {
		if color[i] != white {
			continue
		}
		if dfs(i) {
			break
		}
	}

	if len(cycle) == 0 {
		return nil
	}

	// The collected path is in reverse parent-walk order; normalize to
	// identifiers in forward order, keeping the closing repeat.
	out := make([]string, 0, len(cycle))
	for i := len(cycle) - 1; i >= 0; i-- {
		out = append(out, ids[cycle[i]])
	}
	return out
}
