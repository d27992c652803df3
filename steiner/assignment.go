// Package steiner computes minimal CNOT-ladder assignments: given the
// set of qubits a Pauli gadget acts on and a connectivity topology, it
// produces an ordered ladder of CX gates coupling all active qubits
// into a chosen root, approximating the Steiner tree over the hardware
// graph with a minimum spanning tree on distance-derived weights.
package steiner

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/phasefold/phasefold/debug"
	"github.com/phasefold/phasefold/topology"
)

// ErrNonBinary is returned when the indicator vector contains values
// other than 0 and 1.
var ErrNonBinary = errors.New("steiner: indicator vector must be binary")

// CXPair is one ladder step: a CX with the given control and target.
type CXPair struct {
	Control int
	Target  int
}

// Assignment is the result of MinimalCXAssignment: the CX ladder in
// inward execution order, and the root qubit all active legs are
// conjugated into.
type Assignment struct {
	Ladder []CXPair
	Root   int
}

type options struct {
	root    int
	hasRoot bool
}

// Option configures MinimalCXAssignment.
type Option func(*options)

// WithRoot forces the root qubit instead of the default first-active
// choice. The forced root should be an active qubit.
func WithRoot(q int) Option {
	return func(o *options) {
		o.root = q
		o.hasRoot = true
	}
}

// MinimalCXAssignment computes the CX ladder coupling all qubits
// flagged in indicator (1 = active) into a single root, using as few
// two-qubit gates as the topology permits. With zero or one active
// qubit the ladder is empty.
func MinimalCXAssignment(indicator []int, topo *topology.Topology, opts ...Option) (Assignment, error) {
	if len(indicator) != topo.NumQubits() {
		return Assignment{}, fmt.Errorf("steiner: indicator has %d entries for a %d-qubit topology",
			len(indicator), topo.NumQubits())
	}
	var active []int
	for i, v := range indicator {
		if v != 0 && v != 1 {
			return Assignment{}, fmt.Errorf("%w: got %d at position %d", ErrNonBinary, v, i)
		}
		if v == 1 {
			active = append(active, i)
		}
	}

	var opt options
	for _, o := range opts {
		o(&opt)
	}
	root := 0
	switch {
	case opt.hasRoot:
		root = opt.root
	case len(active) > 0:
		root = active[0]
	}

	// spanning-tree adjacency over the active qubits, weighted by
	// 4*distance - 2 per tree edge
	adj := make(map[int][]int, len(active))
	for _, e := range primBranches(active, topo) {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	// breadth-first walk away from the root; each tree edge becomes a
	// ladder segment conjugating the child into its parent
	var ladder []CXPair
	visited := bitset.New(uint(topo.NumQubits()))
	queue := []int{root}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		visited.Set(uint(q))
		for _, head := range adj[q] {
			if visited.Test(uint(head)) {
				continue
			}
			ladder = append(ladder, cnotLadderZ(head, q, topo)...)
			queue = append(queue, head)
		}
	}
	return Assignment{Ladder: ladder, Root: root}, nil
}

// primBranches computes a minimum spanning tree over the active qubits
// of the complete graph weighted by 4*Distance(u,v)-2, Prim's
// algorithm, edges in discovery order (parent, child).
func primBranches(active []int, topo *topology.Topology) [][2]int {
	if len(active) < 2 {
		return nil
	}
	const inf = int(^uint(0) >> 1)
	inTree := make([]bool, len(active))
	best := make([]int, len(active))
	from := make([]int, len(active))
	for i := range best {
		best[i] = inf
	}

	branches := make([][2]int, 0, len(active)-1)
	grow := func(i int) {
		inTree[i] = true
		for j, q := range active {
			if inTree[j] {
				continue
			}
			if w := 4*topo.Distance(active[i], q) - 2; w < best[j] {
				best[j] = w
				from[j] = active[i]
			}
		}
	}
	grow(0)
	for range active[1:] {
		next := -1
		for j := range active {
			if !inTree[j] && (next == -1 || best[j] < best[next]) {
				next = j
			}
		}
		branches = append(branches, [2]int{from[next], active[next]})
		grow(next)
	}
	return branches
}

// cnotLadderZ emits the zig-zag CX chain conjugating ctrl into trg
// along a shortest hardware path, mirrored per intermediate hop and
// reversed so the ladder composes correctly with its own inverse.
func cnotLadderZ(ctrl, trg int, topo *topology.Topology) []CXPair {
	path := topo.ShortestPath(ctrl, trg)
	debug.Assert(len(path) >= 2, "ladder endpoints are not connected")
	var ladder []CXPair
	prev := ctrl
	for _, current := range path[1 : len(path)-1] {
		ladder = append(ladder, CXPair{Control: current, Target: prev})
		ladder = append(ladder, CXPair{Control: prev, Target: current})
		prev = current
	}
	ladder = append(ladder, CXPair{Control: path[len(path)-2], Target: trg})
	for i, j := 0, len(ladder)-1; i < j; i, j = i+1, j-1 {
		ladder[i], ladder[j] = ladder[j], ladder[i]
	}
	return ladder
}
