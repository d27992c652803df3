package pauli

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/steiner"
	"github.com/phasefold/phasefold/topology"
)

// Gadget is a single multi-qubit rotation exp(-i*Angle/2 * P) where P
// is the tensor product of the per-qubit Paulis. The Pauli string has
// one entry per qubit and its length never changes after construction;
// the angle mutates in place during simplification and propagation.
type Gadget struct {
	Angle  float64
	Paulis []Pauli
}

// NewGadget builds a gadget from an angle (radians) and a Pauli
// string. The string is copied.
func NewGadget(angle float64, paulis ...Pauli) *Gadget {
	ps := make([]Pauli, len(paulis))
	copy(ps, paulis)
	return &Gadget{Angle: angle, Paulis: ps}
}

// NumQubits returns the length of the Pauli string.
func (g *Gadget) NumQubits() int { return len(g.Paulis) }

// NumLegs returns the number of non-identity entries.
func (g *Gadget) NumLegs() int {
	legs := 0
	for _, p := range g.Paulis {
		if p != I {
			legs++
		}
	}
	return legs
}

// Copy returns a deep copy (the angle by value, the string cloned).
func (g *Gadget) Copy() *Gadget {
	return NewGadget(g.Angle, g.Paulis...)
}

// SwapQubits exchanges the Pauli entries at positions a and b.
func (g *Gadget) SwapQubits(a, b int) {
	g.Paulis[a], g.Paulis[b] = g.Paulis[b], g.Paulis[a]
}

// Support returns the active-qubit bitmask (legs set to 1).
func (g *Gadget) Support() *bitset.BitSet {
	s := bitset.New(uint(len(g.Paulis)))
	for q, p := range g.Paulis {
		if p != I {
			s.Set(uint(q))
		}
	}
	return s
}

// Commutes reports whether the two gadgets commute as operators: the
// number of positions where both carry distinct non-identity Paulis
// must be even.
func (g *Gadget) Commutes(other *Gadget) (bool, error) {
	if len(g.Paulis) != len(other.Paulis) {
		return false, fmt.Errorf("%w: commutation over %d and %d qubits",
			ErrQubitMismatch, len(g.Paulis), len(other.Paulis))
	}
	return g.commutes(other), nil
}

func (g *Gadget) commutes(other *Gadget) bool {
	mismatch := 0
	for q, p1 := range g.Paulis {
		p2 := other.Paulis[q]
		if p1 != p2 && p1 != I && p2 != I {
			mismatch++
		}
	}
	return mismatch%2 == 0
}

// MutualLegs scores the overlap of two gadgets: +1 per qubit where
// both are non-identity, -1 otherwise. A merge-proximity heuristic,
// not a correctness predicate.
func (g *Gadget) MutualLegs(other *Gadget) (int, error) {
	if len(g.Paulis) != len(other.Paulis) {
		return 0, fmt.Errorf("%w: mutual legs over %d and %d qubits",
			ErrQubitMismatch, len(g.Paulis), len(other.Paulis))
	}
	return g.mutualLegs(other), nil
}

func (g *Gadget) mutualLegs(other *Gadget) int {
	match := 0
	for q, p1 := range g.Paulis {
		if p1 != I && other.Paulis[q] != I {
			match++
		} else {
			match--
		}
	}
	return match
}

// LegCache memoizes per-support CX counts across gadgets sharing the
// same active-qubit mask. Keys are the marshaled support bitmasks.
type LegCache map[string]int

func (g *Gadget) supportKey() string {
	buf, _ := g.Support().MarshalBinary()
	return string(buf)
}

func (g *Gadget) indicator() []int {
	col := make([]int, len(g.Paulis))
	for q, p := range g.Paulis {
		if p != I {
			col[q] = 1
		}
	}
	return col
}

// TwoQubitCount returns the number of CX gates a decomposition of this
// gadget needs on the given topology: twice the ladder length, since
// the ladder before the rotation is mirrored after it. Pass a shared
// LegCache to memoize across gadgets; nil disables memoization.
func (g *Gadget) TwoQubitCount(topo *topology.Topology, cache LegCache) (int, error) {
	var key string
	if cache != nil {
		key = g.supportKey()
		if count, ok := cache[key]; ok {
			return count, nil
		}
	}
	asg, err := steiner.MinimalCXAssignment(g.indicator(), topo)
	if err != nil {
		return 0, err
	}
	count := 2 * len(asg.Ladder)
	if cache != nil {
		cache[key] = count
	}
	return count, nil
}

// ToCircuit decomposes the gadget into a self-contained gate sequence
// equivalent to exp(-i*Angle/2 * P) on the given topology: basis
// changes into Z, the CX ladder inward, one Rz at the root, and the
// mirror of ladder and basis changes. A gadget with no legs becomes a
// bare global phase.
func (g *Gadget) ToCircuit(topo *topology.Topology) (*circuit.Circuit, error) {
	n := g.NumQubits()
	if n != topo.NumQubits() {
		return nil, fmt.Errorf("%w: %d-qubit gadget on %d-qubit topology",
			ErrQubitMismatch, n, topo.NumQubits())
	}
	circ := circuit.New(n)
	if g.NumLegs() == 0 {
		circ.AddGlobalPhase(g.Angle)
		return circ, nil
	}

	asg, err := steiner.MinimalCXAssignment(g.indicator(), topo)
	if err != nil {
		return nil, err
	}
	for q, p := range g.Paulis {
		switch p {
		case I, Z:
		case X:
			circ.H(q)
		case Y:
			circ.V(q)
		default:
			return nil, fmt.Errorf("pauli: unknown Pauli value %d at qubit %d", p, q)
		}
	}

	if len(asg.Ladder) > 0 {
		for i := len(asg.Ladder) - 1; i >= 0; i-- {
			circ.CX(asg.Ladder[i].Control, asg.Ladder[i].Target)
		}
		circ.Rz(g.Angle, asg.Root)
		for _, cx := range asg.Ladder {
			circ.CX(cx.Control, cx.Target)
		}
	} else {
		circ.Rz(g.Angle, asg.Root)
	}

	for q, p := range g.Paulis {
		switch p {
		case X:
			circ.H(q)
		case Y:
			circ.Vdg(q)
		}
	}
	return circ, nil
}

func (g *Gadget) String() string {
	names := make([]string, len(g.Paulis))
	for q, p := range g.Paulis {
		names[q] = p.String()
	}
	return fmt.Sprintf("PPhase(%g) @ [ %s ]", g.Angle, strings.Join(names, ", "))
}
