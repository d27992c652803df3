// Package circuit provides the gate-sequence container the synthesis
// algorithms emit into: an append-only list of elementary gates with a
// global-phase accumulator, supporting concatenation and inversion.
//
// The container performs no simplification of its own; it records
// exactly what the caller emits.
package circuit

import (
	"fmt"
	"math"
)

// Kind enumerates the elementary gates the synthesizer emits.
type Kind uint8

// New kinds are appended so serialized values stay stable.
const (
	H   Kind = iota // Hadamard
	V               // sqrt(X)
	Vdg             // inverse sqrt(X)
	Rz              // Z rotation by Theta
	CX              // controlled X
	S               // phase gate
	Sdg             // inverse phase gate
)

func (k Kind) String() string {
	switch k {
	case H:
		return "h"
	case V:
		return "v"
	case Vdg:
		return "vdg"
	case Rz:
		return "rz"
	case CX:
		return "cx"
	case S:
		return "s"
	case Sdg:
		return "sdg"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Gate is a single elementary operation. Control is -1 for
// single-qubit gates; Theta is meaningful only for Rz.
type Gate struct {
	Kind    Kind    `cbor:"k"`
	Target  int     `cbor:"t"`
	Control int     `cbor:"c"`
	Theta   float64 `cbor:"a,omitempty"`
}

// Circuit is an ordered gate sequence over a fixed qubit register.
type Circuit struct {
	numQubits   int
	gates       []Gate
	globalPhase float64
}

// New returns an empty circuit over n qubits.
func New(n int) *Circuit {
	return &Circuit{numQubits: n}
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns the gate list in execution order. The returned slice
// must not be mutated.
func (c *Circuit) Gates() []Gate { return c.gates }

// GlobalPhase returns the accumulated global-phase angle.
func (c *Circuit) GlobalPhase() float64 { return c.globalPhase }

// AddGlobalPhase accumulates theta into the global phase.
func (c *Circuit) AddGlobalPhase(theta float64) {
	c.globalPhase += theta
}

// H appends a Hadamard on q.
func (c *Circuit) H(q int) { c.append(Gate{Kind: H, Target: q, Control: -1}) }

// V appends a sqrt(X) on q.
func (c *Circuit) V(q int) { c.append(Gate{Kind: V, Target: q, Control: -1}) }

// Vdg appends an inverse sqrt(X) on q.
func (c *Circuit) Vdg(q int) { c.append(Gate{Kind: Vdg, Target: q, Control: -1}) }

// S appends a phase gate on q.
func (c *Circuit) S(q int) { c.append(Gate{Kind: S, Target: q, Control: -1}) }

// Sdg appends an inverse phase gate on q.
func (c *Circuit) Sdg(q int) { c.append(Gate{Kind: Sdg, Target: q, Control: -1}) }

// Rz appends a Z rotation by theta on q.
func (c *Circuit) Rz(theta float64, q int) {
	c.append(Gate{Kind: Rz, Target: q, Control: -1, Theta: theta})
}

// CX appends a controlled X with the given control and target.
func (c *Circuit) CX(control, target int) {
	c.append(Gate{Kind: CX, Target: target, Control: control})
}

func (c *Circuit) append(g Gate) {
	if g.Target < 0 || g.Target >= c.numQubits ||
		(g.Kind == CX && (g.Control < 0 || g.Control >= c.numQubits || g.Control == g.Target)) {
		panic(fmt.Sprintf("circuit: gate %s out of range on %d qubits (target=%d control=%d)",
			g.Kind, c.numQubits, g.Target, g.Control))
	}
	c.gates = append(c.gates, g)
}

// Append concatenates other onto c. The registers must match.
func (c *Circuit) Append(other *Circuit) error {
	if other.numQubits != c.numQubits {
		return fmt.Errorf("circuit: cannot append %d-qubit circuit to %d-qubit circuit",
			other.numQubits, c.numQubits)
	}
	c.gates = append(c.gates, other.gates...)
	c.globalPhase += other.globalPhase
	return nil
}

func inverseGate(g Gate) Gate {
	switch g.Kind {
	case V:
		g.Kind = Vdg
	case Vdg:
		g.Kind = V
	case S:
		g.Kind = Sdg
	case Sdg:
		g.Kind = S
	case Rz:
		g.Theta = -g.Theta
	}
	return g
}

// Inverse returns a new circuit realizing the inverse unitary: gates
// reversed, each replaced by its own inverse, global phase negated.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{
		numQubits:   c.numQubits,
		gates:       make([]Gate, 0, len(c.gates)),
		globalPhase: -c.globalPhase,
	}
	for i := len(c.gates) - 1; i >= 0; i-- {
		inv.gates = append(inv.gates, inverseGate(c.gates[i]))
	}
	return inv
}

// InverseGates returns a new circuit with each gate replaced by its own
// inverse but the emission order preserved, global phase negated. For a
// sequence whose gates were applied one at a time as left-multiplied
// conjugations d_i^-1 P d_i, this is the conjugation prefix while
// Reversed is the matching suffix.
func (c *Circuit) InverseGates() *Circuit {
	inv := &Circuit{
		numQubits:   c.numQubits,
		gates:       make([]Gate, 0, len(c.gates)),
		globalPhase: -c.globalPhase,
	}
	for _, g := range c.gates {
		inv.gates = append(inv.gates, inverseGate(g))
	}
	return inv
}

// Reversed returns a new circuit with the gate order reversed and each
// gate unchanged, global phase preserved.
func (c *Circuit) Reversed() *Circuit {
	rev := &Circuit{
		numQubits:   c.numQubits,
		gates:       make([]Gate, 0, len(c.gates)),
		globalPhase: c.globalPhase,
	}
	for i := len(c.gates) - 1; i >= 0; i-- {
		rev.gates = append(rev.gates, c.gates[i])
	}
	return rev
}

// CountCX returns the number of two-qubit gates.
func (c *Circuit) CountCX() int {
	count := 0
	for _, g := range c.gates {
		if g.Kind == CX {
			count++
		}
	}
	return count
}

// Copy returns a deep copy of the circuit.
func (c *Circuit) Copy() *Circuit {
	cp := &Circuit{
		numQubits:   c.numQubits,
		gates:       make([]Gate, len(c.gates)),
		globalPhase: c.globalPhase,
	}
	copy(cp.gates, c.gates)
	return cp
}

// Equal reports whether two circuits have identical gate sequences and
// global phase (exact float comparison, modulo nothing).
func (c *Circuit) Equal(other *Circuit) bool {
	if c.numQubits != other.numQubits || len(c.gates) != len(other.gates) {
		return false
	}
	if math.Abs(c.globalPhase-other.globalPhase) != 0 {
		return false
	}
	for i := range c.gates {
		if c.gates[i] != other.gates[i] {
			return false
		}
	}
	return true
}
