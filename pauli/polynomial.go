package pauli

import (
	"fmt"
	"strings"

	"github.com/phasefold/phasefold/topology"
)

// Polynomial is an ordered sequence of gadgets sharing one qubit
// count. Order is the intended execution order; synthesis may permute
// it and reports the realized order.
type Polynomial struct {
	NumQubits int
	Gadgets   []*Gadget
}

// NewPolynomial returns an empty polynomial over n qubits.
func NewPolynomial(n int) *Polynomial {
	return &Polynomial{NumQubits: n}
}

// Append adds a gadget; its Pauli string length must match the
// polynomial's qubit count.
func (p *Polynomial) Append(g *Gadget) error {
	if g.NumQubits() != p.NumQubits {
		return fmt.Errorf("%w: polynomial has %d qubits, gadget has %d",
			ErrQubitMismatch, p.NumQubits, g.NumQubits())
	}
	p.Gadgets = append(p.Gadgets, g)
	return nil
}

// NumGadgets returns the number of gadgets.
func (p *Polynomial) NumGadgets() int { return len(p.Gadgets) }

// NumLegs sums the leg counts of all gadgets.
func (p *Polynomial) NumLegs() int {
	legs := 0
	for _, g := range p.Gadgets {
		legs += g.NumLegs()
	}
	return legs
}

// Copy deep-copies the polynomial; the copy can be destructively
// transformed without touching the original.
func (p *Polynomial) Copy() *Polynomial {
	cp := NewPolynomial(p.NumQubits)
	cp.Gadgets = make([]*Gadget, len(p.Gadgets))
	for i, g := range p.Gadgets {
		cp.Gadgets[i] = g.Copy()
	}
	return cp
}

// Propagate returns a new polynomial with every gadget conjugated
// through the gate. The receiver is left untouched.
func (p *Polynomial) Propagate(gate CliffordGate) *Polynomial {
	out := p.Copy()
	for _, g := range out.Gadgets {
		gate.ApplyTo(g)
	}
	return out
}

// PropagateColumns conjugates the gadgets at the given indices in
// place. This is the synthesizer's working-copy primitive: every gate
// it emits is mirrored here so the polynomial stays consistent with
// the emitted circuit.
func (p *Polynomial) PropagateColumns(gate CliffordGate, cols []int) {
	for _, col := range cols {
		gate.ApplyTo(p.Gadgets[col])
	}
}

// TwoQubitCount estimates the total CX cost of decomposing every
// gadget independently on the topology. The cache memoizes per-support
// ladder sizes; nil disables memoization.
func (p *Polynomial) TwoQubitCount(topo *topology.Topology, cache LegCache) (int, error) {
	count := 0
	for _, g := range p.Gadgets {
		c, err := g.TwoQubitCount(topo, cache)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}

// Commutes reports whether the gadgets at columns i and j commute.
func (p *Polynomial) Commutes(i, j int) bool {
	return p.Gadgets[i].commutes(p.Gadgets[j])
}

// MutualLegs returns the overlap score of the gadgets at columns i
// and j.
func (p *Polynomial) MutualLegs(i, j int) int {
	return p.Gadgets[i].mutualLegs(p.Gadgets[j])
}

// SwapGadgets exchanges the gadgets at columns i and j.
func (p *Polynomial) SwapGadgets(i, j int) {
	p.Gadgets[i], p.Gadgets[j] = p.Gadgets[j], p.Gadgets[i]
}

func (p *Polynomial) String() string {
	lines := make([]string, len(p.Gadgets))
	for i, g := range p.Gadgets {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n")
}
