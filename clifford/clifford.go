// Package clifford defines how the Clifford gates used by the
// synthesizer (H, S, V and CX) transform a Pauli gadget under
// conjugation. Each gate carries a fixed rule table mapping the
// affected qubit's Pauli value to its image, together with the sign
// picked up by the rotation angle.
//
// The tables match the gate sandwiches the synthesizer emits: a gate's
// table describes the rewrite that keeps the working polynomial
// consistent with a circuit that brackets the remaining work between
// the gate's inverse (first) and the gate itself (last).
package clifford

import "github.com/phasefold/phasefold/pauli"

type rule struct {
	p    pauli.Pauli
	flip bool
}

// single-qubit tables, indexed by Pauli value

var hRules = [4]rule{
	pauli.I: {pauli.I, false},
	pauli.X: {pauli.Z, false},
	pauli.Y: {pauli.Y, true},
	pauli.Z: {pauli.X, false},
}

var sRules = [4]rule{
	pauli.I: {pauli.I, false},
	pauli.X: {pauli.Y, true},
	pauli.Y: {pauli.X, false},
	pauli.Z: {pauli.Z, false},
}

var vRules = [4]rule{
	pauli.I: {pauli.I, false},
	pauli.X: {pauli.X, false},
	pauli.Y: {pauli.Z, true},
	pauli.Z: {pauli.Y, false},
}

type rule2 struct {
	control pauli.Pauli
	target  pauli.Pauli
	flip    bool
}

// cxRules is indexed by [control][target].
var cxRules = [4][4]rule2{
	pauli.I: {
		pauli.I: {pauli.I, pauli.I, false},
		pauli.X: {pauli.I, pauli.X, false},
		pauli.Y: {pauli.Z, pauli.Y, false},
		pauli.Z: {pauli.Z, pauli.Z, false},
	},
	pauli.X: {
		pauli.I: {pauli.X, pauli.X, false},
		pauli.X: {pauli.X, pauli.I, false},
		pauli.Y: {pauli.Y, pauli.Z, false},
		pauli.Z: {pauli.Y, pauli.Y, true},
	},
	pauli.Y: {
		pauli.I: {pauli.Y, pauli.X, false},
		pauli.X: {pauli.Y, pauli.I, false},
		pauli.Y: {pauli.X, pauli.Z, true},
		pauli.Z: {pauli.X, pauli.Y, false},
	},
	pauli.Z: {
		pauli.I: {pauli.Z, pauli.I, false},
		pauli.X: {pauli.Z, pauli.X, false},
		pauli.Y: {pauli.I, pauli.Y, false},
		pauli.Z: {pauli.I, pauli.Z, false},
	},
}

// H is the Hadamard gate on Qubit: X and Z swap, Y flips the angle.
type H struct{ Qubit int }

func (g H) ApplyTo(gd *pauli.Gadget) { applySingle(gd, g.Qubit, &hRules) }

// S is the phase gate on Qubit.
type S struct{ Qubit int }

func (g S) ApplyTo(gd *pauli.Gadget) { applySingle(gd, g.Qubit, &sRules) }

// V is the sqrt(X) gate on Qubit: Y and Z rotate into each other.
type V struct{ Qubit int }

func (g V) ApplyTo(gd *pauli.Gadget) { applySingle(gd, g.Qubit, &vRules) }

func applySingle(gd *pauli.Gadget, q int, rules *[4]rule) {
	r := rules[gd.Paulis[q]]
	gd.Paulis[q] = r.p
	if r.flip {
		gd.Angle = -gd.Angle
	}
}

// CX is the controlled-X gate.
type CX struct {
	Control int
	Target  int
}

func (g CX) ApplyTo(gd *pauli.Gadget) {
	r := cxRules[gd.Paulis[g.Control]][gd.Paulis[g.Target]]
	gd.Paulis[g.Control] = r.control
	gd.Paulis[g.Target] = r.target
	if r.flip {
		gd.Angle = -gd.Angle
	}
}
