package clifford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/clifford"
	"github.com/phasefold/phasefold/internal/simulator"
	"github.com/phasefold/phasefold/pauli"
)

func TestHRules(t *testing.T) {
	cases := []struct {
		in, out pauli.Pauli
		flip    bool
	}{
		{pauli.I, pauli.I, false},
		{pauli.X, pauli.Z, false},
		{pauli.Y, pauli.Y, true},
		{pauli.Z, pauli.X, false},
	}
	for _, c := range cases {
		g := pauli.NewGadget(1.0, c.in)
		clifford.H{Qubit: 0}.ApplyTo(g)
		assert.Equal(t, c.out, g.Paulis[0])
		assert.Equal(t, c.flip, g.Angle < 0)
	}
}

func TestVRules(t *testing.T) {
	cases := []struct {
		in, out pauli.Pauli
		flip    bool
	}{
		{pauli.I, pauli.I, false},
		{pauli.X, pauli.X, false},
		{pauli.Y, pauli.Z, true},
		{pauli.Z, pauli.Y, false},
	}
	for _, c := range cases {
		g := pauli.NewGadget(1.0, c.in)
		clifford.V{Qubit: 0}.ApplyTo(g)
		assert.Equal(t, c.out, g.Paulis[0])
		assert.Equal(t, c.flip, g.Angle < 0)
	}
}

// applying S twice must equal conjugation by Z: X and Y flip sign and
// stay put
func TestSRulesSquareToZ(t *testing.T) {
	for _, p := range []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z} {
		g := pauli.NewGadget(1.0, p)
		clifford.S{Qubit: 0}.ApplyTo(g)
		clifford.S{Qubit: 0}.ApplyTo(g)
		assert.Equal(t, p, g.Paulis[0])
		if p == pauli.X || p == pauli.Y {
			assert.Equal(t, -1.0, g.Angle)
		} else {
			assert.Equal(t, 1.0, g.Angle)
		}
	}
}

func TestCXRulesPreserveLegParity(t *testing.T) {
	// CX conjugation is a Clifford map: it must be an involution on
	// the 16 control/target combinations
	for c := pauli.I; c <= pauli.Z; c++ {
		for tr := pauli.I; tr <= pauli.Z; tr++ {
			g := pauli.NewGadget(1.0, c, tr)
			clifford.CX{Control: 0, Target: 1}.ApplyTo(g)
			clifford.CX{Control: 0, Target: 1}.ApplyTo(g)
			assert.Equal(t, c, g.Paulis[0], "control %s target %s", c, tr)
			assert.Equal(t, tr, g.Paulis[1], "control %s target %s", c, tr)
			assert.Equal(t, 1.0, g.Angle, "control %s target %s", c, tr)
		}
	}
}

// sandwichCircuits builds the (prefix, suffix) gate pair the
// synthesizer emits around a region whose gadgets were rewritten by
// the given rule: suffix is the gate itself, prefix its inverse.
func sandwichCircuits(n int, gate pauli.CliffordGate) (*circuit.Circuit, *circuit.Circuit) {
	prefix := circuit.New(n)
	suffix := circuit.New(n)
	switch g := gate.(type) {
	case clifford.H:
		prefix.H(g.Qubit)
		suffix.H(g.Qubit)
	case clifford.V:
		prefix.Vdg(g.Qubit)
		suffix.V(g.Qubit)
	case clifford.S:
		prefix.Sdg(g.Qubit)
		suffix.S(g.Qubit)
	case clifford.CX:
		prefix.CX(g.Control, g.Target)
		suffix.CX(g.Control, g.Target)
	}
	return prefix, suffix
}

// the central correctness contract: bracketing the rewritten rotation
// between the gate's inverse and the gate reproduces the original
// rotation
func TestPropagationSandwichInvariant(t *testing.T) {
	theta := 0.917
	gates := []pauli.CliffordGate{
		clifford.H{Qubit: 0},
		clifford.H{Qubit: 1},
		clifford.V{Qubit: 0},
		clifford.V{Qubit: 1},
		clifford.S{Qubit: 0},
		clifford.S{Qubit: 1},
		clifford.CX{Control: 0, Target: 1},
		clifford.CX{Control: 1, Target: 0},
	}
	for _, gate := range gates {
		for code := 0; code < 16; code++ {
			original := pauli.NewGadget(theta, pauli.Pauli(code%4), pauli.Pauli(code/4))
			rewritten := original.Copy()
			gate.ApplyTo(rewritten)

			prefix, suffix := sandwichCircuits(2, gate)
			require.NotZero(t, prefix.Len())

			equal := simulator.Equivalent(2,
				func(s *simulator.StateVector) {
					s.ApplyPauliRotation(theta, original.Paulis)
				},
				func(s *simulator.StateVector) {
					s.ApplyCircuit(prefix)
					s.ApplyPauliRotation(rewritten.Angle, rewritten.Paulis)
					s.ApplyCircuit(suffix)
				},
				1e-9)
			assert.True(t, equal, "gate %T%+v gadget %s", gate, gate, original)
		}
	}
}
