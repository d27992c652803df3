package pauli_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/internal/simulator"
	"github.com/phasefold/phasefold/pauli"
	"github.com/phasefold/phasefold/topology"
)

func TestGadgetBasics(t *testing.T) {
	g := pauli.NewGadget(0.5, pauli.X, pauli.I, pauli.Z)
	assert.Equal(t, 3, g.NumQubits())
	assert.Equal(t, 2, g.NumLegs())
	assert.Equal(t, "PPhase(0.5) @ [ X, I, Z ]", g.String())

	cp := g.Copy()
	cp.Paulis[1] = pauli.Y
	cp.Angle = 1.0
	assert.Equal(t, pauli.I, g.Paulis[1])
	assert.Equal(t, 0.5, g.Angle)

	g.SwapQubits(0, 1)
	assert.Equal(t, []pauli.Pauli{pauli.I, pauli.X, pauli.Z}, g.Paulis)

	support := g.Support()
	assert.False(t, support.Test(0))
	assert.True(t, support.Test(1))
	assert.True(t, support.Test(2))
}

func TestCommutes(t *testing.T) {
	xx := pauli.NewGadget(1, pauli.X, pauli.X)
	zz := pauli.NewGadget(1, pauli.Z, pauli.Z)
	xi := pauli.NewGadget(1, pauli.X, pauli.I)
	zi := pauli.NewGadget(1, pauli.Z, pauli.I)

	ok, err := xx.Commutes(zz)
	require.NoError(t, err)
	assert.True(t, ok) // two anticommuting positions cancel

	ok, err = xi.Commutes(zi)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = xx.Commutes(pauli.NewGadget(1, pauli.X))
	assert.ErrorIs(t, err, pauli.ErrQubitMismatch)
}

func TestCommutesSymmetryProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	genPaulis := gen.SliceOfN(5, gen.UInt8Range(0, 3))

	properties := gopter.NewProperties(parameters)
	properties.Property("commutes(g1,g2) == commutes(g2,g1)", prop.ForAll(
		func(a, b []uint8) bool {
			g1 := gadgetFromBytes(1.0, a)
			g2 := gadgetFromBytes(1.0, b)
			c12, err1 := g1.Commutes(g2)
			c21, err2 := g2.Commutes(g1)
			return err1 == nil && err2 == nil && c12 == c21
		},
		genPaulis,
		genPaulis,
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func gadgetFromBytes(angle float64, bs []uint8) *pauli.Gadget {
	ps := make([]pauli.Pauli, len(bs))
	for i, b := range bs {
		ps[i] = pauli.Pauli(b)
	}
	return pauli.NewGadget(angle, ps...)
}

func TestMutualLegs(t *testing.T) {
	g1 := pauli.NewGadget(1, pauli.X, pauli.Y, pauli.I)
	g2 := pauli.NewGadget(1, pauli.Z, pauli.I, pauli.I)
	score, err := g1.MutualLegs(g2)
	require.NoError(t, err)
	assert.Equal(t, -1, score) // +1 -1 -1

	_, err = g1.MutualLegs(pauli.NewGadget(1, pauli.X))
	assert.ErrorIs(t, err, pauli.ErrQubitMismatch)
}

func TestTwoQubitCountSingleLeg(t *testing.T) {
	topos := []*topology.Topology{
		topology.Line(4),
		topology.Ring(4),
		topology.Complete(4),
		topology.Grid(2, 2),
	}
	for q := 0; q < 4; q++ {
		for _, p := range []pauli.Pauli{pauli.X, pauli.Y, pauli.Z} {
			ps := make([]pauli.Pauli, 4)
			ps[q] = p
			g := pauli.NewGadget(0.3, ps...)
			for _, topo := range topos {
				count, err := g.TwoQubitCount(topo, nil)
				require.NoError(t, err)
				assert.Zero(t, count)
			}
		}
	}
}

func TestTwoQubitCountDistantLegs(t *testing.T) {
	topo := topology.Line(3)
	g := pauli.NewGadget(0.3, pauli.X, pauli.I, pauli.X)
	count, err := g.TwoQubitCount(topo, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, count) // 3 ladder steps, mirrored

	cache := pauli.LegCache{}
	count, err = g.TwoQubitCount(topo, cache)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Len(t, cache, 1)

	// same support, different Pauli types: cache hit
	g2 := pauli.NewGadget(1.1, pauli.Z, pauli.I, pauli.Y)
	count, err = g2.TwoQubitCount(topo, cache)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.Len(t, cache, 1)
}

func TestToCircuitStructure(t *testing.T) {
	topo := topology.Line(3)
	theta := 0.7533
	g := pauli.NewGadget(theta, pauli.X, pauli.X, pauli.I)
	circ, err := g.ToCircuit(topo)
	require.NoError(t, err)

	assert.Equal(t, 2, circ.CountCX())
	rotations := 0
	for _, gate := range circ.Gates() {
		assert.NotEqual(t, 2, gate.Target, "qubit 2 must stay untouched")
		if gate.Kind == circuit.CX {
			assert.NotEqual(t, 2, gate.Control)
		}
		if gate.Kind == circuit.Rz {
			rotations++
			assert.Equal(t, theta, gate.Theta)
			assert.Equal(t, 0, gate.Target) // first active qubit is the root
		}
	}
	assert.Equal(t, 1, rotations)
}

func TestToCircuitGlobalPhase(t *testing.T) {
	topo := topology.Line(2)
	theta := 1.25
	g := pauli.NewGadget(theta, pauli.I, pauli.I)
	circ, err := g.ToCircuit(topo)
	require.NoError(t, err)
	assert.Zero(t, circ.Len())
	assert.Equal(t, theta, circ.GlobalPhase())

	equal := simulator.Equivalent(2,
		func(s *simulator.StateVector) { s.ApplyPauliRotation(theta, g.Paulis) },
		func(s *simulator.StateVector) { s.ApplyCircuit(circ) },
		1e-9)
	assert.True(t, equal)
}

// every Pauli string over 1..3 qubits, on a line and on a complete
// topology, must decompose into a circuit implementing
// exp(-i*theta/2 * P) up to global phase
func TestToCircuitRoundTrip(t *testing.T) {
	theta := 0.7533
	for n := 1; n <= 3; n++ {
		topos := []*topology.Topology{topology.Line(n)}
		if n > 1 {
			topos = append(topos, topology.Complete(n))
		}
		total := 1
		for i := 0; i < n; i++ {
			total *= 4
		}
		for code := 0; code < total; code++ {
			ps := make([]pauli.Pauli, n)
			c := code
			for q := 0; q < n; q++ {
				ps[q] = pauli.Pauli(c % 4)
				c /= 4
			}
			g := pauli.NewGadget(theta, ps...)
			for _, topo := range topos {
				circ, err := g.ToCircuit(topo)
				require.NoError(t, err)
				equal := simulator.Equivalent(n,
					func(s *simulator.StateVector) { s.ApplyPauliRotation(theta, ps) },
					func(s *simulator.StateVector) { s.ApplyCircuit(circ) },
					1e-9)
				assert.True(t, equal, "gadget %s", g)
			}
		}
	}
}

func TestToCircuitRoundTripFourQubitLine(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 4-qubit enumeration in short mode")
	}
	theta := math.Pi / 3
	topo := topology.Line(4)
	for code := 0; code < 256; code++ {
		ps := make([]pauli.Pauli, 4)
		c := code
		for q := 0; q < 4; q++ {
			ps[q] = pauli.Pauli(c % 4)
			c /= 4
		}
		g := pauli.NewGadget(theta, ps...)
		circ, err := g.ToCircuit(topo)
		require.NoError(t, err)
		equal := simulator.Equivalent(4,
			func(s *simulator.StateVector) { s.ApplyPauliRotation(theta, ps) },
			func(s *simulator.StateVector) { s.ApplyCircuit(circ) },
			1e-9)
		assert.True(t, equal, "gadget %s", g)
	}
}
