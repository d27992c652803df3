// Package simulator provides a small statevector engine used by tests
// to check that emitted circuits are unitarily equivalent to the Pauli
// polynomials they were compiled from. It is test support, not a
// product feature.
package simulator

import (
	"math"
	"math/cmplx"

	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/pauli"
)

// StateVector holds 2^NumQubits complex amplitudes; qubit q maps to
// bit q of the basis index.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// New returns the all-zeros basis state |0...0>.
func New(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// NewBasis returns the computational basis state |index>.
func NewBasis(numQubits, index int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[index] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Clone deep-copies the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

func (s *StateVector) applySingle(target int, m [2][2]complex128) {
	bit := 1 << target
	for i := range s.Amplitudes {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
		s.Amplitudes[i] = m[0][0]*a0 + m[0][1]*a1
		s.Amplitudes[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

func (s *StateVector) applyCX(control, target int) {
	cbit, tbit := 1<<control, 1<<target
	for i := range s.Amplitudes {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)
	matH     = [2][2]complex128{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	// V = sqrt(X), Vdg its adjoint
	matV   = [2][2]complex128{{0.5 + 0.5i, 0.5 - 0.5i}, {0.5 - 0.5i, 0.5 + 0.5i}}
	matVdg = [2][2]complex128{{0.5 - 0.5i, 0.5 + 0.5i}, {0.5 + 0.5i, 0.5 - 0.5i}}
	matS   = [2][2]complex128{{1, 0}, {0, 1i}}
	matSdg = [2][2]complex128{{1, 0}, {0, -1i}}
)

func matRz(theta float64) [2][2]complex128 {
	return [2][2]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// ApplyCircuit applies every gate of c in order, then the accumulated
// global phase as the factor exp(-i*phase/2).
func (s *StateVector) ApplyCircuit(c *circuit.Circuit) {
	for _, g := range c.Gates() {
		switch g.Kind {
		case circuit.H:
			s.applySingle(g.Target, matH)
		case circuit.V:
			s.applySingle(g.Target, matV)
		case circuit.Vdg:
			s.applySingle(g.Target, matVdg)
		case circuit.S:
			s.applySingle(g.Target, matS)
		case circuit.Sdg:
			s.applySingle(g.Target, matSdg)
		case circuit.Rz:
			s.applySingle(g.Target, matRz(g.Theta))
		case circuit.CX:
			s.applyCX(g.Control, g.Target)
		}
	}
	if phi := c.GlobalPhase(); phi != 0 {
		factor := cmplx.Exp(complex(0, -phi/2))
		for i := range s.Amplitudes {
			s.Amplitudes[i] *= factor
		}
	}
}

// applyPauliString replaces the state with P|psi> for the tensor
// product P of the given Paulis.
func (s *StateVector) applyPauliString(paulis []pauli.Pauli) {
	out := make([]complex128, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		if a == 0 {
			continue
		}
		j := i
		phase := complex(1, 0)
		for q, p := range paulis {
			bit := 1 << q
			switch p {
			case pauli.X:
				j ^= bit
			case pauli.Y:
				if i&bit == 0 {
					phase *= 1i
				} else {
					phase *= -1i
				}
				j ^= bit
			case pauli.Z:
				if i&bit != 0 {
					phase = -phase
				}
			}
		}
		out[j] += phase * a
	}
	s.Amplitudes = out
}

// ApplyPauliRotation applies exp(-i*theta/2 * P) directly:
// cos(theta/2)*|psi> - i*sin(theta/2)*P|psi>. This is the reference
// semantics circuits are checked against.
func (s *StateVector) ApplyPauliRotation(theta float64, paulis []pauli.Pauli) {
	rotated := s.Clone()
	rotated.applyPauliString(paulis)
	c := complex(math.Cos(theta/2), 0)
	is := complex(0, math.Sin(theta/2))
	for i := range s.Amplitudes {
		s.Amplitudes[i] = c*s.Amplitudes[i] - is*rotated.Amplitudes[i]
	}
}

// ApplyPolynomial applies every gadget's rotation in sequence order.
func (s *StateVector) ApplyPolynomial(pp *pauli.Polynomial) {
	for _, g := range pp.Gadgets {
		s.ApplyPauliRotation(g.Angle, g.Paulis)
	}
}
