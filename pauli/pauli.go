// Package pauli provides the data model for Pauli polynomials: single
// rotation gadgets (a Pauli string plus an angle), ordered gadget
// sequences, Clifford-gate propagation through them, and gadget-level
// commutation/merge simplification.
package pauli

import "errors"

// Pauli is one of the four single-qubit Pauli operators.
type Pauli uint8

const (
	I Pauli = iota
	X
	Y
	Z
)

func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// ErrQubitMismatch signals an operation over gadgets or polynomials of
// different qubit counts.
var ErrQubitMismatch = errors.New("pauli: qubit count mismatch")

// CliffordGate rewrites a gadget in place to reflect conjugating the
// rotation through the gate: the affected Pauli entries change and the
// angle sign may flip. Implementations live in the clifford package.
type CliffordGate interface {
	ApplyTo(g *Gadget)
}
