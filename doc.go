// Package phasefold compiles Pauli polynomials -- ordered sequences of
// multi-qubit Pauli rotations -- into elementary gate sequences that
// respect a fixed hardware qubit-connectivity graph, minimizing the
// number of two-qubit gates.
//
// The compiler is organized as:
//   - pauli: the gadget/polynomial data model, propagation and
//     simplification
//   - clifford: conjugation rule tables for H, S, V and CX
//   - topology: connectivity graphs and their shortest-path,
//     neighbor and cut-vertex queries
//   - steiner: Steiner-tree CNOT-ladder assignment for a set of
//     active qubits
//   - synth: the Steiner-Gray non-cutting synthesis algorithm
//   - circuit: the emitted gate-sequence container
package phasefold

import "github.com/blang/semver/v4"

// Version of the phasefold library
var Version = semver.MustParse("0.1.0")
