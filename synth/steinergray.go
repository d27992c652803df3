// Package synth implements Steiner-Gray non-cutting synthesis: it
// compiles a Pauli polynomial into a connectivity-respecting gate
// sequence by recursively eliminating qubits, partitioning the
// remaining gadgets by their Pauli type on the eliminated qubit and
// merging neighboring qubits with CX sandwiches.
//
// Every gate the synthesizer emits is immediately propagated through
// the affected gadgets of its working polynomial, so that at any point
// the circuit emitted so far, applied to the original input, produces
// exactly the current working polynomial. A violated precondition
// (unknown Pauli value, anchored qubit without neighbors) aborts the
// compilation; no partial result is returned.
package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/clifford"
	"github.com/phasefold/phasefold/debug"
	"github.com/phasefold/phasefold/logger"
	"github.com/phasefold/phasefold/pauli"
	"github.com/phasefold/phasefold/topology"
	"golang.org/x/exp/slices"
)

// ErrNoNeighbor signals that an anchored qubit ran out of available
// neighbors during the secondary recursion; this is a logic error in
// the partitioning/cut-vertex interplay or an unsupported topology,
// never a recoverable condition.
var ErrNoNeighbor = errors.New("synth: anchored qubit has no available neighbor")

// Synthesize compiles the polynomial into a gate sequence for the
// given topology. It returns the circuit, the order in which the
// input gadgets were realized, and the resulting qubit permutation
// (currently always the identity). The input polynomial is not
// modified; synthesis runs on a private copy.
func Synthesize(pp *pauli.Polynomial, topo *topology.Topology) (*circuit.Circuit, []int, []int, error) {
	if pp.NumQubits != topo.NumQubits() {
		return nil, nil, nil, fmt.Errorf("%w: %d-qubit polynomial on %d-qubit topology",
			pauli.ErrQubitMismatch, pp.NumQubits, topo.NumQubits())
	}
	for i, g := range pp.Gadgets {
		if g.NumQubits() != pp.NumQubits {
			return nil, nil, nil, fmt.Errorf("%w: gadget %d has %d qubits, polynomial has %d",
				pauli.ErrQubitMismatch, i, g.NumQubits(), pp.NumQubits)
		}
		for q, p := range g.Paulis {
			if p > pauli.Z {
				return nil, nil, nil, fmt.Errorf("synth: unknown Pauli value %d at gadget %d qubit %d", p, i, q)
			}
		}
	}
	log := logger.Logger()
	start := time.Now()

	s := &synthesizer{pp: pp.Copy(), topo: topo}
	cols := make([]int, pp.NumGadgets())
	for i := range cols {
		cols[i] = i
	}
	qubits := make([]int, pp.NumQubits)
	for i := range qubits {
		qubits[i] = i
	}

	circ, err := s.identityRecurse(cols, qubits)
	if err != nil {
		return nil, nil, nil, err
	}

	// qubit relabeling is structurally supported but never introduced;
	// the permutation stays the identity
	permutation := make([]int, pp.NumQubits)
	for i := range permutation {
		permutation[i] = i
	}

	log.Debug().
		Int("nbQubits", pp.NumQubits).
		Int("nbGadgets", pp.NumGadgets()).
		Int("nbCX", circ.CountCX()).
		Dur("took", time.Since(start)).
		Msg("synthesized pauli polynomial")

	return circ, s.gadgetOrder, permutation, nil
}

// synthesizer carries the recursion state: the working polynomial
// (mutated in place by propagation) and the realized gadget order.
type synthesizer struct {
	pp          *pauli.Polynomial
	topo        *topology.Topology
	gadgetOrder []int
}

func (s *synthesizer) n() int { return s.pp.NumQubits }

// identityRecurse eliminates one non-cutting qubit: it first
// diagonalizes single qubits and merges compatible adjacent pairs
// (both undone at the end, the conjugation sandwich), then partitions
// the columns by the eliminated qubit's Pauli type and recurses per
// bucket.
func (s *synthesizer) identityRecurse(cols, qubits []int) (*circuit.Circuit, error) {
	if len(cols) == 0 {
		return circuit.New(s.n()), nil
	}
	qcDiag := circuit.New(s.n())
	s.updateSingleQubits(qcDiag, qubits, cols)
	s.updatePairQubits(qcDiag, qubits, cols)

	nonCutting := s.topo.NonCutting(qubits)
	if len(nonCutting) == 0 {
		return nil, fmt.Errorf("synth: no non-cutting qubit among %v", qubits)
	}
	row := s.pickRow(cols, nonCutting)
	debug.Assert(row >= 0, "no row picked among non-cutting qubits")
	parts := s.partition(row, cols)
	remaining := remove(qubits, row)

	var qcI *circuit.Circuit
	var err error
	if len(remaining) > 0 {
		qcI, err = s.identityRecurse(parts[pauli.I], remaining)
	} else {
		qcI = s.applyRotation(parts[pauli.I], row, pauli.I)
	}
	if err != nil {
		return nil, err
	}
	qcX, err := s.pRecurse(parts[pauli.X], remaining, row, pauli.X)
	if err != nil {
		return nil, err
	}
	qcY, err := s.pRecurse(parts[pauli.Y], remaining, row, pauli.Y)
	if err != nil {
		return nil, err
	}
	qcZ, err := s.pRecurse(parts[pauli.Z], remaining, row, pauli.Z)
	if err != nil {
		return nil, err
	}

	// qcDiag records the undo gate per propagation step in emission
	// order: the opening bracket inverts each gate in place, the
	// closing bracket replays them back to front.
	out := circuit.New(s.n())
	concat(out, qcDiag.InverseGates(), qcI, qcX, qcY, qcZ, qcDiag.Reversed())
	return out, nil
}

// pRecurse resolves the pending Pauli type on the anchor qubit row by
// merging it with a topology neighbor. The three merge shapes: the
// I bucket keeps row pending (identityRecurse when the next qubit is
// non-cutting, checkIdentity otherwise), the two largest non-identity
// buckets merge via simplifyTwoP, the remaining one via simplifyOneP.
func (s *synthesizer) pRecurse(cols, qubits []int, row int, recType pauli.Pauli) (*circuit.Circuit, error) {
	if len(cols) == 0 {
		return circuit.New(s.n()), nil
	}
	if len(qubits) == 0 {
		return s.applyRotation(cols, row, recType), nil
	}
	sub := append(slices.Clone(qubits), row)
	neighbors := s.topo.NeighborsIn(row, qubits)
	if len(neighbors) == 0 {
		return nil, fmt.Errorf("%w: qubit %d among %v", ErrNoNeighbor, row, qubits)
	}

	rowNext := s.pickRow(cols, neighbors)
	parts := s.partition(rowNext, cols)
	twoA, twoB, colsTwo, oneType, colsOne := selectTwoTypeMerge(parts)
	remaining := remove(qubits, rowNext)

	var qcI *circuit.Circuit
	var err error
	if !s.topo.IsCutting(rowNext, sub) {
		withRow := append(slices.Clone(remaining), row)
		qcI, err = s.identityRecurse(parts[pauli.I], withRow)
	} else {
		qcI, err = s.checkIdentity(parts[pauli.I], remaining, row, rowNext, recType)
	}
	if err != nil {
		return nil, err
	}
	qcTwo, err := s.simplifyTwoP(colsTwo, remaining, row, recType, rowNext, twoA, twoB)
	if err != nil {
		return nil, err
	}
	qcOne, err := s.simplifyOneP(colsOne, remaining, row, recType, rowNext, oneType)
	if err != nil {
		return nil, err
	}

	out := circuit.New(s.n())
	concat(out, qcI, qcTwo, qcOne)
	return out, nil
}

// applyRotation emits the pending rotations ladder-free: basis-change
// row into Z, one Rz per column, undo the basis change. Appends the
// consumed columns to the realized gadget order.
func (s *synthesizer) applyRotation(cols []int, row int, recType pauli.Pauli) *circuit.Circuit {
	qc := circuit.New(s.n())
	switch recType {
	case pauli.X:
		qc.H(row)
	case pauli.Y:
		qc.V(row)
	}
	for _, col := range cols {
		qc.Rz(s.pp.Gadgets[col].Angle, row)
		s.gadgetOrder = append(s.gadgetOrder, col)
	}
	switch recType {
	case pauli.X:
		qc.H(row)
	case pauli.Y:
		qc.Vdg(row)
	}
	return qc
}

// checkIdentity handles the I bucket when the next qubit is a cut
// vertex: conjugate row into Z, swap row and rowNext's roles with a CX
// pair, recurse on Z anchored at rowNext, undo.
func (s *synthesizer) checkIdentity(cols, remaining []int, row, rowNext int, recType pauli.Pauli) (*circuit.Circuit, error) {
	qc := circuit.New(s.n())
	if len(cols) == 0 {
		return qc, nil
	}
	switch recType {
	case pauli.X:
		qc.H(row)
		s.pp.PropagateColumns(clifford.H{Qubit: row}, cols)
	case pauli.Y:
		qc.Vdg(row)
		s.pp.PropagateColumns(clifford.V{Qubit: row}, cols)
	}
	qc.CX(rowNext, row)
	qc.CX(row, rowNext)
	s.pp.PropagateColumns(clifford.CX{Control: rowNext, Target: row}, cols)
	s.pp.PropagateColumns(clifford.CX{Control: row, Target: rowNext}, cols)

	qcI, err := s.pRecurse(cols, remaining, rowNext, pauli.Z)
	if err != nil {
		return nil, err
	}
	concat(qc, qcI)

	qc.CX(row, rowNext)
	qc.CX(rowNext, row)
	switch recType {
	case pauli.X:
		qc.H(row)
	case pauli.Y:
		qc.V(row)
	}
	return qc, nil
}

// simplifyTwoP merges the two selected non-identity types at rowNext
// with a single CX from row: basis-change row to Z and rowNext
// according to which pair of types is present, apply the CX, split the
// columns by their post-CX value at rowNext (Z vs Y) and recurse on
// each, undo.
func (s *synthesizer) simplifyTwoP(cols, remaining []int, row int, recType pauli.Pauli,
	rowNext int, nextA, nextB pauli.Pauli) (*circuit.Circuit, error) {
	qc := circuit.New(s.n())
	if len(cols) == 0 {
		return qc, nil
	}
	switch recType {
	case pauli.X:
		qc.H(row)
		s.pp.PropagateColumns(clifford.H{Qubit: row}, cols)
	case pauli.Y:
		qc.Vdg(row)
		s.pp.PropagateColumns(clifford.V{Qubit: row}, cols)
	}
	switch {
	case nextA == pauli.X && nextB == pauli.Y:
		qc.H(rowNext)
		s.pp.PropagateColumns(clifford.H{Qubit: rowNext}, cols)
	case nextA == pauli.X && nextB == pauli.Z:
		// S sends X to Y and fixes Z, turning the bucket into (Y,Z)
		qc.Sdg(rowNext)
		s.pp.PropagateColumns(clifford.S{Qubit: rowNext}, cols)
	case nextA == pauli.Y && nextB == pauli.Z:
		// already aligned
	}

	qc.CX(row, rowNext)
	s.pp.PropagateColumns(clifford.CX{Control: row, Target: rowNext}, cols)

	var colsZ, colsY []int
	for _, col := range cols {
		switch s.pp.Gadgets[col].Paulis[rowNext] {
		case pauli.Z:
			colsZ = append(colsZ, col)
		case pauli.Y:
			colsY = append(colsY, col)
		}
	}
	if len(colsZ)+len(colsY) != len(cols) {
		return nil, fmt.Errorf("synth: two-type merge lost %d of %d columns at qubit %d",
			len(cols)-len(colsZ)-len(colsY), len(cols), rowNext)
	}
	qcZ, err := s.pRecurse(colsZ, remaining, rowNext, pauli.Z)
	if err != nil {
		return nil, err
	}
	qcY, err := s.pRecurse(colsY, remaining, rowNext, pauli.Y)
	if err != nil {
		return nil, err
	}
	concat(qc, qcZ, qcY)

	qc.CX(row, rowNext)
	switch recType {
	case pauli.X:
		qc.H(row)
	case pauli.Y:
		qc.V(row)
	}
	switch {
	case nextA == pauli.X && nextB == pauli.Y:
		qc.H(rowNext)
	case nextA == pauli.X && nextB == pauli.Z:
		qc.S(rowNext)
	}
	return qc, nil
}

// simplifyOneP collapses the single remaining non-identity type at
// rowNext with one CX, recursing once on Z anchored at rowNext.
func (s *synthesizer) simplifyOneP(cols, remaining []int, row int, recType pauli.Pauli,
	rowNext int, nextType pauli.Pauli) (*circuit.Circuit, error) {
	qc := circuit.New(s.n())
	if len(cols) == 0 {
		return qc, nil
	}
	switch recType {
	case pauli.X:
		qc.H(row)
		s.pp.PropagateColumns(clifford.H{Qubit: row}, cols)
	case pauli.Y:
		qc.Vdg(row)
		s.pp.PropagateColumns(clifford.V{Qubit: row}, cols)
	}
	switch nextType {
	case pauli.X:
		qc.H(rowNext)
		s.pp.PropagateColumns(clifford.H{Qubit: rowNext}, cols)
	case pauli.Y:
		qc.Vdg(rowNext)
		s.pp.PropagateColumns(clifford.V{Qubit: rowNext}, cols)
	}

	qc.CX(row, rowNext)
	s.pp.PropagateColumns(clifford.CX{Control: row, Target: rowNext}, cols)

	inner, err := s.pRecurse(cols, remaining, rowNext, pauli.Z)
	if err != nil {
		return nil, err
	}
	concat(qc, inner)
	qc.CX(row, rowNext)

	switch recType {
	case pauli.X:
		qc.H(row)
	case pauli.Y:
		qc.V(row)
	}
	switch nextType {
	case pauli.X:
		qc.H(rowNext)
	case pauli.Y:
		qc.V(rowNext)
	}
	return qc, nil
}
