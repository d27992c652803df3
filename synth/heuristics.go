package synth

import (
	"github.com/phasefold/phasefold/circuit"
	"github.com/phasefold/phasefold/clifford"
	"github.com/phasefold/phasefold/pauli"
	"golang.org/x/exp/slices"
)

// pickRow chooses the candidate qubit whose per-Pauli-type column
// counts have the largest max-min spread; the first maximum wins.
func (s *synthesizer) pickRow(cols, candidates []int) int {
	best := -1
	bestScore := -1
	for _, q := range candidates {
		var counts [4]int
		for _, col := range cols {
			counts[s.pp.Gadgets[col].Paulis[q]]++
		}
		lo, hi := counts[0], counts[0]
		for _, c := range counts[1:] {
			if c < lo {
				lo = c
			}
			if c > hi {
				hi = c
			}
		}
		if score := hi - lo; score > bestScore {
			best, bestScore = q, score
		}
	}
	return best
}

// partition buckets the columns by their Pauli value at row,
// preserving column order.
func (s *synthesizer) partition(row int, cols []int) [4][]int {
	var parts [4][]int
	for _, col := range cols {
		p := s.pp.Gadgets[col].Paulis[row]
		parts[p] = append(parts[p], col)
	}
	return parts
}

// selectTwoTypeMerge picks which two of the three non-identity buckets
// are merged jointly (the largest combined bucket; ties keep the
// (X,Y) > (X,Z) > (Y,Z) candidate order) and which one is merged
// alone.
func selectTwoTypeMerge(parts [4][]int) (twoA, twoB pauli.Pauli, colsTwo []int, oneType pauli.Pauli, colsOne []int) {
	type candidate struct {
		a, b    pauli.Pauli
		twoCols []int
		one     pauli.Pauli
		oneCols []int
	}
	candidates := []candidate{
		{pauli.X, pauli.Y, joined(parts[pauli.X], parts[pauli.Y]), pauli.Z, parts[pauli.Z]},
		{pauli.X, pauli.Z, joined(parts[pauli.X], parts[pauli.Z]), pauli.Y, parts[pauli.Y]},
		{pauli.Y, pauli.Z, joined(parts[pauli.Y], parts[pauli.Z]), pauli.X, parts[pauli.X]},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.twoCols) > len(best.twoCols) {
			best = c
		}
	}
	return best.a, best.b, best.twoCols, best.one, best.oneCols
}

func joined(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// findCommonPauli returns the single non-identity Pauli type shared by
// every active column at q, if there is exactly one.
func (s *synthesizer) findCommonPauli(q int, cols []int) (pauli.Pauli, bool) {
	var seen [4]bool
	for _, col := range cols {
		if p := s.pp.Gadgets[col].Paulis[q]; p != pauli.I {
			seen[p] = true
		}
	}
	common := pauli.I
	count := 0
	for p := pauli.X; p <= pauli.Z; p++ {
		if seen[p] {
			common = p
			count++
		}
	}
	return common, count == 1
}

// updateGadgetSingleColumn basis-changes qubit q so that its uniform
// Pauli type p becomes Z, emitting the gate and propagating it through
// the active columns. Z needs nothing.
func (s *synthesizer) updateGadgetSingleColumn(qc *circuit.Circuit, q int, p pauli.Pauli, cols []int) {
	switch p {
	case pauli.X:
		s.pp.PropagateColumns(clifford.H{Qubit: q}, cols)
		qc.H(q)
	case pauli.Y:
		s.pp.PropagateColumns(clifford.V{Qubit: q}, cols)
		qc.V(q)
	case pauli.Z:
	}
}

// updateSingleQubits diagonalizes every qubit whose restriction to the
// active columns is uniformly one Pauli type.
func (s *synthesizer) updateSingleQubits(qc *circuit.Circuit, qubits, cols []int) bool {
	change := false
	for _, q := range qubits {
		if p, ok := s.findCommonPauli(q, cols); ok {
			s.updateGadgetSingleColumn(qc, q, p, cols)
			change = true
		}
	}
	return change
}

// findCompatiblePair looks for Pauli types p1, p2 such that every
// active column restricted to (q1, q2) falls in {I,p1} x {I,p2}
// consistently (a column is either valid on both qubits or on
// neither).
func (s *synthesizer) findCompatiblePair(q1, q2 int, cols []int) (pauli.Pauli, pauli.Pauli, bool) {
	for p1 := pauli.X; p1 <= pauli.Z; p1++ {
		for p2 := pauli.X; p2 <= pauli.Z; p2++ {
			found := true
			for _, col := range cols {
				g1 := s.pp.Gadgets[col].Paulis[q1]
				g2 := s.pp.Gadgets[col].Paulis[q2]
				aValid := g1 == pauli.I || g1 == p1
				bValid := g2 == pauli.I || g2 == p2
				if aValid != bValid {
					found = false
					break
				}
			}
			if found {
				return p1, p2, true
			}
		}
	}
	return pauli.I, pauli.I, false
}

// pickBestPair scans the topology edges restricted to the remaining
// qubits for the first compatible pair.
func (s *synthesizer) pickBestPair(cols, qubits []int) (p1, p2 pauli.Pauli, q1, q2 int, ok bool) {
	for _, e := range s.topo.Edges() {
		if !slices.Contains(qubits, e[0]) || !slices.Contains(qubits, e[1]) {
			continue
		}
		if p1, p2, ok := s.findCompatiblePair(e[0], e[1], cols); ok {
			return p1, p2, e[0], e[1], true
		}
	}
	return pauli.I, pauli.I, 0, 0, false
}

// updatePairQubits greedily merges topology-adjacent qubit pairs whose
// restricted Pauli patterns are jointly compatible, one CX per pair,
// each qubit used at most once.
func (s *synthesizer) updatePairQubits(qc *circuit.Circuit, qubits, cols []int) {
	nonVisited := slices.Clone(qubits)
	p1, p2, q1, q2, ok := s.pickBestPair(cols, qubits)
	for ok && len(nonVisited) > 0 {
		nonVisited = remove(nonVisited, q1)
		nonVisited = remove(nonVisited, q2)
		s.updateGadgetSingleColumn(qc, q1, p1, cols)
		s.updateGadgetSingleColumn(qc, q2, p2, cols)
		s.pp.PropagateColumns(clifford.CX{Control: q1, Target: q2}, cols)
		qc.CX(q1, q2)
		p1, p2, q1, q2, ok = s.pickBestPair(cols, nonVisited)
	}
}

// remove returns list without v, order preserved, fresh backing array.
func remove(list []int, v int) []int {
	out := make([]int, 0, len(list))
	for _, q := range list {
		if q != v {
			out = append(out, q)
		}
	}
	return out
}

// concat appends srcs onto dst; all circuits share the synthesizer's
// register so the append cannot fail.
func concat(dst *circuit.Circuit, srcs ...*circuit.Circuit) {
	for _, src := range srcs {
		_ = dst.Append(src)
	}
}
