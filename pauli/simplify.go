package pauli

import "math"

// Simplify iteratively merges gadgets with identical Pauli strings:
// the left occurrence's angle is folded into the next identical gadget
// to its right whenever the left gadget commutes with everything in
// between, and gadgets whose angle has collapsed to 0 or a full turn
// are dropped. Runs to a fixed point and returns a new polynomial.
//
// The in-between check tests commutation against the left endpoint
// only, not pairwise among interior gadgets.
func Simplify(p *Polynomial) *Polynomial {
	remaining := make([]*Gadget, len(p.Gadgets))
	for i, g := range p.Gadgets {
		remaining[i] = g.Copy()
	}
	converged := false
	for !converged {
		remaining = removeCollapsed(remaining)
		converged = foldMatchingGadgets(remaining)
	}
	out := NewPolynomial(p.NumQubits)
	out.Gadgets = remaining
	return out
}

// removeCollapsed drops gadgets whose angle is exactly 0 or 2*pi. No
// epsilon is applied: near-zero angles from accumulated propagation
// survive.
func removeCollapsed(remaining []*Gadget) []*Gadget {
	out := remaining[:0]
	for _, g := range remaining {
		if g.Angle != 0 && g.Angle != 2*math.Pi {
			out = append(out, g)
		}
	}
	return out
}

// findMatchingRight returns the index of the next gadget right of idx
// with an identical Pauli string, or -1.
func findMatchingRight(idx int, remaining []*Gadget) int {
	g := remaining[idx]
	for j := idx + 1; j < len(remaining); j++ {
		match := true
		for q, p := range g.Paulis {
			if remaining[j].Paulis[q] != p {
				match = false
				break
			}
		}
		if match {
			return j
		}
	}
	return -1
}

func isCommutingRegion(idx, idxRight int, remaining []*Gadget) bool {
	for k := idx; k < idxRight; k++ {
		if !remaining[idx].commutes(remaining[k]) {
			return false
		}
	}
	return true
}

// foldMatchingGadgets performs one merge pass and reports whether it
// reached a fixed point.
func foldMatchingGadgets(remaining []*Gadget) bool {
	converged := true
	for idx, g := range remaining {
		idxRight := findMatchingRight(idx, remaining)
		if idxRight == -1 {
			continue
		}
		if !isCommutingRegion(idx, idxRight, remaining) {
			continue
		}
		remaining[idxRight].Angle += g.Angle
		g.Angle = 0
		converged = false
	}
	return converged
}
