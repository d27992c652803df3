package simulator

import (
	"math/cmplx"

	"golang.org/x/sync/errgroup"
)

// Transform mutates a statevector; circuits and polynomials are both
// wrapped as Transforms for comparison.
type Transform func(*StateVector)

// Equivalent reports whether two transforms agree on every
// computational basis state up to one common global phase, within
// tol per amplitude. Basis columns are independent, so they are
// evaluated in parallel.
func Equivalent(numQubits int, a, b Transform, tol float64) bool {
	dim := 1 << numQubits
	colsA := make([]*StateVector, dim)
	colsB := make([]*StateVector, dim)

	var g errgroup.Group
	for k := 0; k < dim; k++ {
		k := k
		g.Go(func() error {
			sa := NewBasis(numQubits, k)
			a(sa)
			colsA[k] = sa
			sb := NewBasis(numQubits, k)
			b(sb)
			colsB[k] = sb
			return nil
		})
	}
	_ = g.Wait()

	// fix the relative phase from the first significant amplitude
	phase := complex(1, 0)
	fixed := false
	for k := 0; k < dim && !fixed; k++ {
		for i, av := range colsA[k].Amplitudes {
			if cmplx.Abs(av) > tol {
				bv := colsB[k].Amplitudes[i]
				if cmplx.Abs(bv) <= tol {
					return false
				}
				phase = bv / av
				fixed = true
				break
			}
		}
	}
	for k := 0; k < dim; k++ {
		for i, av := range colsA[k].Amplitudes {
			if cmplx.Abs(phase*av-colsB[k].Amplitudes[i]) > tol {
				return false
			}
		}
	}
	return true
}
