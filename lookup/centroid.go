package lookup

import (
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// weightEpsilon is added to every merge weight so a cluster whose weights
// are all zero still has a defined barycenter.
const weightEpsilon = 1e-8

// MergeCoordinates collapses node coordinates through a many-to-one dense
// table: every output node receives the weighted barycenter of the
// original coordinates mapping onto it. A nil table returns a copy of the
// input. A nil or all-zero weight slice falls back to uniform weights.
// The result has length max(table)+1.
//
// Returns ErrLengthMismatch when coordinates, table and weights are not
// index-aligned, and ErrOutOfRange on a negative table entry. Validation
// happens before any allocation of the result.
// Complexity: O(N) time, O(max+1) memory.
func MergeCoordinates(coords skeleton.Coordinates, table []int, weights []float64) (skeleton.Coordinates, error) {
	if table == nil {
		return coords.Clone(), nil
	}
	if err := coords.Validate(); err != nil {
		return skeleton.Coordinates{}, err
	}
	if coords.Len() != len(table) {
		return skeleton.Coordinates{}, ErrLengthMismatch
	}
	if weights != nil && len(weights) != len(table) {
		return skeleton.Coordinates{}, ErrLengthMismatch
	}
	maxVal := -1
	for _, v := range table {
		if v < 0 {
			return skeleton.Coordinates{}, ErrOutOfRange
		}
		if v > maxVal {
			maxVal = v
		}
	}

	uniform := weights == nil
	if !uniform {
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		uniform = sum == 0
	}

	y := make([]float64, maxVal+1)
	x := make([]float64, maxVal+1)
	total := make([]float64, maxVal+1)
	for i, v := range table {
		w := 1.0
		if !uniform {
			w = weights[i]
		}
		w += weightEpsilon
		y[v] += coords.Y[i] * w
		x[v] += coords.X[i] * w
		total[v] += w
	}
	for v := range y {
		if total[v] == 0 {
			continue // output slot no original node maps onto
		}
		y[v] /= total[v]
		x[v] /= total[v]
	}
	return skeleton.Coordinates{Y: y, X: x}, nil
}
