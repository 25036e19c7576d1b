// Package geometry: Euclidean distance kernels over node coordinates.
package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// ErrEmptyCoordinates indicates a distance matrix was requested for a
// coordinate set with no nodes (a mat.Dense cannot have a zero dimension).
var ErrEmptyCoordinates = errors.New("geometry: coordinate set is empty")

// Distance returns the Euclidean distance between nodes i of a and j of b.
// Indices are not range-checked (programmer error, like slice indexing).
func Distance(a skeleton.Coordinates, i int, b skeleton.Coordinates, j int) float64 {
	dy := a.Y[i] - b.Y[j]
	dx := a.X[i] - b.X[j]
	return math.Hypot(dy, dx)
}

// PairwiseDistances computes the full |A|×|B| Euclidean distance matrix
// between two coordinate sets. Returns ErrEmptyCoordinates when either
// set is empty.
// Complexity: O(|A|×|B|) time and memory.
func PairwiseDistances(a, b skeleton.Coordinates) (*mat.Dense, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return nil, ErrEmptyCoordinates
	}
	out := mat.NewDense(na, nb, nil)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			out.Set(i, j, Distance(a, i, b, j))
		}
	}
	return out, nil
}

// SelfDistances computes the symmetric |A|×|A| distance matrix of one
// coordinate set, computing each off-diagonal pair once. The diagonal is
// zero. Returns ErrEmptyCoordinates on an empty set.
func SelfDistances(a skeleton.Coordinates) (*mat.Dense, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	n := a.Len()
	if n == 0 {
		return nil, ErrEmptyCoordinates
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(a, i, a, j)
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}
	return out, nil
}

// PolygonPerimeter returns the perimeter of the closed polygon whose
// vertices are the coordinates in ring order, including the wrap-around
// segment from the last vertex back to the first. Rings of fewer than two
// vertices have perimeter 0.
func PolygonPerimeter(ring skeleton.Coordinates) (float64, error) {
	if err := ring.Validate(); err != nil {
		return 0, err
	}
	n := ring.Len()
	if n < 2 {
		return 0, nil
	}
	total := 0.0
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		total += Distance(ring, i, ring, next)
	}
	return total, nil
}
