// Package matching: distance-based node correspondence between two graphs.
package matching

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ClementPla/fundus-vessels-toolkit/geometry"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// distanceEpsilon stabilizes reciprocal-distance weights when two nodes
// coincide exactly.
const distanceEpsilon = 1e-8

// MatchNodes pairs nodes of graph a with nodes of graph b one-to-one.
// The pairing maximizes the summed reciprocal distance of matched pairs;
// with a positive MaxDistance every node also holds an unmatched option
// worth 0.5/(1e-8+MaxDistance), which beats any pairing farther apart
// than MaxDistance. Either side being empty yields an empty Matching.
//
// The heavy lifting is delegated to opts.Solver (HungarianSolver when
// nil), so an approximate or external oracle can be swapped in.
func MatchNodes(a, b skeleton.Coordinates, opts MatchOptions) (Matching, error) {
	if err := a.Validate(); err != nil {
		return Matching{}, err
	}
	if err := b.Validate(); err != nil {
		return Matching{}, err
	}
	if a.Len() == 0 || b.Len() == 0 {
		return Matching{}, nil
	}

	dists, err := geometry.PairwiseDistances(a, b)
	if err != nil {
		return Matching{}, err
	}
	na, nb := a.Len(), b.Len()
	w := make([]float64, 0, na*nb)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			w = append(w, 1/(distanceEpsilon+dists.At(i, j)))
		}
	}
	weightMat := mat.NewDense(na, nb, w)

	minWeight := 0.0
	if opts.MaxDistance > 0 {
		minWeight = 0.5 / (distanceEpsilon + opts.MaxDistance)
	}
	unmatchedA := make([]float64, na)
	unmatchedB := make([]float64, nb)
	for i := range unmatchedA {
		unmatchedA[i] = minWeight
	}
	for j := range unmatchedB {
		unmatchedB[j] = minWeight
	}

	solver := opts.Solver
	if solver == nil {
		solver = HungarianSolver{}
	}
	pairs, err := solver.Solve(weightMat, unmatchedA, unmatchedB)
	if err != nil {
		return Matching{}, err
	}

	out := Matching{
		A: make([]int, len(pairs)),
		B: make([]int, len(pairs)),
	}
	if opts.WithDistances {
		out.Distances = make([]float64, len(pairs))
	}
	for k, p := range pairs {
		out.A[k] = p[0]
		out.B[k] = p[1]
		if opts.WithDistances {
			out.Distances[k] = dists.At(p[0], p[1])
		}
	}
	return out, nil
}
