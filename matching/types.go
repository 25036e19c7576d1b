// Package matching: solver interface, options and result carrier.
package matching

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadWeights indicates solver inputs whose unmatched-weight vectors do
// not match the weight matrix dimensions.
var ErrBadWeights = errors.New("matching: unmatched-weight vectors must match the weight matrix")

// AssignmentSolver finds a one-to-one pairing maximizing total weight.
// weights is a |A|×|B| similarity matrix; unmatchedA[i] (resp.
// unmatchedB[j]) is the weight collected by leaving node i of A (j of B)
// unmatched. The returned pairs are (indexA, indexB); unmatched nodes are
// simply absent.
type AssignmentSolver interface {
	Solve(weights *mat.Dense, unmatchedA, unmatchedB []float64) ([][2]int, error)
}

// MatchOptions configures MatchNodes. The zero value matches every node
// greedily toward the global optimum with no distance cap.
type MatchOptions struct {
	// MaxDistance caps the distance at which a pairing is still worth
	// more than leaving both nodes unmatched. Non-positive = no cap.
	MaxDistance float64
	// WithDistances requests the realized distance of every match in the
	// result.
	WithDistances bool
	// Solver overrides the assignment oracle. Nil selects HungarianSolver.
	Solver AssignmentSolver
}

// DefaultMatchOptions returns a MatchOptions with no distance cap, no
// returned distances and the built-in exact solver.
func DefaultMatchOptions() MatchOptions { return MatchOptions{} }

// Matching is the result of MatchNodes: A[i] from the first graph is
// paired with B[i] from the second. Distances is index-aligned with A/B
// and nil unless requested via WithDistances.
type Matching struct {
	A, B      []int
	Distances []float64
}

// Len returns the number of matched pairs.
func (m Matching) Len() int { return len(m.A) }
