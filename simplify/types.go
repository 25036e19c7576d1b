// Package simplify: selectors, result carriers and sentinel error set.
// All algorithms MUST return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.
package simplify

import (
	"errors"
	"sort"

	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// Sentinel errors for simplify operations.
var (
	// ErrBadSelector indicates a zero-value NodeSelector: neither a boolean
	// mask nor an integer index set was provided.
	ErrBadSelector = errors.New("simplify: selector must be a node mask or an index set")
	// ErrMaskLength indicates a boolean mask whose length differs from the
	// node count it selects over.
	ErrMaskLength = errors.New("simplify: mask length must equal the node count")
	// ErrOutOfRange indicates a node index outside the matrix bounds.
	ErrOutOfRange = errors.New("simplify: node index out of range")
	// ErrCoordLength indicates coordinates that do not cover every node.
	ErrCoordLength = errors.New("simplify: coordinates must cover every node")
	// ErrMissingCoordinates indicates a distance-restricted operation
	// called without node coordinates.
	ErrMissingCoordinates = errors.New("simplify: coordinates are required for distance-based merging")
	// ErrOverlappingClusters indicates merge clusters sharing a node.
	// Collapsing overlapping clusters is ill-defined, so they are rejected
	// up front instead of resolved silently.
	ErrOverlappingClusters = errors.New("simplify: merge clusters must be disjoint")
)

// NodeSelector names a set of nodes either by boolean mask or by explicit
// indices. The zero value selects nothing and is rejected with
// ErrBadSelector, so a forgotten selector never silently becomes a no-op.
type NodeSelector struct {
	mask    []bool
	ids     []int
	hasMask bool
	hasIDs  bool
}

// ByMask selects the nodes where mask is true. The mask length must equal
// the node count of the matrix it is used against.
func ByMask(mask []bool) NodeSelector {
	return NodeSelector{mask: mask, hasMask: true}
}

// ByIndex selects the listed nodes. Duplicates are tolerated and order
// does not matter.
func ByIndex(ids ...int) NodeSelector {
	return NodeSelector{ids: ids, hasIDs: true}
}

// resolve returns the selected node indices (sorted ascending, deduped)
// and the retention mask (true = node survives the operation).
func (s NodeSelector) resolve(m *skeleton.IncidenceMatrix) (ids []int, keep []bool, err error) {
	nn := m.Nodes()
	switch {
	case s.hasMask:
		if len(s.mask) != nn {
			return nil, nil, ErrMaskLength
		}
		keep = make([]bool, nn)
		for n, selected := range s.mask {
			keep[n] = !selected
			if selected {
				ids = append(ids, n)
			}
		}
		return ids, keep, nil
	case s.hasIDs:
		for _, id := range s.ids {
			if id < 0 || id >= nn {
				return nil, nil, ErrOutOfRange
			}
		}
		keep = make([]bool, nn)
		for n := range keep {
			keep[n] = true
		}
		ids = make([]int, 0, len(s.ids))
		for _, id := range s.ids {
			if keep[id] {
				keep[id] = false
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)
		return ids, keep, nil
	default:
		return nil, nil, ErrBadSelector
	}
}

// FuseSkip reports a selected node that could not be fused because its
// degree is not exactly 2. Node is in the pre-fusion index space.
type FuseSkip struct {
	Node   int
	Degree int
}

// FuseLabels projects the fused nodes onto the branches that absorbed
// them: entry i holds the pre-fusion coordinate of the i-th fused node
// and, in Branch, the surviving branch in deleted-slot space (new branch
// index + 1), ready to repaint an externally-held branch label map.
type FuseLabels struct {
	Y, X   []float64
	Branch []int
}

// Fused is the result of FuseNodes.
type Fused struct {
	// Matrix is the reduced incidence matrix.
	Matrix *skeleton.IncidenceMatrix
	// BranchLookup maps old branches to new ones in deleted-slot space.
	BranchLookup []int
	// NodeMask is true for every surviving node (skipped nodes survive).
	NodeMask []bool
	// Skipped lists the selected nodes left untouched, with their degree.
	Skipped []FuseSkip
	// Labels is non-nil when coordinates were supplied to FuseNodes.
	Labels *FuseLabels
}
