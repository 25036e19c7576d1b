package simplify

import (
	"github.com/ClementPla/fundus-vessels-toolkit/geometry"
	"github.com/ClementPla/fundus-vessels-toolkit/lookup"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// EquivalentOptions configures MergeEquivalentBranches.
type EquivalentOptions struct {
	// MaxNodeDistance restricts duplicate detection to branches whose two
	// endpoints are within this distance ("near-duplicate" micro-loops),
	// so long branches coincidentally sharing endpoints are left alone.
	// A non-positive value selects exact mode: structural row equality
	// over every branch, regardless of geometry.
	MaxNodeDistance float64
	// Coords supplies node positions; required when MaxNodeDistance > 0.
	Coords *skeleton.Coordinates
}

// DefaultEquivalentOptions returns options selecting exact duplicate
// removal.
func DefaultEquivalentOptions() EquivalentOptions { return EquivalentOptions{} }

// MergeEquivalentBranches removes branches with identical node-membership
// rows, keeping the first occurrence (lowest original index) of each
// distinct row. Every removed duplicate is remapped onto its surviving
// representative in the returned deleted-slot branch lookup.
//
// In exact mode the lookup is always returned. In distance mode a nil
// lookup (and the input matrix, unchanged) is returned when no duplicate
// fell under the cap.
// Complexity: O(B×N) time and memory.
func MergeEquivalentBranches(m *skeleton.IncidenceMatrix, opts EquivalentOptions) (*skeleton.IncidenceMatrix, []int, error) {
	if opts.MaxNodeDistance > 0 {
		return mergeShortDuplicates(m, opts.MaxNodeDistance, opts.Coords)
	}

	nb := m.Branches()
	firstOf := make(map[string]int, nb) // row content → representative branch
	keepBranch := make([]bool, nb)
	newIndex := make([]int, nb)
	next := 0
	for b := 0; b < nb; b++ {
		key := rowKey(m.RowView(b))
		if rep, ok := firstOf[key]; ok {
			newIndex[b] = newIndex[rep]
			continue
		}
		firstOf[key] = b
		keepBranch[b] = true
		newIndex[b] = next
		next++
	}

	reduced, err := m.SelectBranches(keepBranch)
	if err != nil {
		return nil, nil, err
	}
	return reduced, lookup.WithDeletedSlot(newIndex), nil
}

// mergeShortDuplicates is the distance-capped mode: duplicates are only
// recognized among branches whose endpoints lie within maxDist.
func mergeShortDuplicates(m *skeleton.IncidenceMatrix, maxDist float64, coords *skeleton.Coordinates) (*skeleton.IncidenceMatrix, []int, error) {
	if coords == nil {
		return nil, nil, ErrMissingCoordinates
	}
	if err := coords.Validate(); err != nil {
		return nil, nil, err
	}
	if coords.Len() != m.Nodes() {
		return nil, nil, ErrCoordLength
	}

	nb := m.Branches()
	pairs, err := m.AdjacencyList(false)
	if err != nil {
		return nil, nil, err
	}

	// Representative = lowest-index short branch with the same row.
	firstOf := make(map[string]int)
	repOf := make([]int, nb) // duplicate branch → its representative
	keepBranch := make([]bool, nb)
	removedAny := false
	for b := 0; b < nb; b++ {
		keepBranch[b] = true
		repOf[b] = b
		if geometry.Distance(*coords, pairs[b][0], *coords, pairs[b][1]) > maxDist {
			continue
		}
		key := rowKey(m.RowView(b))
		if rep, ok := firstOf[key]; ok {
			repOf[b] = rep
			keepBranch[b] = false
			removedAny = true
			continue
		}
		firstOf[key] = b
	}
	if !removedAny {
		return m, nil, nil
	}

	newIndex := make([]int, nb)
	next := 0
	for b, k := range keepBranch {
		if k {
			newIndex[b] = next
			next++
		}
	}
	dense := make([]int, nb)
	for b := range dense {
		dense[b] = newIndex[repOf[b]]
	}

	reduced, err := m.SelectBranches(keepBranch)
	if err != nil {
		return nil, nil, err
	}
	return reduced, lookup.WithDeletedSlot(dense), nil
}

// rowKey packs a boolean row into a compact map key.
func rowKey(row []bool) string {
	buf := make([]byte, (len(row)+7)/8)
	for n, v := range row {
		if v {
			buf[n/8] |= 1 << (n % 8)
		}
	}
	return string(buf)
}
