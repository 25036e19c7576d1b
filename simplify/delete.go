package simplify

import (
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// DeleteNodes removes the selected nodes and every branch touching them
// (a branch cannot dangle on a deleted node). It returns the reduced
// matrix, the branch lookup in deleted-slot space (entry b+1 is 0 when
// old branch b was removed, otherwise its new index + 1) and the node
// retention mask.
//
// Stage 1 (Validate): resolve the selector against the node count.
// Stage 2 (Compute): mark branches touching any deleted node.
// Stage 3 (Rewrite): compact rows, compact columns, build the lookup.
// Complexity: O(B×N) time and memory.
func DeleteNodes(m *skeleton.IncidenceMatrix, sel NodeSelector) (*skeleton.IncidenceMatrix, []int, []bool, error) {
	ids, keep, err := sel.resolve(m)
	if err != nil {
		return nil, nil, nil, err
	}

	nb := m.Branches()
	keepBranch := make([]bool, nb)
	for b := 0; b < nb; b++ {
		row := m.RowView(b)
		keepBranch[b] = true
		for _, n := range ids {
			if row[n] {
				keepBranch[b] = false
				break
			}
		}
	}

	reduced, err := m.SelectBranches(keepBranch)
	if err != nil {
		return nil, nil, nil, err
	}
	reduced, err = reduced.SelectNodes(keep)
	if err != nil {
		return nil, nil, nil, err
	}

	// Deleted-slot lookup: slot 0 = deleted, kept branches are compacted.
	lut := make([]int, nb+1)
	next := 1
	for b, k := range keepBranch {
		if k {
			lut[b+1] = next
			next++
		}
	}
	return reduced, lut, keep, nil
}
