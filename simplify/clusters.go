package simplify

import (
	"sort"

	"github.com/ClementPla/fundus-vessels-toolkit/lookup"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// MergeNodeClusters collapses each cluster of node indices onto its
// lowest-index member. A branch touching two or more members of one
// cluster is fully internal to it and is removed; a branch touching
// exactly one member survives and is re-pointed to the representative.
//
// Clusters sharing a node are rejected with ErrOverlappingClusters before
// anything is computed: collapsing overlapping clusters has no
// well-defined result, and guessing one would corrupt the lookup chain.
//
// Returns the reduced matrix, the branch lookup in deleted-slot space
// (nil when no branch was removed; removed internal branches point at the
// cluster's first incoming branch, or at slot 0 when removeLabels is true
// or no branch enters the cluster) and the dense node lookup.
// Complexity: O(C×B + B×N) time, O(B+N) memory beyond the result.
func MergeNodeClusters(m *skeleton.IncidenceMatrix, clusters [][]int, removeLabels bool) (*skeleton.IncidenceMatrix, []int, []int, error) {
	nb, nn := m.Branches(), m.Nodes()

	// Validate membership and disjointness up front, no partial result.
	owned := make([]bool, nn)
	for _, c := range clusters {
		for _, n := range c {
			if n < 0 || n >= nn {
				return nil, nil, nil, ErrOutOfRange
			}
			if owned[n] {
				return nil, nil, nil, ErrOverlappingClusters
			}
			owned[n] = true
		}
	}

	nodeLut := make([]int, nn)
	for n := range nodeLut {
		nodeLut[n] = n
	}
	nodeRemove := make([]bool, nn)
	branchRemove := make([]bool, nb)
	// branchLut lives in deleted-slot value space from the start: entry
	// b+1 holds the (shifted) label of old branch b, slot 0 is "deleted".
	branchLut := make([]int, nb+1)
	for b := range branchLut {
		branchLut[b] = b
	}

	for _, members := range clusters {
		c := append([]int(nil), members...)
		sort.Ints(c)

		var internal, incoming []int // ascending by construction
		for b := 0; b < nb; b++ {
			row := m.RowView(b)
			touched := 0
			for _, n := range c {
				if row[n] {
					touched++
				}
			}
			switch {
			case touched >= 2:
				internal = append(internal, b)
				branchRemove[b] = true
			case touched == 1:
				incoming = append(incoming, b)
			}
		}

		if len(incoming) > 0 {
			// Internal branches inherit the label of the first incoming
			// branch, following any redirection it already went through.
			target := branchLut[incoming[0]+1]
			search := make([]int, len(internal))
			replace := make([]int, len(internal))
			for i, b := range internal {
				search[i] = b + 1
				replace[i] = target
			}
			if err := lookup.ApplyInPlace(branchLut, lookup.Sparse(search, replace)); err != nil {
				return nil, nil, nil, err
			}
		} else {
			for _, b := range internal {
				branchLut[b+1] = 0
			}
		}

		rep := c[0]
		for _, n := range c[1:] {
			nodeLut[n] = rep
			nodeRemove[n] = true
		}
	}

	removedAny := false
	for _, r := range branchRemove {
		if r {
			removedAny = true
			break
		}
	}

	var branchDense []int
	if removedAny {
		if removeLabels {
			for b, r := range branchRemove {
				if r {
					branchLut[b+1] = 0
				}
			}
		}
		// Shift values from the old deleted-slot space into the compacted one.
		shift := make([]int, nb+1)
		kept := 0
		for b := 0; b < nb; b++ {
			if !branchRemove[b] {
				kept++
			}
			shift[b+1] = kept
		}
		for i, v := range branchLut {
			branchLut[i] = shift[v]
		}
		branchDense = branchLut
	}

	// Compact the node axis; removed members resolve through their
	// representative, which always survives.
	nodeShift := make([]int, nn)
	next := 0
	for n := 0; n < nn; n++ {
		if !nodeRemove[n] {
			nodeShift[n] = next
			next++
		}
	}
	nodeDense := make([]int, nn)
	for n, v := range nodeLut {
		nodeDense[n] = nodeShift[v]
	}

	// Rebuild the matrix: surviving rows, columns folded onto representatives.
	keptRows := 0
	for b := 0; b < nb; b++ {
		if !branchRemove[b] {
			keptRows++
		}
	}
	out, err := skeleton.NewIncidenceMatrix(keptRows, next)
	if err != nil {
		return nil, nil, nil, err
	}
	rb := 0
	for b := 0; b < nb; b++ {
		if branchRemove[b] {
			continue
		}
		src := m.RowView(b)
		dst := out.RowView(rb)
		for n, v := range src {
			if v {
				dst[nodeDense[n]] = true
			}
		}
		rb++
	}
	return out, branchDense, nodeDense, nil
}
