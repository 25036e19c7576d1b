package simplify

import (
	"sort"

	"github.com/ClementPla/fundus-vessels-toolkit/lookup"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// fusion is one pending branch merge: node sits between branch1 and
// branch2 and branch2 will be absorbed into branch1.
type fusion struct {
	node             int
	branch1, branch2 int
}

// FuseNodes collapses each selected node of degree exactly 2 by merging
// its two incident branches into one (the surviving row becomes the union
// of both). Selected nodes of any other degree cannot be fused without
// creating ambiguous topology; they are skipped, kept in the graph and
// reported in Fused.Skipped.
//
// Merges are processed in descending branch1 order and applied
// sequentially under a running branch lookup: when two adjacent nodes are
// fused in the same call, the second merge may reference a branch that
// the first merge just absorbed, and only the running lookup knows its
// current identity. Fusing every node of an isolated cycle deletes the
// cycle entirely; its branches map to the deleted slot.
//
// When coords is non-nil (and index-aligned with the node axis), the
// result carries FuseLabels projecting each fused node's coordinate onto
// the branch that absorbed it.
// Complexity: O(F×B + B×N) time for F fusions.
func FuseNodes(m *skeleton.IncidenceMatrix, sel NodeSelector, coords *skeleton.Coordinates) (*Fused, error) {
	ids, keep, err := sel.resolve(m)
	if err != nil {
		return nil, err
	}
	if coords != nil {
		if err := coords.Validate(); err != nil {
			return nil, err
		}
		if coords.Len() != m.Nodes() {
			return nil, ErrCoordLength
		}
	}

	nb := m.Branches()
	rank := m.NodeRank()

	// Split the selection into fusable nodes and skips; skipped nodes
	// stay in the graph.
	var pending []fusion
	var skipped []FuseSkip
	for _, n := range ids {
		if rank[n] != 2 {
			skipped = append(skipped, FuseSkip{Node: n, Degree: rank[n]})
			keep[n] = true
			continue
		}
		b1, b2 := -1, -1
		for b := 0; b < nb; b++ {
			if m.RowView(b)[n] {
				if b1 == -1 {
					b1 = b
				}
				b2 = b
			}
		}
		pending = append(pending, fusion{node: n, branch1: b1, branch2: b2})
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].branch1 > pending[j].branch1 })

	work := m.Clone()
	lut := make([]int, nb)
	for b := range lut {
		lut[b] = b
	}
	deleted := make([]bool, nb)
	for _, f := range pending {
		b2 := lut[f.branch2]
		if b2 == f.branch1 {
			// The two incident branches already merged into one: the node
			// closes an isolated cycle whose every other node was fused.
			// Nothing is left to span, so the survivor vanishes too.
			deleted[b2] = true
			continue
		}
		dst := work.RowView(f.branch1)
		src := work.RowView(b2)
		for n := range dst {
			dst[n] = dst[n] || src[n]
		}
		deleted[b2] = true
		// Redirect every reference to the absorbed branch onto the survivor.
		if err := lookup.ApplyInPlace(lut, lookup.Sparse([]int{b2}, []int{f.branch1})); err != nil {
			return nil, err
		}
	}

	keepBranch := make([]bool, nb)
	for b := range keepBranch {
		keepBranch[b] = !deleted[b]
	}
	reduced, err := work.SelectBranches(keepBranch)
	if err != nil {
		return nil, err
	}
	reduced, err = reduced.SelectNodes(keep)
	if err != nil {
		return nil, err
	}

	// Compact the running lookup over the surviving rows, then reserve
	// the deleted slot. An entry can still point at a deleted row when a
	// cycle collapsed entirely; those branches go to slot 0.
	shift := make([]int, nb)
	next := 0
	for b, k := range keepBranch {
		if k {
			shift[b] = next
			next++
		}
	}
	final := make([]int, nb+1)
	for b, v := range lut {
		if deleted[v] {
			continue
		}
		final[b+1] = shift[v] + 1
	}

	out := &Fused{
		Matrix:       reduced,
		BranchLookup: final,
		NodeMask:     keep,
		Skipped:      skipped,
	}
	if coords != nil {
		labels := &FuseLabels{
			Y:      make([]float64, len(pending)),
			X:      make([]float64, len(pending)),
			Branch: make([]int, len(pending)),
		}
		for i, f := range pending {
			labels.Y[i] = coords.Y[f.node]
			labels.X[i] = coords.X[f.node]
			labels.Branch[i] = final[f.branch1+1]
		}
		out.Labels = labels
	}
	return out, nil
}
