package simplify

import (
	"github.com/ClementPla/fundus-vessels-toolkit/cluster"
	"github.com/ClementPla/fundus-vessels-toolkit/geometry"
	"github.com/ClementPla/fundus-vessels-toolkit/lookup"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// MergePass describes one distance-merge pass.
type MergePass struct {
	// Mask restricts merge candidates to the nodes where it is true.
	// Masks are expressed in the original (pre-merge) node index space;
	// the merger re-projects them as earlier passes shrink the space.
	// Nil means every node is a candidate.
	Mask []bool
	// Distance is the merge threshold; a pass with a non-positive
	// threshold is skipped.
	Distance float64
	// RemoveLabels discards the identity of branches collapsed inside a
	// cluster (their lookup entries go to the deleted slot) instead of
	// re-pointing them at the cluster's first incoming branch.
	RemoveLabels bool
}

// SinglePass is the common one-shot configuration: one unmasked pass at
// the given threshold, discarding collapsed branch labels.
func SinglePass(distance float64) []MergePass {
	return []MergePass{{Distance: distance, RemoveLabels: true}}
}

// MergeNodesByDistance collapses nodes closer than a threshold, one pass
// at a time. Each pass thresholds the pairwise distance matrix of its
// candidate nodes (self-pairs excluded), solves the surviving pairs into
// clusters, drops singleton clusters and applies MergeNodeClusters; node
// coordinates are then recomputed as endpoint-weighted centroids, so a
// cluster containing an endpoint is pulled toward it (endpoints carry
// more geometric meaning than redundant fork nodes).
//
// Masks of later passes are re-projected through the inverse of each
// pass's node lookup before use. The returned branch lookup is the
// composition across all passes (deleted-slot space, nil when no pass
// changed the branch axis); the returned coordinates are final.
// Complexity per pass: O(C² + B×N) time for C candidates.
func MergeNodesByDistance(m *skeleton.IncidenceMatrix, coords skeleton.Coordinates, passes []MergePass) (*skeleton.IncidenceMatrix, []int, skeleton.Coordinates, error) {
	if err := coords.Validate(); err != nil {
		return nil, nil, skeleton.Coordinates{}, err
	}
	if coords.Len() != m.Nodes() {
		return nil, nil, skeleton.Coordinates{}, ErrCoordLength
	}

	// Work on copies: pass masks are rewritten between passes and the
	// caller's slices must stay intact.
	local := make([]MergePass, len(passes))
	copy(local, passes)

	cur := m
	curCoords := coords
	var branchLut []int

	for i := range local {
		pass := local[i]
		if pass.Distance <= 0 {
			continue
		}
		if pass.Mask != nil && len(pass.Mask) != curCoords.Len() {
			return nil, nil, skeleton.Coordinates{}, ErrMaskLength
		}

		// Candidate set: global index of every masked-in node.
		global := make([]int, 0, curCoords.Len())
		for n := 0; n < curCoords.Len(); n++ {
			if pass.Mask == nil || pass.Mask[n] {
				global = append(global, n)
			}
		}
		if len(global) < 2 {
			continue
		}
		candidates, err := curCoords.Select(global)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}

		dists, err := geometry.SelfDistances(candidates)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}
		var pairs [][2]int
		for a := 0; a < len(global); a++ {
			for b := a + 1; b < len(global); b++ {
				if dists.At(a, b) <= pass.Distance {
					pairs = append(pairs, [2]int{global[a], global[b]})
				}
			}
		}
		if len(pairs) == 0 {
			continue
		}

		solved, err := cluster.Solve(pairs)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}
		clusters := make([][]int, 0, len(solved))
		for _, c := range solved {
			if len(c) > 1 {
				clusters = append(clusters, c)
			}
		}
		if len(clusters) == 0 {
			continue
		}

		// Endpoint weights are read before the merge: endpoints of the
		// current graph bias the centroid of their cluster.
		endpoints := cur.Endpoints()
		weights := make([]float64, len(endpoints))
		for n, e := range endpoints {
			if e {
				weights[n] = 1
			}
		}

		merged, branchLut2, nodeLut, err := MergeNodeClusters(cur, clusters, pass.RemoveLabels)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}
		curCoords, err = lookup.MergeCoordinates(curCoords, nodeLut, weights)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}
		switch {
		case branchLut == nil:
			branchLut = branchLut2
		case branchLut2 != nil:
			branchLut, err = lookup.Apply(branchLut, lookup.Dense(branchLut2))
			if err != nil {
				return nil, nil, skeleton.Coordinates{}, err
			}
		}
		cur = merged

		// Re-project the masks of the remaining passes into the shrunken
		// node space: sample each mask at the representative original index.
		inv, err := lookup.Invert(nodeLut)
		if err != nil {
			return nil, nil, skeleton.Coordinates{}, err
		}
		for j := i + 1; j < len(local); j++ {
			if local[j].Mask == nil {
				continue
			}
			if len(local[j].Mask) != len(nodeLut) {
				return nil, nil, skeleton.Coordinates{}, ErrMaskLength
			}
			projected := make([]bool, len(inv))
			for n, orig := range inv {
				projected[n] = local[j].Mask[orig]
			}
			local[j].Mask = projected
		}
	}
	if cur == m {
		cur = m.Clone()
	}
	return cur, branchLut, curCoords.Clone(), nil
}
