// Package simplify edits branch×node incidence matrices: it deletes,
// fuses and clusters nodes while returning the lookup tables that keep
// every external branch/node reference consistent.
//
// What:
//
//   - DeleteNodes removes nodes and every branch touching them.
//   - FuseNodes collapses degree-2 nodes, merging their two incident
//     branches into one; nodes of any other degree are skipped and
//     reported, not fatal.
//   - MergeEquivalentBranches removes duplicate branch rows, optionally
//     restricted to short branches via a node-distance cap.
//   - MergeNodeClusters collapses disjoint node clusters onto their
//     lowest-index representative, dropping branches internal to a
//     cluster.
//   - MergeNodesByDistance runs one or more distance-threshold merge
//     passes with endpoint-weighted centroid recomputation.
//
// Why:
//
//   - Pixel-level skeletonization leaves spurious junctions, duplicated
//     micro-loops and chains of degree-2 nodes; these edits reduce the
//     raw graph to its actual topology.
//
// Lookup conventions:
//
//   - Branch lookups returned by this package live in "deleted-slot"
//     space: they have length old-branch-count+1, entry 0 maps to 0, and
//     entry b+1 is 0 when old branch b was deleted, otherwise its new
//     index + 1 (see lookup.WithDeletedSlot).
//   - Node lookups are plain dense tables from old node index to new node
//     index, with no deleted slot (every node survives as part of some
//     representative).
//   - A nil branch lookup means "nothing changed on the branch axis".
//
// Every operation validates its inputs fully before touching anything and
// never mutates its arguments; a failing call has no side effect.
//
// Errors:
//
//   - ErrBadSelector: a zero-value NodeSelector (neither mask nor index set).
//   - ErrMaskLength: a mask whose length does not match the node count.
//   - ErrOutOfRange: a node index outside the matrix.
//   - ErrCoordLength: coordinates not covering every node.
//   - ErrMissingCoordinates: a distance-capped operation without coordinates.
//   - ErrOverlappingClusters: merge clusters sharing a node.
package simplify
