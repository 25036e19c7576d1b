// Package skeleton defines the core data model of the vessel-graph engine:
// a bipartite branch×node incidence matrix plus per-node coordinates.
//
// What:
//
//   - IncidenceMatrix wraps a boolean matrix of shape (branches, nodes);
//     entry (b, n) is true iff branch b touches node n.
//   - Coordinates carries the (y, x) position of every node as two
//     equal-length float64 slices, matching the row/column convention of
//     the image the skeleton was extracted from.
//   - NodeRank computes per-node degree (column sums); a node is an
//     endpoint iff its degree is exactly 1.
//   - AdjacencyList converts branch rows into (node1, node2) pairs.
//
// Why:
//
//   - Pixel-level skeletonization produces heavily over-segmented graphs;
//     every simplification pass in simplify/ reads and rewrites this
//     representation, so it must be cheap to slice, clone and compact.
//
// Complexity:
//
//   - NodeRank / Endpoints: O(B×N) time, O(N) memory.
//   - AdjacencyList:        O(B×N) time, O(B) memory.
//   - SelectBranches / SelectNodes: O(B×N) time and memory.
//
// Errors:
//
//   - ErrBadShape: negative dimensions, or a mask/selector of wrong length.
//   - ErrRaggedRows: FromRows input rows of differing lengths.
//   - ErrOutOfRange: branch or node index outside valid bounds.
//   - ErrMalformedBranch: a branch row without exactly two set entries.
//   - ErrCoordLength: y and x coordinate slices of differing lengths.
package skeleton
