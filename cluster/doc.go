// Package cluster groups indices into disjoint clusters from pairwise
// connection evidence.
//
// What:
//
//   - DisjointSet is a union-find structure with path compression and
//     union by size.
//   - Solve turns a list of unordered index pairs ("these two indices are
//     connected") into connected components, handling transitive merges:
//     pairs (a,b) and (b,c) place a, b and c in one cluster even though
//     a and c never co-occur.
//
// Why:
//
//   - The geometric merger thresholds a pairwise distance matrix and needs
//     the surviving pairs folded into node clusters to collapse.
//
// Determinism:
//
//   - The final partition is independent of input pair order (tested by
//     shuffling). Members inside a cluster are sorted ascending and the
//     clusters themselves are ordered by their smallest member.
//
// Complexity:
//
//   - Solve: O(P α(N)) unions over P pairs, O(N) memory.
//
// Errors:
//
//   - ErrNegativeIndex: a pair referencing a negative index.
package cluster
