// Package fundusvessels turns raw, over-segmented retinal vessel skeletons
// into compact topological graphs.
//
// 🚀 What is fundus-vessels-toolkit?
//
//	A pure-Go graph-simplification engine for vascular skeletons, built
//	around a bipartite branch×node incidence matrix:
//		• Core types: boolean incidence matrix + node coordinates
//		• Lookup algebra: composable index-renumbering tables with a
//		  reserved "deleted" sentinel
//		• Editing: node deletion, degree-2 fusion, duplicate-branch merging
//		• Clustering: union-find grouping of pairwise-connected indices
//		• Geometric merging: distance-threshold node collapsing with
//		  endpoint-weighted centroids, single or multi-pass
//		• Matching: one-to-one node correspondence across two graphs via an
//		  injectable assignment solver
//
// ✨ Why choose fundus-vessels-toolkit?
//
//   - Deterministic – every edit returns a lookup table that keeps all
//     external branch/node references consistent
//   - Pure transforms – inputs are never mutated; each call either fully
//     succeeds or fails with no side effect
//   - No hidden effects – skipped fusions are reported as values, not printed
//
// Everything is organized under six subpackages:
//
//	skeleton/ — incidence matrix, coordinates, rank & endpoint queries
//	lookup/   — build, apply, compose and invert renumbering tables
//	cluster/  — disjoint-set solving of pairwise connections
//	simplify/ — the incidence-matrix editor and geometric merger
//	geometry/ — pairwise distance matrices, polygon perimeter
//	matching/ — cross-graph node matching (Hungarian by default)
//
// Quick ASCII example (degree-2 fusion):
//
//	    0───1───2───3          0───────────3
//	    (4 nodes, 3 branches)  (fuse 1,2 → 1 branch)
//
// Start with skeleton.FromRows, then reach for simplify.
package fundusvessels
