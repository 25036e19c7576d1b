// Package cluster: union-find clustering of pairwise-connected indices.
package cluster

import (
	"errors"
	"sort"
)

// ErrNegativeIndex indicates a connection pair referencing a negative index.
var ErrNegativeIndex = errors.New("cluster: pair indices must be non-negative")

// DisjointSet implements a disjoint-set data structure with path
// compression and union by size.
type DisjointSet struct {
	parent []int
	size   []int
}

// NewDisjointSet creates a DisjointSet over n singleton elements.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &DisjointSet{parent: parent, size: size}
}

// Find returns the root of the set containing x, with path compression.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != -1 {
		root = d.parent[root]
	}
	// Point all nodes along the walked path directly to the root.
	for d.parent[x] != -1 {
		x, d.parent[x] = d.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the surviving root.
func (d *DisjointSet) Union(x, y int) int {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return rootX
	}
	if d.size[rootX] < d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.size[rootX] += d.size[rootY]
	return rootX
}

// Solve partitions the indices appearing in pairs into connected
// components. Only indices named by at least one pair appear in the
// output; a self-pair (a,a) yields a singleton cluster. Each cluster is
// sorted ascending and clusters are ordered by their smallest member, so
// the result does not depend on the order of the input pairs.
func Solve(pairs [][2]int) ([][]int, error) {
	maxIdx := -1
	for _, p := range pairs {
		if p[0] < 0 || p[1] < 0 {
			return nil, ErrNegativeIndex
		}
		if p[0] > maxIdx {
			maxIdx = p[0]
		}
		if p[1] > maxIdx {
			maxIdx = p[1]
		}
	}
	if maxIdx < 0 {
		return nil, nil
	}

	d := NewDisjointSet(maxIdx + 1)
	seen := make([]bool, maxIdx+1)
	for _, p := range pairs {
		seen[p[0]] = true
		seen[p[1]] = true
		d.Union(p[0], p[1])
	}

	// Group the seen indices by root, ascending scan keeps members sorted.
	byRoot := make(map[int][]int)
	var roots []int
	for i := 0; i <= maxIdx; i++ {
		if !seen[i] {
			continue
		}
		r := d.Find(i)
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], i)
	}

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, byRoot[r])
	}
	// Order clusters by smallest member for a canonical result.
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out, nil
}
