package skeleton

import "fmt"

// NewIncidenceMatrix creates a branches×nodes matrix initialized to false.
// Stage 1 (Validate): dimensions must be >= 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new IncidenceMatrix or ErrBadShape.
// Complexity: O(B*N) time and memory.
func NewIncidenceMatrix(branches, nodes int) (*IncidenceMatrix, error) {
	if branches < 0 || nodes < 0 {
		return nil, ErrBadShape
	}
	return &IncidenceMatrix{
		branches: branches,
		nodes:    nodes,
		data:     make([]bool, branches*nodes),
	}, nil
}

// FromRows builds an IncidenceMatrix from branch rows. All rows must have
// the same length; the input is copied. A zero-row input yields a 0×0
// matrix. Returns ErrRaggedRows on rows of differing lengths.
func FromRows(rows [][]bool) (*IncidenceMatrix, error) {
	if len(rows) == 0 {
		return NewIncidenceMatrix(0, 0)
	}
	nodes := len(rows[0])
	for _, r := range rows {
		if len(r) != nodes {
			return nil, ErrRaggedRows
		}
	}
	m := &IncidenceMatrix{
		branches: len(rows),
		nodes:    nodes,
		data:     make([]bool, len(rows)*nodes),
	}
	for b, r := range rows {
		copy(m.data[b*nodes:(b+1)*nodes], r)
	}
	return m, nil
}

// Branches returns the number of branches (rows).
func (m *IncidenceMatrix) Branches() int { return m.branches }

// Nodes returns the number of nodes (columns).
func (m *IncidenceMatrix) Nodes() int { return m.nodes }

// At reports whether branch b touches node n.
// Returns ErrOutOfRange when either index is outside valid bounds.
func (m *IncidenceMatrix) At(b, n int) (bool, error) {
	if b < 0 || b >= m.branches || n < 0 || n >= m.nodes {
		return false, ErrOutOfRange
	}
	return m.data[b*m.nodes+n], nil
}

// Set assigns the (b, n) entry.
// Returns ErrOutOfRange when either index is outside valid bounds.
func (m *IncidenceMatrix) Set(b, n int, v bool) error {
	if b < 0 || b >= m.branches || n < 0 || n >= m.nodes {
		return ErrOutOfRange
	}
	m.data[b*m.nodes+n] = v
	return nil
}

// Row returns a copy of branch row b.
// Returns ErrOutOfRange when b is outside valid bounds.
func (m *IncidenceMatrix) Row(b int) ([]bool, error) {
	if b < 0 || b >= m.branches {
		return nil, ErrOutOfRange
	}
	r := make([]bool, m.nodes)
	copy(r, m.data[b*m.nodes:(b+1)*m.nodes])
	return r, nil
}

// RowView returns branch row b as a slice aliasing the matrix storage.
// Mutating the returned slice mutates the matrix; callers that need
// isolation must use Row. Panics on an out-of-bounds branch (programmer
// error, like slice indexing).
func (m *IncidenceMatrix) RowView(b int) []bool {
	return m.data[b*m.nodes : (b+1)*m.nodes]
}

// Clone returns a deep copy of the matrix.
func (m *IncidenceMatrix) Clone() *IncidenceMatrix {
	data := make([]bool, len(m.data))
	copy(data, m.data)
	return &IncidenceMatrix{branches: m.branches, nodes: m.nodes, data: data}
}

// NodeRank returns the degree of every node: the number of branches
// touching it (column sums).
// Complexity: O(B×N) time, O(N) memory.
func (m *IncidenceMatrix) NodeRank() []int {
	rank := make([]int, m.nodes)
	for b := 0; b < m.branches; b++ {
		row := m.data[b*m.nodes : (b+1)*m.nodes]
		for n, v := range row {
			if v {
				rank[n]++
			}
		}
	}
	return rank
}

// Rank returns the degree of a single node.
// Returns ErrOutOfRange when n is outside valid bounds.
func (m *IncidenceMatrix) Rank(n int) (int, error) {
	if n < 0 || n >= m.nodes {
		return 0, ErrOutOfRange
	}
	rank := 0
	for b := 0; b < m.branches; b++ {
		if m.data[b*m.nodes+n] {
			rank++
		}
	}
	return rank, nil
}

// Endpoints returns, for every node, whether it is an endpoint: a node
// touched by exactly one branch.
func (m *IncidenceMatrix) Endpoints() []bool {
	rank := m.NodeRank()
	ends := make([]bool, m.nodes)
	for n, r := range rank {
		ends[n] = r == 1
	}
	return ends
}

// BranchNodes returns the two nodes of branch b: the lowest and highest
// set column of the row. Returns ErrOutOfRange on a bad branch index and
// ErrMalformedBranch when the row does not have exactly two set entries.
func (m *IncidenceMatrix) BranchNodes(b int) (n1, n2 int, err error) {
	if b < 0 || b >= m.branches {
		return 0, 0, ErrOutOfRange
	}
	row := m.data[b*m.nodes : (b+1)*m.nodes]
	n1, n2 = -1, -1
	count := 0
	for n, v := range row {
		if !v {
			continue
		}
		if count == 0 {
			n1 = n
		}
		n2 = n
		count++
	}
	if count != 2 {
		return 0, 0, fmt.Errorf("branch %d touches %d nodes: %w", b, count, ErrMalformedBranch)
	}
	return n1, n2, nil
}

// AdjacencyList converts the matrix into branch endpoint pairs: entry i
// holds the two nodes of branch i with the lower node id first. When
// bySource is true the list is ordered by first node id (stable) instead
// of branch id. Returns ErrMalformedBranch when any row does not have
// exactly two set entries.
// Complexity: O(B×N) time, O(B) memory (plus O(B log B) when sorting).
func (m *IncidenceMatrix) AdjacencyList(bySource bool) ([][2]int, error) {
	list := make([][2]int, m.branches)
	for b := 0; b < m.branches; b++ {
		n1, n2, err := m.BranchNodes(b)
		if err != nil {
			return nil, err
		}
		list[b] = [2]int{n1, n2}
	}
	if bySource {
		sortPairsByFirst(list)
	}
	return list, nil
}

// sortPairsByFirst sorts endpoint pairs by first node id, keeping the
// original branch order among equal first nodes (stable insertion sort;
// branch counts stay small after simplification).
func sortPairsByFirst(list [][2]int) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j-1][0] > list[j][0]; j-- {
			list[j-1], list[j] = list[j], list[j-1]
		}
	}
}

// ValidateBranches checks the structural invariant that every branch
// touches exactly two nodes. Returns nil or ErrMalformedBranch (wrapped
// with the offending branch id).
func (m *IncidenceMatrix) ValidateBranches() error {
	for b := 0; b < m.branches; b++ {
		if _, _, err := m.BranchNodes(b); err != nil {
			return err
		}
	}
	return nil
}

// SelectBranches returns a new matrix keeping only the branch rows where
// keep is true, preserving order. Returns ErrBadShape when len(keep) does
// not equal the branch count.
func (m *IncidenceMatrix) SelectBranches(keep []bool) (*IncidenceMatrix, error) {
	if len(keep) != m.branches {
		return nil, ErrBadShape
	}
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	out := &IncidenceMatrix{branches: kept, nodes: m.nodes, data: make([]bool, kept*m.nodes)}
	next := 0
	for b, k := range keep {
		if !k {
			continue
		}
		copy(out.data[next*m.nodes:(next+1)*m.nodes], m.data[b*m.nodes:(b+1)*m.nodes])
		next++
	}
	return out, nil
}

// SelectNodes returns a new matrix keeping only the node columns where
// keep is true, preserving order. Returns ErrBadShape when len(keep) does
// not equal the node count.
func (m *IncidenceMatrix) SelectNodes(keep []bool) (*IncidenceMatrix, error) {
	if len(keep) != m.nodes {
		return nil, ErrBadShape
	}
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	out := &IncidenceMatrix{branches: m.branches, nodes: kept, data: make([]bool, m.branches*kept)}
	for b := 0; b < m.branches; b++ {
		src := m.data[b*m.nodes : (b+1)*m.nodes]
		dst := out.data[b*kept : (b+1)*kept]
		next := 0
		for n, k := range keep {
			if !k {
				continue
			}
			dst[next] = src[n]
			next++
		}
	}
	return out, nil
}
