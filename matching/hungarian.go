package matching

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// HungarianSolver is the default exact assignment oracle. It embeds the
// |A|×|B| weight matrix into a square (|A|+|B|) cost matrix where every
// node can also pair with a slack slot worth its unmatched weight, then
// minimizes negated weights with the O(n³) potential-based Hungarian
// method.
type HungarianSolver struct{}

// Solve returns the weight-maximizing one-to-one pairing. Pairs are
// ordered by A index. Returns ErrBadWeights when the unmatched-weight
// vectors do not match the matrix dimensions.
func (HungarianSolver) Solve(weights *mat.Dense, unmatchedA, unmatchedB []float64) ([][2]int, error) {
	na, nb := weights.Dims()
	if len(unmatchedA) != na || len(unmatchedB) != nb {
		return nil, ErrBadWeights
	}

	// Square augmentation: rows = A nodes then B slack rows, columns =
	// B nodes then A slack columns. A slack row may claim any B column at
	// that column's unmatched weight (and symmetrically), slack×slack
	// costs nothing, so the optimum is free to leave any subset unmatched.
	n := na + nb
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
	}
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			cost[i][j] = -weights.At(i, j)
		}
		for j := nb; j < n; j++ {
			cost[i][j] = -unmatchedA[i]
		}
	}
	for i := na; i < n; i++ {
		for j := 0; j < nb; j++ {
			cost[i][j] = -unmatchedB[j]
		}
	}

	rowOf := hungarianMin(cost)

	var pairs [][2]int
	for j := 0; j < nb; j++ {
		if i := rowOf[j]; i < na {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	sort.Slice(pairs, func(x, y int) bool { return pairs[x][0] < pairs[y][0] })
	return pairs, nil
}

// hungarianMin solves the square min-cost assignment and returns, for
// each column, the row assigned to it. Classic potentials formulation:
// successive shortest augmenting paths with dual updates, 1-based
// internally with column 0 as the virtual source.
func hungarianMin(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)   // p[j] = row currently assigned to column j
	way := make([]int, n+1) // back-pointers of the alternating path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	rowOf := make([]int, n)
	for j := 1; j <= n; j++ {
		rowOf[j-1] = p[j] - 1
	}
	return rowOf
}
