package simplify_test

import (
	"math/rand"
	"testing"

	"github.com/ClementPla/fundus-vessels-toolkit/simplify"
	"github.com/ClementPla/fundus-vessels-toolkit/skeleton"
)

// randomChain builds a single path over n nodes with n-1 branches and
// jittered coordinates, the shape a skeletonizer typically over-segments.
func randomChain(b *testing.B, n int, rng *rand.Rand) (*skeleton.IncidenceMatrix, skeleton.Coordinates) {
	b.Helper()
	rows := make([][]bool, n-1)
	for i := range rows {
		row := make([]bool, n)
		row[i] = true
		row[i+1] = true
		rows[i] = row
	}
	m, err := skeleton.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}
	y := make([]float64, n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) + rng.Float64()*0.3
		y[i] = rng.Float64() * 0.3
	}
	coords, err := skeleton.NewCoordinates(y, x)
	if err != nil {
		b.Fatalf("NewCoordinates failed: %v", err)
	}
	return m, coords
}

// BenchmarkMergeNodesByDistance measures a single merge pass over a
// 500-node jittered chain.
func BenchmarkMergeNodesByDistance(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	m, coords := randomChain(b, 500, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := simplify.MergeNodesByDistance(m, coords, simplify.SinglePass(0.5)); err != nil {
			b.Fatalf("MergeNodesByDistance failed: %v", err)
		}
	}
}

// BenchmarkFuseNodes measures fusing every interior node of a 500-node
// chain in one call.
func BenchmarkFuseNodes(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	m, _ := randomChain(b, 500, rng)
	ids := make([]int, 0, 498)
	for n := 1; n < 499; n++ {
		ids = append(ids, n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplify.FuseNodes(m, simplify.ByIndex(ids...), nil); err != nil {
			b.Fatalf("FuseNodes failed: %v", err)
		}
	}
}
