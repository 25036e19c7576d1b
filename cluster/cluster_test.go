// File: cluster/cluster_test.go
package cluster

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestSolve_TransitiveMerge(t *testing.T) {
	// (a,b) and (b,c) must land in one cluster even though a and c never
	// co-occur directly.
	got, err := Solve([][2]int{{0, 1}, {1, 2}, {5, 6}})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := [][]int{{0, 1, 2}, {5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Solve = %v; want %v", got, want)
	}
}

func TestSolve_BridgingPairMergesTwoClusters(t *testing.T) {
	// {0,1} and {2,3} exist before (1,2) bridges them.
	got, err := Solve([][2]int{{0, 1}, {2, 3}, {1, 2}})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := [][]int{{0, 1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Solve = %v; want %v", got, want)
	}
}

// TestSolve_OrderIndependence shuffles a fixed pair set and checks the
// final partition never changes.
func TestSolve_OrderIndependence(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {10, 11}, {11, 12}, {4, 5}, {5, 0}}
	want, err := Solve(pairs)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 100; trial++ {
		shuffled := make([][2]int, len(pairs))
		copy(shuffled, pairs)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		// Pair orientation must not matter either.
		for i := range shuffled {
			if rng.Intn(2) == 0 {
				shuffled[i][0], shuffled[i][1] = shuffled[i][1], shuffled[i][0]
			}
		}
		got, err := Solve(shuffled)
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: partition %v != %v", trial, got, want)
		}
	}
}

func TestSolve_SelfPairYieldsSingleton(t *testing.T) {
	got, err := Solve([][2]int{{3, 3}})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if want := [][]int{{3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Solve = %v; want %v", got, want)
	}
}

func TestSolve_Empty(t *testing.T) {
	got, err := Solve(nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got != nil {
		t.Errorf("Solve(nil) = %v; want nil", got)
	}
}

func TestSolve_NegativeIndex(t *testing.T) {
	_, err := Solve([][2]int{{-1, 2}})
	if !errors.Is(err, ErrNegativeIndex) {
		t.Fatalf("got %v; want ErrNegativeIndex", err)
	}
}

func TestDisjointSet_UnionBySizeAndCompression(t *testing.T) {
	d := NewDisjointSet(6)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(0, 2)
	if d.Find(3) != d.Find(1) {
		t.Error("3 and 1 should share a root after chained unions")
	}
	if d.Find(4) == d.Find(0) {
		t.Error("4 was never unioned with 0")
	}
	// Union of already-joined sets is a no-op returning the shared root.
	if d.Union(1, 3) != d.Find(0) {
		t.Error("Union on joined sets must return the existing root")
	}
}
