// File: skeleton/incidence_test.go
package skeleton

import (
	"errors"
	"reflect"
	"testing"
)

// pathMatrix builds the 3-branch path graph 0-1-2-3:
//
//	b0: 0-1, b1: 1-2, b2: 2-3
func pathMatrix(t *testing.T) *IncidenceMatrix {
	t.Helper()
	m, err := FromRows([][]bool{
		{true, true, false, false},
		{false, true, true, false},
		{false, false, true, true},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return m
}

func TestFromRows_RaggedRows(t *testing.T) {
	_, err := FromRows([][]bool{{true, true}, {true}})
	if !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("got %v; want ErrRaggedRows", err)
	}
}

func TestFromRows_Empty(t *testing.T) {
	m, err := FromRows(nil)
	if err != nil {
		t.Fatalf("FromRows(nil) failed: %v", err)
	}
	if m.Branches() != 0 || m.Nodes() != 0 {
		t.Errorf("got %d×%d; want 0×0", m.Branches(), m.Nodes())
	}
}

func TestNewIncidenceMatrix_BadShape(t *testing.T) {
	if _, err := NewIncidenceMatrix(-1, 2); !errors.Is(err, ErrBadShape) {
		t.Fatalf("got %v; want ErrBadShape", err)
	}
}

func TestNodeRankAndEndpoints(t *testing.T) {
	m := pathMatrix(t)
	rank := m.NodeRank()
	if want := []int{1, 2, 2, 1}; !reflect.DeepEqual(rank, want) {
		t.Errorf("NodeRank = %v; want %v", rank, want)
	}
	ends := m.Endpoints()
	if want := []bool{true, false, false, true}; !reflect.DeepEqual(ends, want) {
		t.Errorf("Endpoints = %v; want %v", ends, want)
	}
}

func TestAdjacencyList(t *testing.T) {
	m, err := FromRows([][]bool{
		{false, false, true, true}, // 2-3
		{true, true, false, false}, // 0-1
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	list, err := m.AdjacencyList(false)
	if err != nil {
		t.Fatalf("AdjacencyList failed: %v", err)
	}
	if want := [][2]int{{2, 3}, {0, 1}}; !reflect.DeepEqual(list, want) {
		t.Errorf("AdjacencyList = %v; want %v", list, want)
	}
	ordered, err := m.AdjacencyList(true)
	if err != nil {
		t.Fatalf("AdjacencyList(ordered) failed: %v", err)
	}
	if want := [][2]int{{0, 1}, {2, 3}}; !reflect.DeepEqual(ordered, want) {
		t.Errorf("ordered AdjacencyList = %v; want %v", ordered, want)
	}
}

func TestAdjacencyList_MalformedBranch(t *testing.T) {
	m, err := FromRows([][]bool{{true, false, false}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if _, err := m.AdjacencyList(false); !errors.Is(err, ErrMalformedBranch) {
		t.Fatalf("got %v; want ErrMalformedBranch", err)
	}
	if err := m.ValidateBranches(); !errors.Is(err, ErrMalformedBranch) {
		t.Fatalf("ValidateBranches: got %v; want ErrMalformedBranch", err)
	}
}

func TestSelectBranchesAndNodes(t *testing.T) {
	m := pathMatrix(t)
	sub, err := m.SelectBranches([]bool{true, false, true})
	if err != nil {
		t.Fatalf("SelectBranches failed: %v", err)
	}
	if sub.Branches() != 2 {
		t.Fatalf("got %d branches; want 2", sub.Branches())
	}
	sub, err = sub.SelectNodes([]bool{true, true, false, true})
	if err != nil {
		t.Fatalf("SelectNodes failed: %v", err)
	}
	if sub.Nodes() != 3 {
		t.Fatalf("got %d nodes; want 3", sub.Nodes())
	}
	// Row 1 was branch 2 (2-3); with node 2 dropped only node 3 remains.
	row, err := sub.Row(1)
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}
	if want := []bool{false, false, true}; !reflect.DeepEqual(row, want) {
		t.Errorf("row = %v; want %v", row, want)
	}

	if _, err := m.SelectBranches([]bool{true}); !errors.Is(err, ErrBadShape) {
		t.Errorf("short keep mask: got %v; want ErrBadShape", err)
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	m := pathMatrix(t)
	if _, err := m.At(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At: got %v; want ErrOutOfRange", err)
	}
	if err := m.Set(0, 4, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Set: got %v; want ErrOutOfRange", err)
	}
}

func TestClone_Isolated(t *testing.T) {
	m := pathMatrix(t)
	c := m.Clone()
	if err := c.Set(0, 3, true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := m.At(0, 3)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if v {
		t.Error("mutating a clone leaked into the original")
	}
}

func TestCoordinates(t *testing.T) {
	if _, err := NewCoordinates([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrCoordLength) {
		t.Fatalf("got %v; want ErrCoordLength", err)
	}
	c, err := NewCoordinates([]float64{0, 1, 2}, []float64{5, 6, 7})
	if err != nil {
		t.Fatalf("NewCoordinates failed: %v", err)
	}
	sel, err := c.Select([]int{2, 0})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !reflect.DeepEqual(sel.Y, []float64{2, 0}) || !reflect.DeepEqual(sel.X, []float64{7, 5}) {
		t.Errorf("Select = %v/%v; want [2 0]/[7 5]", sel.Y, sel.X)
	}
	if _, err := c.Select([]int{3}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select out of range: got %v; want ErrOutOfRange", err)
	}
	masked, err := c.SelectMask([]bool{true, false, true})
	if err != nil {
		t.Fatalf("SelectMask failed: %v", err)
	}
	if !reflect.DeepEqual(masked.Y, []float64{0, 2}) {
		t.Errorf("SelectMask.Y = %v; want [0 2]", masked.Y)
	}
	if _, err := c.SelectMask([]bool{true}); !errors.Is(err, ErrBadShape) {
		t.Errorf("SelectMask short: got %v; want ErrBadShape", err)
	}
}
