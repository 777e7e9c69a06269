package core

import (
	"slices"
	"testing"
)

func TestNeighborsBounded(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{3, 0, 3},
		{0, 2, 3},
		{3, 2, 3},
		{1, 0, 5},
		{0, 1, 5},
		{3, 1, 5},
		{2, 2, 5},
		{1, 1, 8},
		{2, 1, 8},
	}
	for _, tc := range cases {
		got := g.Neighbors(g.Index(tc.x, tc.y))
		if len(got) != tc.want {
			t.Fatalf("cell (%d,%d) has %d neighbors, want %d: %v", tc.x, tc.y, len(got), tc.want, got)
		}
	}
}

func TestNeighborsNoWrap(t *testing.T) {
	g := NewGrid(5, 5)
	got := g.Neighbors(g.Index(0, 0))
	slices.Sort(got)
	want := []int{g.Index(1, 0), g.Index(0, 1), g.Index(1, 1)}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("corner neighbors = %v, want %v", got, want)
	}
	for _, n := range got {
		x, y := g.Coords(n)
		if x == g.W-1 || y == g.H-1 {
			t.Fatalf("corner neighbor (%d,%d) wrapped around", x, y)
		}
	}
}

func TestNeighborsDistinctAndAdjacent(t *testing.T) {
	g := NewGrid(6, 4)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		seen := map[int]bool{}
		for _, n := range g.Neighbors(i) {
			if n == i || seen[n] {
				t.Fatalf("cell %d: neighbor %d repeated or self", i, n)
			}
			seen[n] = true
			nx, ny := g.Coords(n)
			if abs(nx-x) > 1 || abs(ny-y) > 1 {
				t.Fatalf("cell (%d,%d): neighbor (%d,%d) not adjacent", x, y, nx, ny)
			}
		}
	}
}

func TestGetSetAndPopulation(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(4, Alive)
	g.Set(8, Alive)
	if g.Get(4) != Alive || g.Get(0) != Empty {
		t.Fatal("Get does not reflect Set")
	}
	if got := g.Population(); got != 2 {
		t.Fatalf("population = %d, want 2", got)
	}
	g.Clear()
	if got := g.Population(); got != 0 {
		t.Fatalf("population after Clear = %d, want 0", got)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 3)
	for _, i := range []int{-1, 9, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("index %d did not panic", i)
				}
			}()
			g.Get(i)
		}()
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Index(3,0) did not panic")
		}
	}()
	g.Index(3, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
