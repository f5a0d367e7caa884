package bayer

import (
	"fmt"
	"testing"
)

func TestNew_CoversEveryRankOnce(t *testing.T) {
	for _, order := range []int{1, 2, 4, 8, 16} {
		t.Run(fmt.Sprintf("order_%d", order), func(t *testing.T) {
			m, err := New(order)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", order, err)
			}

			seen := make(map[int]bool, order*order)
			for row := 0; row < order; row++ {
				for col := 0; col < order; col++ {
					v := m.At(row, col)
					if v < 1 || v > order*order {
						t.Fatalf("cell (%d,%d) = %d, want value in [1,%d]", row, col, v, order*order)
					}
					if seen[v] {
						t.Fatalf("value %d appears more than once", v)
					}
					seen[v] = true
				}
			}
			if len(seen) != order*order {
				t.Errorf("got %d distinct values, want %d", len(seen), order*order)
			}
		})
	}
}

func TestNew_CanonicalOrder2(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New(2) failed: %v", err)
	}

	// Hand-derived from the quadrant rule: the single cell 0 expands to
	// top-left 4v+1=1, top-right 4v+3=3, bottom-left 4v+2=2,
	// bottom-right 4v=0, then +1 normalization.
	want := [2][2]int{
		{2, 4},
		{3, 1},
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if got := m.At(row, col); got != want[row][col] {
				t.Errorf("cell (%d,%d): got %d, want %d", row, col, got, want[row][col])
			}
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatalf("New(8) failed: %v", err)
	}
	b, err := New(8)
	if err != nil {
		t.Fatalf("New(8) failed: %v", err)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if a.At(row, col) != b.At(row, col) {
				t.Fatalf("cell (%d,%d) differs between runs: %d vs %d",
					row, col, a.At(row, col), b.At(row, col))
			}
		}
	}
}

func TestNew_RejectsNonPowerOfTwo(t *testing.T) {
	for _, order := range []int{0, -1, 3, 5, 6, 7, 12, 100} {
		if _, err := New(order); err == nil {
			t.Errorf("New(%d) should fail for non-power-of-two order", order)
		}
	}
}

func TestThreshold_TilesAndScales(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New(2) failed: %v", err)
	}

	// 256/4 = 64 per rank over the [[2,4],[3,1]] matrix; tiling repeats
	// with period 2 in both axes.
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 128},
		{1, 0, 256},
		{0, 1, 192},
		{1, 1, 64},
		{2, 0, 128},
		{0, 2, 128},
		{3, 3, 64},
		{5, 4, 256},
	}
	for _, tt := range tests {
		if got := m.Threshold(tt.x, tt.y); got != tt.want {
			t.Errorf("Threshold(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestThreshold_ExactScaleForSupportedOrders(t *testing.T) {
	// 256/order² must divide exactly for every supported order so no
	// threshold precision is lost.
	for _, order := range []int{1, 2, 4, 8, 16} {
		if 256%(order*order) != 0 {
			t.Errorf("order %d: 256/%d is not exact", order, order*order)
		}
	}
}
