package xonix

import (
	"math"
	"testing"
)

func TestNewGridBorderRing(t *testing.T) {
	g := NewGrid(10, 8)

	for x := 0; x < 10; x++ {
		if g.At(x, 0) != CellBorder {
			t.Errorf("top ring cell (%d, 0) = %v, expected border", x, g.At(x, 0))
		}
		if g.At(x, 7) != CellBorder {
			t.Errorf("bottom ring cell (%d, 7) = %v, expected border", x, g.At(x, 7))
		}
	}
	for y := 0; y < 8; y++ {
		if g.At(0, y) != CellBorder {
			t.Errorf("left ring cell (0, %d) = %v, expected border", y, g.At(0, y))
		}
		if g.At(9, y) != CellBorder {
			t.Errorf("right ring cell (9, %d) = %v, expected border", y, g.At(9, y))
		}
	}

	for y := 1; y < 7; y++ {
		for x := 1; x < 9; x++ {
			if g.At(x, y) != CellEmpty {
				t.Errorf("interior cell (%d, %d) = %v, expected empty", x, y, g.At(x, y))
			}
		}
	}
}

func TestBorderSentinelOutOfRange(t *testing.T) {
	g := NewGrid(10, 8)

	coords := []Point{
		{-1, 0}, {0, -1}, {10, 0}, {0, 8}, {-100, -100}, {1000, 1000},
	}
	for _, p := range coords {
		if g.At(p.X, p.Y) != CellBorder {
			t.Errorf("At(%d, %d) = %v, expected border sentinel", p.X, p.Y, g.At(p.X, p.Y))
		}
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	g := NewGrid(10, 8)

	g.Set(-1, 3, CellClaimed)
	g.Set(10, 3, CellClaimed)
	g.Set(3, -1, CellClaimed)
	g.Set(3, 8, CellClaimed)

	if g.ClaimedPercent() != 0 {
		t.Errorf("out-of-range Set should be ignored, percent = %v", g.ClaimedPercent())
	}
}

func TestIsSolid(t *testing.T) {
	g := NewGrid(10, 8)
	g.Set(3, 3, CellClaimed)
	g.Set(4, 3, CellTrail)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},   // border ring
		{3, 3, true},   // claimed
		{4, 3, false},  // trail is not solid
		{5, 5, false},  // empty
		{-1, 5, true},  // sentinel
		{10, 5, true},  // sentinel
	}
	for _, tc := range tests {
		if got := g.IsSolid(tc.x, tc.y); got != tc.want {
			t.Errorf("IsSolid(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClaimedPercentBounds(t *testing.T) {
	g := NewGrid(10, 8)

	// Only the permanent ring: nothing claimed yet.
	if pct := g.ClaimedPercent(); pct != 0 {
		t.Errorf("fresh grid percent = %v, expected 0", pct)
	}

	// Claim every interior cell.
	for y := 1; y < 7; y++ {
		for x := 1; x < 9; x++ {
			g.Set(x, y, CellClaimed)
		}
	}
	if pct := g.ClaimedPercent(); math.Abs(pct-100) > 1e-9 {
		t.Errorf("fully claimed percent = %v, expected 100", pct)
	}
}

func TestClaimedPercentCountsInteriorBorder(t *testing.T) {
	g := NewGrid(12, 12)

	// A converted trail (interior border cells) counts toward territory.
	for y := 1; y < 11; y++ {
		g.Set(5, y, CellBorder)
	}

	interior := 10 * 10
	want := float64(10) / float64(interior) * 100
	if pct := g.ClaimedPercent(); math.Abs(pct-want) > 1e-9 {
		t.Errorf("percent = %v, expected %v", pct, want)
	}
}
