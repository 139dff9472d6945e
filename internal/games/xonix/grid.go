package xonix

import "fmt"

// CellState is the state of a single playfield cell.
type CellState uint8

const (
	CellEmpty   CellState = iota // unclaimed, contestable ground
	CellClaimed                  // captured territory
	CellBorder                   // permanent boundary (outer ring + converted trails)
	CellTrail                    // transient mark while the player is drawing
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellClaimed:
		return "claimed"
	case CellBorder:
		return "border"
	case CellTrail:
		return "trail"
	default:
		return fmt.Sprintf("cell(%d)", uint8(s))
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Grid is the rectangular cell field. It stores and queries cell state
// only; game rules live in the state machine and the claimer. Cells are
// kept in one contiguous slice indexed (y*width + x). The outer ring is
// border for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates a grid of the given dimensions with the outer ring
// set to border.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
	for x := 0; x < width; x++ {
		g.cells[x] = CellBorder
		g.cells[(height-1)*width+x] = CellBorder
	}
	for y := 0; y < height; y++ {
		g.cells[y*width] = CellBorder
		g.cells[y*width+width-1] = CellBorder
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state of the cell at (x, y). Out-of-range coordinates
// read as border: the world outside the field is impassable, so callers
// never need a separate bounds check before classifying a destination.
func (g *Grid) At(x, y int) CellState {
	if !g.InBounds(x, y) {
		return CellBorder
	}
	return g.cells[y*g.width+x]
}

// Set mutates the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, s CellState) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = s
}

// IsSolid reports whether the cell at (x, y) is border or claimed,
// i.e. safe ground the player may stand on and enemies bounce off.
func (g *Grid) IsSolid(x, y int) bool {
	s := g.At(x, y)
	return s == CellBorder || s == CellClaimed
}

// ClaimedPercent returns the percentage of interior cells that are
// claimed or converted to border. It is recomputed from the live cells
// on every call so it can never diverge from the grid contents.
func (g *Grid) ClaimedPercent() float64 {
	interior := (g.width - 2) * (g.height - 2)
	if interior <= 0 {
		return 0
	}
	claimed := 0
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			s := g.cells[y*g.width+x]
			if s == CellClaimed || s == CellBorder {
				claimed++
			}
		}
	}
	return float64(claimed) / float64(interior) * 100
}
