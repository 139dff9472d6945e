package xonix

// claimTerritory converts a closed trail into permanent boundary and
// claims every enclosed empty region that contains no enemy. Run once
// per trail closure.
//
// The trail cells become border first, which is what makes the
// enclosure permanent: a later trail can never re-cross a path that has
// already paid out. Then the interior is scanned row-major and each
// still-empty cell not consumed by an earlier fill seeds one flood
// fill. Regions are disjoint because the shared visited set lets every
// cell join at most one region, so claimed-area growth per closure can
// never double-count a cell.
func claimTerritory(g *Grid, trail []Point, enemies []Enemy, cellSize int) {
	for _, p := range trail {
		g.Set(p.X, p.Y, CellBorder)
	}

	occupied := make(map[Point]bool, len(enemies))
	for i := range enemies {
		occupied[enemies[i].Cell(cellSize)] = true
	}

	visited := make([]bool, g.Width()*g.Height())
	var stack []Point

	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if g.At(x, y) != CellEmpty || visited[y*g.Width()+x] {
				continue
			}
			region := fillRegion(g, visited, Point{X: x, Y: y}, stack)
			if regionHasEnemy(region, occupied) {
				continue // contestable ground stays empty
			}
			for _, p := range region {
				g.Set(p.X, p.Y, CellClaimed)
			}
		}
	}
}

// fillRegion collects the maximal 4-connected set of empty cells
// reachable from start. The fill is iterative with an explicit stack:
// memory stays bounded by the board size no matter how large the empty
// area is.
func fillRegion(g *Grid, visited []bool, start Point, stack []Point) []Point {
	var region []Point
	stack = append(stack[:0], start)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(p.X, p.Y) || visited[p.Y*g.Width()+p.X] {
			continue
		}
		if g.At(p.X, p.Y) != CellEmpty {
			continue
		}

		visited[p.Y*g.Width()+p.X] = true
		region = append(region, p)

		stack = append(stack,
			Point{X: p.X, Y: p.Y + 1},
			Point{X: p.X, Y: p.Y - 1},
			Point{X: p.X + 1, Y: p.Y},
			Point{X: p.X - 1, Y: p.Y},
		)
	}
	return region
}

func regionHasEnemy(region []Point, occupied map[Point]bool) bool {
	for _, p := range region {
		if occupied[p] {
			return true
		}
	}
	return false
}
