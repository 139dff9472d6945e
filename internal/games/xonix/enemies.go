package xonix

import (
	"math"
	"math/rand"

	"github.com/arcadegrid/xonix-tui/internal/config"
)

// Enemy is a bouncing ball in continuous sub-cell coordinates. Enemies
// never occupy or mutate the grid; they only read it to bounce.
type Enemy struct {
	X, Y   float64 // position in sub-cell units
	VX, VY float64 // velocity per tick
	Radius float64
}

// Cell returns the grid cell containing the enemy's position.
func (e Enemy) Cell(cellSize int) Point {
	return Point{
		X: int(math.Floor(e.X / float64(cellSize))),
		Y: int(math.Floor(e.Y / float64(cellSize))),
	}
}

// spawnEnemies places enemies in the middle half of the field with
// random per-axis velocities drawn from the configured speed range.
func spawnEnemies(rng *rand.Rand, cfg config.XonixEnemies, gridW, gridH, cellSize int) []Enemy {
	enemies := make([]Enemy, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		cx := gridW/4 + rng.Intn(gridW/2+1)
		cy := gridH/4 + rng.Intn(gridH/2+1)
		enemies = append(enemies, Enemy{
			X:      float64(cx * cellSize),
			Y:      float64(cy * cellSize),
			VX:     randVelocity(rng, cfg.MinSpeed, cfg.MaxSpeed),
			VY:     randVelocity(rng, cfg.MinSpeed, cfg.MaxSpeed),
			Radius: cfg.Radius,
		})
	}
	return enemies
}

func randVelocity(rng *rand.Rand, minSpeed, maxSpeed float64) float64 {
	v := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}

// stepEnemies advances every enemy by its velocity, bounces it off
// world edges and solid cells, and runs collision checks against the
// trail and the player while a trail is being drawn. Claimed ground is
// safe: no collision checks happen while idle.
func (g *Game) stepEnemies() {
	worldW := float64(g.grid.Width() * g.cellSize)
	worldH := float64(g.grid.Height() * g.cellSize)

	for i := range g.enemies {
		e := &g.enemies[i]
		e.X += e.VX
		e.Y += e.VY

		cell := e.Cell(g.cellSize)
		solid := g.grid.InBounds(cell.X, cell.Y) && g.grid.IsSolid(cell.X, cell.Y)

		// Bounce per axis. After reversing, nudge the enemy by twice
		// the reversed velocity so discretization cannot leave it
		// inside the obstacle and re-trigger on the next tick.
		if e.X <= e.Radius || e.X >= worldW-e.Radius || solid {
			e.VX = -e.VX
			e.X += e.VX * 2
		}
		if e.Y <= e.Radius || e.Y >= worldH-e.Radius || solid {
			e.VY = -e.VY
			e.Y += e.VY * 2
		}

		if g.phase != PhaseDrawing {
			continue
		}
		if g.enemyHitsTrail(*e) {
			g.fail(reasonTrailDestroyed)
			return
		}
		if g.enemyHitsPlayer(*e) {
			g.fail(reasonPlayerCaught)
			return
		}
	}
}

// enemyHitsTrail tests the enemy circle against every trail cell, with
// the enemy radius plus half a cell as the combined threshold.
func (g *Game) enemyHitsTrail(e Enemy) bool {
	threshold := e.Radius + float64(g.cellSize)/2
	for _, p := range g.trail {
		dx := e.X - float64(p.X*g.cellSize)
		dy := e.Y - float64(p.Y*g.cellSize)
		if dx*dx+dy*dy < threshold*threshold {
			return true
		}
	}
	return false
}

func (g *Game) enemyHitsPlayer(e Enemy) bool {
	threshold := e.Radius + float64(g.cellSize)/2
	dx := e.X - float64(g.playerX*g.cellSize)
	dy := e.Y - float64(g.playerY*g.cellSize)
	return dx*dx+dy*dy < threshold*threshold
}
