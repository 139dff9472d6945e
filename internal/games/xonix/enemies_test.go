package xonix

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arcadegrid/xonix-tui/internal/config"
)

func TestEnemyCellQuantization(t *testing.T) {
	tests := []struct {
		x, y float64
		want Point
	}{
		{0, 0, Point{0, 0}},
		{9.9, 9.9, Point{0, 0}},
		{10, 10, Point{1, 1}},
		{55, 23, Point{5, 2}},
		{-0.1, 5, Point{-1, 0}}, // floor, not truncation
	}
	for _, tc := range tests {
		e := Enemy{X: tc.x, Y: tc.y}
		if got := e.Cell(10); got != tc.want {
			t.Errorf("Cell of (%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSpawnEnemies(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.XonixEnemies{Count: 5, MinSpeed: 1.5, MaxSpeed: 2.5, Radius: 4}

	enemies := spawnEnemies(rng, cfg, 70, 50, 10)

	if len(enemies) != 5 {
		t.Fatalf("spawned %d enemies, expected 5", len(enemies))
	}
	for i, e := range enemies {
		cell := e.Cell(10)
		if cell.X < 70/4 || cell.X > 70/4+70/2 || cell.Y < 50/4 || cell.Y > 50/4+50/2 {
			t.Errorf("enemy %d spawned at cell %v, outside the middle half", i, cell)
		}
		for axis, v := range map[string]float64{"vx": e.VX, "vy": e.VY} {
			if s := math.Abs(v); s < cfg.MinSpeed || s > cfg.MaxSpeed {
				t.Errorf("enemy %d %s speed %v outside [%v, %v]", i, axis, s, cfg.MinSpeed, cfg.MaxSpeed)
			}
		}
		if e.Radius != cfg.Radius {
			t.Errorf("enemy %d radius = %v, expected %v", i, e.Radius, cfg.Radius)
		}
	}
}

func TestEnemyBouncesOffLeftEdge(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.enemies = []Enemy{{X: 5, Y: 55, VX: -2, VY: 0, Radius: 4}}

	g.stepEnemies()

	e := g.enemies[0]
	if e.VX <= 0 {
		t.Errorf("x-velocity = %v after left-edge contact, expected reversal", e.VX)
	}
	if e.X <= 5-2 {
		t.Errorf("enemy not nudged away from the edge, x = %v", e.X)
	}
}

func TestEnemyBouncesOffSolidCell(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.grid.Set(7, 5, CellClaimed)
	// Moving into the claimed cell; next tick lands at (72, 55) inside it.
	g.enemies = []Enemy{{X: 68, Y: 55, VX: 4, VY: 1, Radius: 4}}

	g.stepEnemies()

	e := g.enemies[0]
	if e.VX != -4 || e.VY != -1 {
		t.Errorf("velocity = (%v, %v) after solid contact, expected both axes reversed", e.VX, e.VY)
	}
	// Reversal plus the 2*v nudge: 72 - 8 and 56 - 2.
	if e.X != 64 || e.Y != 54 {
		t.Errorf("position = (%v, %v) after bounce, expected (64, 54)", e.X, e.Y)
	}
}

func TestEnemyPassesThroughTrailCells(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.grid.Set(7, 5, CellTrail)
	g.enemies = []Enemy{{X: 68, Y: 55, VX: 4, VY: 0, Radius: 4}}

	// Trail cells are not solid; idle phase means no collision check either.
	g.stepEnemies()

	e := g.enemies[0]
	if e.VX != 4 {
		t.Errorf("x-velocity = %v, expected trail cell to not deflect", e.VX)
	}
}

func TestEnemyDestroysTrailWhileDrawing(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.phase = PhaseDrawing
	g.trail = []Point{{X: 5, Y: 5}}
	g.grid.Set(5, 5, CellTrail)
	g.playerX, g.playerY = 9, 9

	// Stationary enemy exactly on the trail cell's pixel anchor.
	g.enemies = []Enemy{{X: 50, Y: 50, Radius: 4}}
	g.stepEnemies()

	if g.phase != PhaseLost {
		t.Fatalf("phase = %v, expected lost", g.phase)
	}
	if g.Reason() != reasonTrailDestroyed {
		t.Errorf("reason = %q, expected %q", g.Reason(), reasonTrailDestroyed)
	}
}

func TestEnemyFarFromTrailIsHarmless(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.phase = PhaseDrawing
	g.trail = []Point{{X: 5, Y: 5}}
	g.grid.Set(5, 5, CellTrail)
	g.playerX, g.playerY = 9, 9

	g.enemies = []Enemy{{X: 15, Y: 105, Radius: 4}}
	g.stepEnemies()

	if g.phase != PhaseDrawing {
		t.Errorf("phase = %v, expected drawing to continue", g.phase)
	}
}

func TestEnemyCatchesPlayerWhileDrawing(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.phase = PhaseDrawing
	g.trail = []Point{{X: 2, Y: 2}}
	g.grid.Set(2, 2, CellTrail)
	g.playerX, g.playerY = 8, 8

	g.enemies = []Enemy{{X: 80, Y: 80, Radius: 4}}
	g.stepEnemies()

	if g.phase != PhaseLost {
		t.Fatalf("phase = %v, expected lost", g.phase)
	}
	if g.Reason() != reasonPlayerCaught {
		t.Errorf("reason = %q, expected %q", g.Reason(), reasonPlayerCaught)
	}
}

func TestEnemyIgnoresPlayerOnSolidGround(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.playerX, g.playerY = 8, 8

	// Enemy right on top of the idle player: claimed ground is safe.
	g.enemies = []Enemy{{X: 80, Y: 80, Radius: 4}}
	g.stepEnemies()

	if g.phase != PhaseIdle {
		t.Errorf("phase = %v, expected idle player to be untouchable", g.phase)
	}
}

func TestCollisionThresholdBoundary(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.phase = PhaseDrawing
	g.trail = []Point{{X: 5, Y: 5}}
	g.playerX, g.playerY = 9, 9

	// Threshold is radius + cellSize/2 = 9 against the cell's pixel
	// anchor (50, 50). Exactly at the threshold is not a hit.
	if g.enemyHitsTrail(Enemy{X: 59, Y: 50, Radius: 4}) {
		t.Error("distance equal to threshold counted as a hit")
	}
	if !g.enemyHitsTrail(Enemy{X: 58.9, Y: 50, Radius: 4}) {
		t.Error("distance inside threshold not counted as a hit")
	}
}

func TestStepEnemiesStopsAtFirstFatality(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.phase = PhaseDrawing
	g.trail = []Point{{X: 5, Y: 5}}
	g.playerX, g.playerY = 9, 9

	// First enemy kills the trail; the second would move if processed.
	g.enemies = []Enemy{
		{X: 50, Y: 50, Radius: 4},
		{X: 25, Y: 105, VX: 2, VY: 2, Radius: 4},
	}
	g.stepEnemies()

	if g.phase != PhaseLost {
		t.Fatalf("phase = %v, expected lost", g.phase)
	}
	if second := g.enemies[1]; second.X != 25 || second.Y != 105 {
		t.Errorf("second enemy advanced to (%v, %v) after the run ended", second.X, second.Y)
	}
}
