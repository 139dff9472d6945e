// Package xonix implements the territory-claiming game: the player
// draws trails through empty ground and walls off regions, which are
// claimed when they contain no enemy. The session is won once the
// claimed percentage reaches the configured threshold.
package xonix

import (
	"fmt"
	"math/rand"

	"github.com/arcadegrid/xonix-tui/internal/config"
	"github.com/arcadegrid/xonix-tui/internal/core"
	"github.com/arcadegrid/xonix-tui/internal/registry"
)

// Phase is the trail state machine's current state.
type Phase uint8

const (
	PhaseIdle    Phase = iota // player on solid ground, no trail
	PhaseDrawing              // trail actively extending through empty cells
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Terminal reasons shown to the player and recorded with results.
const (
	reasonSelfHit        = "Hit your own trail!"
	reasonTrailDestroyed = "Enemy hit your trail!"
	reasonPlayerCaught   = "Enemy hit you!"
	reasonVictory        = "Victory!"
)

// Game is the Xonix session: grid, trail, player, and enemies, advanced
// one tick at a time. All state lives in this one aggregate and is
// mutated in place by Step; there is no internal concurrency.
type Game struct {
	cfg      config.XonixConfig
	rng      *rand.Rand
	tick     uint64
	cellSize int

	grid             *Grid
	playerX, playerY int

	// The ordered trail defines the path; the set gives O(1)
	// self-intersection checks so a step never costs more than that.
	trail   []Point
	onTrail map[Point]bool

	enemies []Enemy

	phase  Phase
	reason string
	paused bool

	// Screen layout
	screenW, screenH int
	offsetX, offsetY int
	hudHeight        int
	tooSmall         bool
}

// Package-level launch options, set by the CLI before game creation
// (same pattern as the other games on this platform).
var (
	launchConfigPath string
	launchPreset     config.DifficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the config file path used by the next New call.
func SetConfigPath(path string) {
	launchConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next New call.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	launchPreset = preset
}

func init() {
	registry.Register("xonix", func() registry.Game {
		return New()
	})
}

// New creates a game from the configured config path and difficulty
// preset, falling back to defaults when loading fails. Use
// NewWithConfig to surface configuration errors instead.
func New() *Game {
	cfg, err := config.LoadXonix(launchConfigPath)
	if err != nil {
		cfg = config.DefaultXonixConfig()
	}
	config.ApplyXonixPreset(&cfg, launchPreset)
	g, err := NewWithConfig(cfg)
	if err != nil {
		// Presets never invalidate a valid config; defaults validate.
		g, _ = NewWithConfig(config.DefaultXonixConfig())
	}
	return g
}

// NewWithConfig creates a game with an explicit configuration. The
// config is validated here, before any grid is built, so broken values
// are a descriptive error rather than corrupted state later.
func NewWithConfig(cfg config.XonixConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, cellSize: cfg.Grid.CellSize}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "xonix" }

// Title returns the display name.
func (g *Game) Title() string { return "Xonix" }

// Description returns a short blurb for menus and listings.
func (g *Game) Description() string {
	return "Claim territory by drawing lines while avoiding enemies"
}

// Reset rebuilds the session from scratch: fresh grid, empty trail,
// player on the top border, new enemy set, phase back to idle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	g.grid = NewGrid(w, h)
	g.playerX = w / 2
	g.playerY = 0
	g.trail = nil
	g.onTrail = make(map[Point]bool)
	g.enemies = spawnEnemies(g.rng, g.cfg.Enemies, w, h, g.cellSize)
	g.phase = PhaseIdle
	g.reason = ""
	g.paused = false

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2
	g.tooSmall = g.screenW < w+2 || g.screenH < h+g.hudHeight+1
	g.offsetX = (g.screenW - w) / 2
	g.offsetY = g.hudHeight
}

// Step advances the simulation by one tick. At most one directional
// command is consumed per call; the whole frame (move, conditional
// claim, enemy advance, collisions) completes before returning.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.terminal() {
		g.paused = !g.paused
	}
	if g.terminal() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if dir := in.Direction(); dir != core.ActionNone {
		g.move(dir)
	}

	// Enemies advance after the move, so a closure on this tick
	// evaluates enemy occupancy at their previous-tick positions.
	if !g.terminal() {
		g.stepEnemies()
	}

	return core.StepResult{State: g.State()}
}

// move applies a single-cell move in the given direction, running the
// trail state machine transition for the destination cell.
func (g *Game) move(dir core.Action) {
	nx, ny := g.playerX, g.playerY
	switch dir {
	case core.ActionUp:
		ny--
	case core.ActionDown:
		ny++
	case core.ActionLeft:
		nx--
	case core.ActionRight:
		nx++
	default:
		return
	}

	// Outside the board entirely: rejected, no state change. Distinct
	// from stepping onto the border ring, which is a valid move.
	if !g.grid.InBounds(nx, ny) {
		return
	}

	dest := Point{X: nx, Y: ny}
	switch g.phase {
	case PhaseIdle:
		if g.grid.At(nx, ny) == CellEmpty {
			g.phase = PhaseDrawing
			g.trail = append(g.trail[:0], dest)
			g.onTrail = map[Point]bool{dest: true}
			g.grid.Set(nx, ny, CellTrail)
		}
		g.playerX, g.playerY = nx, ny

	case PhaseDrawing:
		switch {
		case g.onTrail[dest]:
			// Self-intersection. The player stays put and the trail is
			// frozen for inspection.
			g.fail(reasonSelfHit)

		case g.grid.IsSolid(nx, ny):
			g.closeTrail(nx, ny)

		default:
			g.trail = append(g.trail, dest)
			g.onTrail[dest] = true
			g.grid.Set(nx, ny, CellTrail)
			g.playerX, g.playerY = nx, ny
		}
	}
}

// closeTrail handles the trail reconnecting with solid ground: the
// claim runs in full, then the win threshold is checked, so a winning
// move still banks its territory.
func (g *Game) closeTrail(nx, ny int) {
	claimTerritory(g.grid, g.trail, g.enemies, g.cellSize)
	g.trail = nil
	g.onTrail = make(map[Point]bool)
	g.playerX, g.playerY = nx, ny
	g.phase = PhaseIdle

	if g.grid.ClaimedPercent() >= g.cfg.Gameplay.WinThreshold {
		g.phase = PhaseWon
		g.reason = reasonVictory
	}
}

func (g *Game) fail(reason string) {
	g.phase = PhaseLost
	g.reason = reason
}

func (g *Game) terminal() bool {
	return g.phase == PhaseLost || g.phase == PhaseWon
}

// --- Read-only queries ---

// Phase returns the state machine's current phase.
func (g *Game) Phase() Phase { return g.phase }

// Reason returns the human-readable terminal reason, or "" while active.
func (g *Game) Reason() string { return g.reason }

// ClaimedPercent returns the current claimed-territory percentage.
func (g *Game) ClaimedPercent() float64 {
	if g.grid == nil {
		return 0
	}
	return g.grid.ClaimedPercent()
}

// WinThreshold returns the configured win threshold percentage.
func (g *Game) WinThreshold() float64 { return g.cfg.Gameplay.WinThreshold }

// Player returns the player's grid coordinate.
func (g *Game) Player() Point { return Point{X: g.playerX, Y: g.playerY} }

// Trail returns a copy of the current trail in path order.
func (g *Game) Trail() []Point {
	out := make([]Point, len(g.trail))
	copy(out, g.trail)
	return out
}

// EnemyList returns a copy of the enemy set.
func (g *Game) EnemyList() []Enemy {
	out := make([]Enemy, len(g.enemies))
	copy(out, g.enemies)
	return out
}

// CellAt returns the cell state at (x, y), border for out-of-range.
func (g *Game) CellAt(x, y int) CellState {
	if g.grid == nil {
		return CellBorder
	}
	return g.grid.At(x, y)
}

// GridSize returns the grid dimensions in cells.
func (g *Game) GridSize() (w, h int) {
	return g.cfg.Grid.Width, g.cfg.Grid.Height
}

// State returns the platform-visible session status. Score is the
// claimed percentage rounded to the nearest whole point.
func (g *Game) State() core.GameState {
	pct := g.ClaimedPercent()
	return core.GameState{
		Score:    int(pct + 0.5),
		GameOver: g.terminal(),
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
	}
}
