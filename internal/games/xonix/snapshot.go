package xonix

// EnemyState is an enemy's kinematic state captured in a snapshot.
type EnemyState struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot captures the full observable session state for determinism
// testing and replay verification.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Reason   string
	Percent  float64
	PlayerX  int
	PlayerY  int
	TrailLen int
	Enemies  []EnemyState
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]EnemyState, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemyState{X: e.X, Y: e.Y, VX: e.VX, VY: e.VY}
	}
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Reason:   g.reason,
		Percent:  g.ClaimedPercent(),
		PlayerX:  g.playerX,
		PlayerY:  g.playerY,
		TrailLen: len(g.trail),
		Enemies:  enemies,
	}
}
