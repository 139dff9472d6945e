// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, letting the platform
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcadegrid/xonix-tui/internal/core"
)

// Game is the interface every arcade game implements. Games hold pure
// simulation logic; input mapping, timing, persistence, and terminal
// output are platform concerns.
type Game interface {
	// ID returns a unique identifier (e.g. "xonix") used for CLI
	// commands and result storage.
	ID() string

	// Title returns a human-readable display name.
	Title() string

	// Reset initializes or restarts the session. Called once at start
	// and again on restart after a terminal state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, consuming at
	// most one directional command from the input frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the platform-visible session status.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

// Describer is optionally implemented by games that carry a short
// description for menus and listings.
type Describer interface {
	Description() string
}

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory to the registry. Typically called from a
// game package's init(). Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns metadata for all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
