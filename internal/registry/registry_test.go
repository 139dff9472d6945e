package registry

import (
	"testing"

	"github.com/arcadegrid/xonix-tui/internal/core"
)

// stubGame is a minimal Game for registry tests.
type stubGame struct {
	id    string
	title string
	desc  string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Description() string                  { return g.desc }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game {
		return &stubGame{id: "stub-a", title: "Stub A", desc: "first stub"}
	})

	if !Exists("stub-a") {
		t.Fatal("registered game not found by Exists")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" || g.Title() != "Stub A" {
		t.Errorf("created game = %q/%q, expected stub-a/Stub A", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("stub-a")
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknownGame(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create of unknown game should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestListSortedWithDescriptions(t *testing.T) {
	Register("stub-z", func() Game {
		return &stubGame{id: "stub-z", title: "Stub Z", desc: "last stub"}
	})
	Register("stub-b", func() Game {
		return &stubGame{id: "stub-b", title: "Stub B"}
	})

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	byID := make(map[string]GameInfo, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	if byID["stub-z"].Description != "last stub" {
		t.Errorf("description = %q, expected %q", byID["stub-z"].Description, "last stub")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game {
		return &stubGame{id: "stub-dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", func() Game {
		return &stubGame{id: "stub-dup", title: "Dup"}
	})
}
