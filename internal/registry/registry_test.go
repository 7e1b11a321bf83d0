package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

type stubGame struct{ id string }

type summaryGame struct{ stubGame }

func (g *summaryGame) Summary() string { return "a test game" }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Snapshot() sim.Snapshot               { return sim.Snapshot{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "ZZ-STUB" {
				t.Errorf("Title = %q, expected ZZ-STUB", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestInfoSummary(t *testing.T) {
	Register("zz-summary", func() Game { return &summaryGame{stubGame{id: "zz-summary"}} })
	Register("zz-plain", func() Game { return &stubGame{id: "zz-plain"} })

	info, ok := Info("zz-summary")
	if !ok || info.Summary != "a test game" || info.Title != "ZZ-SUMMARY" {
		t.Errorf("Info(zz-summary) = %+v, %v", info, ok)
	}
	if info, _ := Info("zz-plain"); info.Summary != "" {
		t.Errorf("a game without Summary should have none, got %q", info.Summary)
	}
	if _, ok := Info("no-such-game"); ok {
		t.Error("Info should miss unknown games")
	}
}
