package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type stubGame struct {
	deps Deps
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("registry_test_stub", "Stub", func(d Deps) Game { return &stubGame{deps: d} })

	if !Exists("registry_test_stub") {
		t.Fatal("registered game should exist")
	}
	if Title("registry_test_stub") != "Stub" {
		t.Errorf("Title() = %q, expected Stub", Title("registry_test_stub"))
	}
	if Title("nope") != "nope" {
		t.Errorf("Title of unknown id should echo the id")
	}

	g, err := Create("registry_test_stub", Deps{Slot: "alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.(*stubGame).deps.Slot != "alice" {
		t.Error("Create should pass deps to the factory")
	}

	if _, err := Create("nope", Deps{}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create of unknown id = %v, want ErrUnknownMode", err)
	}

	found := false
	for _, info := range List() {
		if info.ID == "registry_test_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List should include the registered game with its title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry_test_dup", "Dup", func(Deps) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("registry_test_dup", "Dup", func(Deps) Game { return &stubGame{} })
}
