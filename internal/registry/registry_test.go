package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false after Register")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create(stub_b) error = %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create(stub_b).ID() = %q", g.ID())
	}
	if Title("stub_a") != "Stub stub_a" {
		t.Errorf("Title(stub_a) = %q", Title("stub_a"))
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub_a"), indexOf(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted entries for stub_a and stub_b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("Exists(missing) should be false")
	}
	if Title("missing") != "missing" {
		t.Errorf("Title(missing) = %q, expected the id", Title("missing"))
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
