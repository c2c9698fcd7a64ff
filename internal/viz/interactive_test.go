package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/photonlab/internal/config"
	"github.com/san-kum/photonlab/internal/experiment"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(m *Explorer, msgs ...tea.Msg) *Explorer {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(*Explorer)
	}
	return m
}

func TestExplorerSelectsExperiment(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	if !strings.Contains(m.View(), "PHOTONLAB") {
		t.Fatal("menu not shown")
	}

	// photoelectric, compton, ...
	m = send(m, keys("j"), enter)
	if m.state != stateExplore || m.selected.Name != "compton" {
		t.Fatalf("expected compton explorer, got state %d %q", m.state, m.selected.Name)
	}
	if m.report == nil || m.err != nil {
		t.Fatalf("expected a report, err=%v", m.err)
	}
	if !strings.Contains(m.View(), "COMPTON SCATTERING") {
		t.Error("explore view missing title")
	}

	m = send(m, esc)
	if m.state != stateMenu {
		t.Error("esc should return to the menu")
	}
}

func TestExplorerEditsParameter(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	m = send(m, keys("j"), enter, keys("j"), enter)
	if !m.editing {
		t.Fatal("expected edit mode")
	}

	m.editBuf = ""
	m = send(m, keys("1"), keys("8"), keys("0"), enter)
	if m.cfg.Compton.AngleDeg != 180 {
		t.Fatalf("expected angle 180, got %f", m.cfg.Compton.AngleDeg)
	}
	if v, _ := m.report.Field("scattering_angle"); v != 180 {
		t.Errorf("report not refreshed: angle %f", v)
	}

	m = send(m, keys("h"))
	if m.cfg.Compton.AngleDeg != 170 {
		t.Errorf("expected nudge to 170, got %f", m.cfg.Compton.AngleDeg)
	}

	m = send(m, keys("r"))
	if m.cfg.Compton.AngleDeg != config.DefaultAngle {
		t.Errorf("reset should restore %f, got %f", config.DefaultAngle, m.cfg.Compton.AngleDeg)
	}
}

func TestExplorerCyclesMaterial(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	m = send(m, enter)
	if m.selected.Name != "photoelectric" {
		t.Fatalf("expected photoelectric, got %q", m.selected.Name)
	}
	before := m.cfg.Photoelectric.Material
	m = send(m, keys("m"))
	if m.cfg.Photoelectric.Material == before {
		t.Error("material did not change")
	}
	if m.err != nil {
		t.Errorf("unexpected error: %v", m.err)
	}
}

func TestExplorerShowsInvalidInput(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	m = send(m, keys("j"), enter, enter)
	m.editBuf = "-5"
	m = send(m, enter)
	if m.err == nil {
		t.Fatal("expected an error for a negative energy")
	}
	if !strings.Contains(m.View(), "invalid") {
		t.Error("error not shown in view")
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	if _, cmd := m.Update(keys("q")); cmd == nil {
		t.Error("q should quit from the menu")
	}
}

func TestExplorerOpen(t *testing.T) {
	m := NewExplorer(experiment.NewRegistry(), config.DefaultConfig())
	if err := m.Open("rayleigh"); err != nil {
		t.Fatal(err)
	}
	if m.state != stateExplore || m.report == nil {
		t.Fatal("expected rayleigh report")
	}
	if err := m.Open("bremsstrahlung"); err == nil {
		t.Error("expected error for unknown experiment")
	}
}
