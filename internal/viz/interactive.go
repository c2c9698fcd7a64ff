package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/photonlab/internal/config"
	"github.com/san-kum/photonlab/internal/constants"
	"github.com/san-kum/photonlab/internal/experiment"
)

const (
	stateMenu = iota
	stateExplore
)

// Explorer is the Bubble Tea model behind the explore command: a menu of
// experiments, then a parameter panel with the live report beside it.
type Explorer struct {
	registry *experiment.Registry
	base     *config.Config
	cfg      *config.Config

	state       int
	cursor      int
	names       []string
	selected    experiment.Experiment
	paramCursor int
	editing     bool
	editBuf     string

	report   *experiment.Report
	err      error
	theme    Theme
	showPlot bool
	width    int
	height   int
}

// NewExplorer starts at the experiment menu. cfg supplies the starting
// parameters and theme and is not modified.
func NewExplorer(registry *experiment.Registry, cfg *config.Config) *Explorer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Explorer{
		registry: registry,
		base:     cfg.Clone(),
		cfg:      cfg.Clone(),
		names:    registry.List(),
		theme:    GetTheme(cfg.Theme),
		showPlot: true,
		width:    100,
		height:   30,
	}
}

func (m *Explorer) Init() tea.Cmd { return nil }

func (m *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *Explorer) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateExplore:
		if m.editing {
			m.editKey(msg)
			return nil
		}
		return m.exploreKey(msg)
	}
	return nil
}

func (m *Explorer) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "t":
		m.theme = m.theme.next()
	case "enter", " ":
		m.err = m.Open(m.names[m.cursor])
	}
	return nil
}

// Open skips the menu and shows the named experiment.
func (m *Explorer) Open(name string) error {
	e, err := m.registry.Get(name)
	if err != nil {
		return err
	}
	for i, n := range m.names {
		if n == name {
			m.cursor = i
		}
	}
	m.selected = e
	m.state, m.paramCursor, m.editing = stateExplore, 0, false
	m.rerun()
	return nil
}

func (m *Explorer) exploreKey(msg tea.KeyMsg) tea.Cmd {
	params := m.selected.Params
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if len(params) > 0 {
			m.editing = true
			m.editBuf = strconv.FormatFloat(m.param(params[m.paramCursor]), 'g', -1, 64)
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "m":
		if m.selected.Name == "photoelectric" {
			m.cfg.Photoelectric.Material = nextMaterial(m.cfg.Photoelectric.Material)
			m.cfg.Photoelectric.WorkFunctionEV = 0
			m.rerun()
		}
	case "p":
		m.showPlot = !m.showPlot
	case "t":
		m.theme = m.theme.next()
	case "r":
		m.cfg = m.base.Clone()
		m.rerun()
	}
	return nil
}

func (m *Explorer) editKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.setParam(m.selected.Params[m.paramCursor], v)
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-e") {
			m.editBuf += s
		}
	}
}

// nudge steps the selected parameter by a tenth of its order of
// magnitude, so 662 moves by 10 and 0.05 by 0.001.
func (m *Explorer) nudge(dir float64) {
	params := m.selected.Params
	if len(params) == 0 {
		return
	}
	name := params[m.paramCursor]
	v := m.param(name)
	step := 1.0
	if v != 0 {
		step = math.Pow(10, math.Floor(math.Log10(math.Abs(v)))-1)
	}
	if isCount(name) {
		step = 1
	}
	m.setParam(name, v+dir*step)
}

func (m *Explorer) param(name string) float64 {
	v, err := m.cfg.Param(m.selected.Name, name)
	if err != nil {
		m.err = err
	}
	return v
}

func (m *Explorer) setParam(name string, v float64) {
	if err := m.cfg.SetParam(m.selected.Name, name, v); err != nil {
		m.err = err
		return
	}
	m.rerun()
}

func (m *Explorer) rerun() {
	m.report, m.err = m.registry.Run(m.selected.Name, m.cfg)
}

func isCount(name string) bool {
	return name == "nuclear_charge" || name == "atomic_number"
}

func nextMaterial(current string) string {
	materials := constants.Materials()
	for i, name := range materials {
		if name == current {
			return materials[(i+1)%len(materials)]
		}
	}
	return materials[0]
}

func (m *Explorer) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateExplore:
		return m.viewExplore()
	}
	return ""
}

func (m *Explorer) viewMenu() string {
	st := m.theme.Styles()
	var b strings.Builder
	b.WriteString("\n\n    " + st.Title.Render("PHOTONLAB") + "\n    " + st.Subtitle.Render("photon-matter interactions") + "\n    " + st.Subtitle.Render("──────────────────────────") + "\n\n")
	for i, name := range m.names {
		e, _ := m.registry.Get(name)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.Key.Render("▸"), st.Value.Render(fmt.Sprintf("%-20s", name)), st.Selected.Render(e.Description)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", st.Label.Render(fmt.Sprintf("  %-20s", name)), st.Hint.Render(e.Description)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + st.No.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + KeyHints(m.theme, "j/k", "navigate", "enter", "select", "t", "theme "+m.theme.Name, "q", "quit") + "\n")
	return b.String()
}

func (m *Explorer) viewExplore() string {
	st := m.theme.Styles()
	var b strings.Builder
	b.WriteString("\n  " + st.Title.Render(strings.ToUpper(m.selected.Title)) + "  " + st.Subtitle.Render(m.selected.Description) + "\n\n")

	if m.selected.Name == "photoelectric" {
		b.WriteString(fmt.Sprintf("  %s %s\n", st.Label.Render(fmt.Sprintf("  %-18s", "material")), st.Value.Render(m.cfg.Photoelectric.Material)))
	}
	for i, name := range m.selected.Params {
		val := fmt.Sprintf("%10s", strconv.FormatFloat(m.param(name), 'g', 6, 64))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", st.Key.Render("▸"), st.Value.Render(fmt.Sprintf("%-18s", name)), st.Selected.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", st.Label.Render(fmt.Sprintf("  %-18s", name)), st.Hint.Render(val)))
		}
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + st.No.Render(m.err.Error()) + "\n")
	case m.report != nil:
		b.WriteString(st.Panel.Render(strings.TrimRight(RenderReport(m.report, m.theme), "\n")) + "\n")
		if m.showPlot {
			opts := PlotOptions{Width: max(m.width-20, 20), Height: max(m.height/4, 5), Theme: m.theme}
			b.WriteString("\n" + PlotReport(m.report, opts) + "\n")
		}
	}

	hints := []string{"j/k", "select", "enter", "edit", "h/l", "adjust"}
	if m.selected.Name == "photoelectric" {
		hints = append(hints, "m", "material")
	}
	hints = append(hints, "p", "plot", "t", "theme", "r", "reset", "esc", "back")
	b.WriteString("\n  " + KeyHints(m.theme, hints...) + "\n")
	return b.String()
}

// RunExplorer runs the explorer full screen until the user quits. A
// non-empty start opens that experiment directly.
func RunExplorer(registry *experiment.Registry, cfg *config.Config, start string) error {
	m := NewExplorer(registry, cfg)
	if start != "" {
		if err := m.Open(start); err != nil {
			return err
		}
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
