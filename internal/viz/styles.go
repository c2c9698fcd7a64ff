package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/photonlab/internal/experiment"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Yes      lipgloss.Style
	No       lipgloss.Style
	Note     lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Label:    lipgloss.NewStyle().Foreground(t.Muted),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Yes:      lipgloss.NewStyle().Bold(true).Foreground(t.Yes),
		No:       lipgloss.NewStyle().Bold(true).Foreground(t.No),
		Note:     lipgloss.NewStyle().Italic(true).Foreground(t.Accent),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// RenderReport lays out the scalar fields, threshold flags and notes of a
// report as an aligned, styled block.
func RenderReport(rep *experiment.Report, theme Theme) string {
	st := theme.Styles()
	var b strings.Builder

	b.WriteString(st.Title.Render(strings.ToUpper(rep.Title)) + "\n")

	width := 0
	for _, f := range rep.Fields {
		width = max(width, len(FormatName(f.Name)))
	}
	for _, name := range sortedKeys(rep.Flags) {
		width = max(width, len(FormatName(name)))
	}

	for _, f := range rep.Fields {
		label := fmt.Sprintf("%-*s", width, FormatName(f.Name))
		b.WriteString("  " + st.Label.Render(label) + "  " + st.Value.Render(FormatValue(f.Value, f.Unit)) + "\n")
	}
	for _, name := range sortedKeys(rep.Flags) {
		label := fmt.Sprintf("%-*s", width, FormatName(name))
		flag := st.No.Render("no")
		if rep.Flags[name] {
			flag = st.Yes.Render("yes")
		}
		b.WriteString("  " + st.Label.Render(label) + "  " + flag + "\n")
	}
	for _, note := range rep.Notes {
		b.WriteString("  " + st.Note.Render("! "+note) + "\n")
	}
	return b.String()
}

// KeyHints renders "key action" pairs on one line.
func KeyHints(theme Theme, pairs ...string) string {
	st := theme.Styles()
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, st.Key.Render(pairs[i])+st.Hint.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
