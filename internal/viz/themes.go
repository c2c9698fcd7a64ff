package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme is a color scheme for report output and the explorer.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Yes       lipgloss.Color
	No        lipgloss.Color
	// Series colors the plot lines in order.
	Series []asciigraph.AnsiColor
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Yes:       lipgloss.Color("#00ff88"),
		No:        lipgloss.Color("#ff4444"),
		Series:    []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green},
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Yes:       lipgloss.Color("#88ff88"),
		No:        lipgloss.Color("#ffff00"),
		Series:    []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Lime, asciigraph.YellowGreen, asciigraph.DarkGreen},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Yes:       lipgloss.Color("#00ff00"),
		No:        lipgloss.Color("#ffaa00"),
		Series:    []asciigraph.AnsiColor{asciigraph.Default, asciigraph.Blue, asciigraph.Gray, asciigraph.White},
	}

	// ThemeSpectrum runs the series colors from red to violet.
	ThemeSpectrum = Theme{
		Name:      "spectrum",
		Primary:   lipgloss.Color("#8a2be2"),
		Secondary: lipgloss.Color("#4169e1"),
		Accent:    lipgloss.Color("#ffa500"),
		Text:      lipgloss.Color("#f0f0ff"),
		Muted:     lipgloss.Color("#6a6a8a"),
		Yes:       lipgloss.Color("#32cd32"),
		No:        lipgloss.Color("#dc143c"),
		Series:    []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Orange, asciigraph.Green, asciigraph.Violet},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Yes:       lipgloss.Color("#00ff88"),
		No:        lipgloss.Color("#ff4444"),
		Series:    []asciigraph.AnsiColor{asciigraph.DeepSkyBlue, asciigraph.Gold, asciigraph.Aqua, asciigraph.Coral},
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetro, ThemeMinimal, ThemeSpectrum, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next returns the theme after t in Themes, wrapping around.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
