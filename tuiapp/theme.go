package tuiapp

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds every colour twice, the dark mode switch of the portfolio picks the side. The
// terminal background is not consulted.
type Theme struct {
	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	Red        lipgloss.AdaptiveColor
}

var Color = Theme{
	Background: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#030712"},
	Surface:    lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"},
	Primary:    lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"},
	Secondary:  lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
	Highlight:  lipgloss.AdaptiveColor{Light: "#8b2def", Dark: "#8b2def"},
	Border:     lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
	Red:        lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"},
}

// palette is a Theme resolved for one mode.
type palette struct {
	background lipgloss.Color
	surface    lipgloss.Color
	primary    lipgloss.Color
	secondary  lipgloss.Color
	highlight  lipgloss.Color
	border     lipgloss.Color
	red        lipgloss.Color
}

func pick(c lipgloss.AdaptiveColor, dark bool) lipgloss.Color {
	if dark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

func (t Theme) resolve(dark bool) palette {
	return palette{
		background: pick(t.Background, dark),
		surface:    pick(t.Surface, dark),
		primary:    pick(t.Primary, dark),
		secondary:  pick(t.Secondary, dark),
		highlight:  pick(t.Highlight, dark),
		border:     pick(t.Border, dark),
		red:        pick(t.Red, dark),
	}
}

// tableStyles derives the table look from the palette. The selected row is only highlighted while
// the table has the focus.
func (p palette) tableStyles(focused bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.border).
		BorderBottom(true).
		Foreground(p.secondary).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(p.primary)
	if focused {
		styles.Selected = lipgloss.NewStyle().Foreground(p.background).Background(p.highlight).Bold(true)
	} else {
		styles.Selected = lipgloss.NewStyle().Foreground(p.primary)
	}
	return styles
}
