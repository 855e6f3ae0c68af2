package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	messageBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	normalStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	hpGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hpWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hpCritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	loseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

const hpBarWidth = 20

// renderHPBar draws a colored bar proportional to remaining HP.
func renderHPBar(current, max int) string {
	if max < 1 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	filled := current * hpBarWidth / max
	if current > 0 && filled == 0 {
		filled = 1
	}
	bar := ""
	for i := 0; i < hpBarWidth; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	style := hpGoodStyle
	switch {
	case current*4 <= max:
		style = hpCritStyle
	case current*2 <= max:
		style = hpWarnStyle
	}
	return style.Render(bar)
}
