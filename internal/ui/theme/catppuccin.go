package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 2)

	Title   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Gold    = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	Sky     = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	Hot     = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Danger  = lipgloss.NewStyle().Foreground(Red)
	Link    = lipgloss.NewStyle().Foreground(Sapphire).Underline(true)
	Primary = lipgloss.NewStyle().
		Background(Yellow).
		Foreground(Base).
		Bold(true).
		Padding(0, 3)
)
