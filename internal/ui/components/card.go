package components

import (
	"github.com/charmbracelet/lipgloss"

	"familyalter/internal/ui/theme"
)

// Card is a bordered panel with a coloured heading.
type Card struct {
	Heading string
	Accent  lipgloss.Color
	Body    string
	Width   int
}

func (c Card) View() string {
	heading := lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Render(c.Heading)
	w := c.Width
	if w < 24 {
		w = 48
	}
	return theme.Pane.
		BorderForeground(c.Accent).
		Width(w - 2).
		Render(heading + "\n\n" + c.Body)
}
