package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	sessiondto "familyalter/internal/modules/session/dto"
	"familyalter/internal/ui/theme"
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the slide-in drawer listing past sessions, newest first.
type Model struct {
	viewport viewport.Model
	renderer *glamour.TermRenderer
	records  []sessiondto.RecordOutput
	open     bool
	width    int
	height   int
}

func New() Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{viewport: viewport.New(0, 0), renderer: r}
}

func (m Model) Open() bool { return m.open }

func (m *Model) Toggle() { m.open = !m.open }

func (m *Model) Close() { m.open = false }

// SetRecords replaces the listed history and scrolls back to the newest entry.
func (m *Model) SetRecords(records []sessiondto.RecordOutput) {
	m.records = records
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderContent())
		return m, nil
	}
	if !m.open {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.open {
		return ""
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Gold.Render("◷ Past Sessions"),
		"  ",
		theme.Muted.Render(fmt.Sprintf("%d  esc: close", len(m.records))),
	)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Yellow).
		Background(theme.Mantle).
		Width(max(m.width-2, 10)).
		Height(max(m.height-2, 3)).
		Render(header + "\n\n" + m.viewport.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = max(m.width-4, 1)
	m.viewport.Height = max(m.height-5, 1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.viewport.Width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderContent() string {
	if len(m.records) == 0 {
		return theme.Muted.Render("No history yet.")
	}
	md := Markdown(m.records)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Markdown lists records as one block each: date, worship, story and number.
func Markdown(records []sessiondto.RecordOutput) string {
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "**%s**\n\n", escape(r.Date))
		fmt.Fprintf(&sb, "- ♪ %s\n", escape(r.Worship))
		fmt.Fprintf(&sb, "- ✚ %s (#%d)\n\n", escape(r.Story), r.StoryNumber)
	}
	return sb.String()
}

var mdEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
