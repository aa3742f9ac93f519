package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "familyalter/internal/modules/session/dto"
	apperrors "familyalter/internal/platform/errors"
	"familyalter/internal/ui/components"
	"familyalter/internal/ui/theme"
	historyview "familyalter/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Init(ctx context.Context) (sessiondto.SessionView, error)
	NewSession(ctx context.Context) (sessiondto.NewSessionOutput, error)
}

type launcherPort interface {
	Open(ctx context.Context, target string) error
}

// ─── async messages ───────────────────────────────────────────────────────────

type loadedMsg struct {
	view sessiondto.SessionView
	err  error
}

type sessionCreatedMsg struct {
	out sessiondto.NewSessionOutput
	err error
}

type linkOpenedMsg struct {
	url string
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NewSession key.Binding
	History    key.Binding
	Listen     key.Binding
	Close      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NewSession: key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter/n", "start new session")),
		History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Listen:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "listen")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewSession, k.History, k.Listen, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewSession, k.Listen},
		{k.History, k.Close},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: header, the two cards, the primary
// action and the history drawer. Session logic lives behind sessionPort.
type Model struct {
	session  sessionPort
	launcher launcherPort

	view    sessiondto.SessionView
	loaded  bool
	drawer  historyview.Model
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	showHelp bool
	busy     bool
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, launcher launcherPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Yellow)

	return Model{
		session:  session,
		launcher: launcher,
		drawer:   historyview.New(),
		keys:     defaultKeys(),
		help:     help.New(),
		spinner:  sp,
		status:   "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		var cmd tea.Cmd
		m.drawer, cmd = m.drawer.Update(tea.WindowSizeMsg{Width: m.drawerWidth(), Height: m.height - 2})
		return m, cmd

	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.status = describe("load failed", msg.err)
			return m, nil
		}
		m.apply(msg.view)
		m.status = "ready"
		return m, nil

	case sessionCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = describe("new session failed", msg.err)
			return m, nil
		}
		m.apply(msg.out.View)
		m.status = fmt.Sprintf("session recorded: %s · #%d %s", msg.out.Record.Worship, msg.out.Record.StoryNumber, msg.out.Record.Story)
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.status = describe("open link", msg.err)
		} else {
			m.status = "opened " + msg.url
		}
		return m, nil

	case spinner.TickMsg:
		if m.loaded && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Close) {
			m.showHelp = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Close):
		m.drawer.Close()
	case key.Matches(msg, m.keys.History):
		m.drawer.Toggle()
	case key.Matches(msg, m.keys.NewSession):
		if m.busy || !m.loaded {
			return m, nil
		}
		m.busy = true
		m.status = "starting new session"
		return m, tea.Batch(m.newSessionCmd(), m.spinner.Tick)
	case key.Matches(msg, m.keys.Listen):
		if !m.view.HasWorship {
			m.status = "no worship track selected"
			return m, nil
		}
		return m, m.openLinkCmd(m.view.Worship.URL)
	default:
		var cmd tea.Cmd
		m.drawer, cmd = m.drawer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	bodyH := max(m.height-lipgloss.Height(header)-lipgloss.Height(status), 1)

	var body string
	switch {
	case m.showHelp:
		body = lipgloss.NewStyle().Width(m.width).Height(bodyH).Render(m.help.View(m.keys))
	case m.drawer.Open():
		main := lipgloss.NewStyle().Width(m.width - m.drawerWidth()).Render(m.renderMain())
		body = lipgloss.JoinHorizontal(lipgloss.Top, main, m.drawer.View())
	default:
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Top, m.renderMain())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader() string {
	title := theme.Gold.Render("✦ ") + theme.Title.Render("Family Altar")
	toggle := theme.Muted.Render("[h] History")
	if len(m.view.History) > 0 {
		toggle += theme.Hot.Render(" •")
	}
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(toggle)-2, 1)
	bar := " " + title + strings.Repeat(" ", gap) + toggle + " "
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderMain() string {
	cardW := min(max(m.width-4, 24), 64)
	if m.drawer.Open() {
		cardW = min(max(m.width-m.drawerWidth()-4, 24), 64)
	}

	var worship string
	switch {
	case !m.loaded:
		worship = m.spinner.View() + " " + theme.Muted.Render("Loading music...")
	case m.view.HasWorship:
		worship = theme.Title.Render(m.view.Worship.Name) + "\n\n" +
			theme.Link.Render("▶ Listen on YouTube ↗") + theme.Muted.Render("  (o)")
	default:
		worship = theme.Muted.Render("Loading music...")
	}

	story := theme.Sky.Render(fmt.Sprintf("#%d", m.view.Story.Number)) + "  " +
		theme.Title.Render(m.view.Story.Title) + "\n\n" +
		theme.Muted.Render("Beginner's Bible")
	if !m.loaded {
		story = theme.Muted.Render("Loading...")
	}

	action := theme.Primary.Render("⟳  Start New Session")
	if m.busy {
		action = m.spinner.View() + " " + theme.Muted.Render("Starting…")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		components.Card{Heading: "♪ Worship Music", Accent: theme.Yellow, Body: worship, Width: cardW}.View(),
		components.Card{Heading: "✚ Bible Story", Accent: theme.Blue, Body: story, Width: cardW}.View(),
		"",
		action,
	)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.loaded && m.view.StoryCount > 0 {
		left = theme.Muted.Render(fmt.Sprintf("story %d/%d", m.view.StoryIndex%m.view.StoryCount+1, m.view.StoryCount)) + "  " + left
	}
	right := theme.Muted.Render("enter:new  h:history  o:listen  ?:help  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) apply(view sessiondto.SessionView) {
	m.view = view
	m.drawer.SetRecords(view.History)
}

func (m Model) drawerWidth() int {
	return max(m.width*45/100, 30)
}

func describe(prefix string, err error) string {
	if errors.Is(err, apperrors.ErrEmptyCatalog) {
		return prefix + ": no Bible stories available, run `familyalter convert`"
	}
	return prefix + ": " + err.Error()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.session.Init(context.Background())
		return loadedMsg{view: view, err: err}
	}
}

func (m Model) newSessionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.NewSession(context.Background())
		return sessionCreatedMsg{out: out, err: err}
	}
}

func (m Model) openLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if m.launcher == nil {
			return linkOpenedMsg{url: url, err: apperrors.ErrNotConfigured}
		}
		return linkOpenedMsg{url: url, err: m.launcher.Open(context.Background(), url)}
	}
}
