package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "familyalter/internal/modules/session/dto"
	apperrors "familyalter/internal/platform/errors"
)

type fakeSession struct {
	view  sessiondto.SessionView
	next  sessiondto.NewSessionOutput
	err   error
	calls int
}

func (f *fakeSession) Init(context.Context) (sessiondto.SessionView, error) {
	return f.view, f.err
}

func (f *fakeSession) NewSession(context.Context) (sessiondto.NewSessionOutput, error) {
	f.calls++
	return f.next, f.err
}

type fakeLauncher struct{ opened []string }

func (f *fakeLauncher) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return nil
}

func keyRune(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func loadedModel(t *testing.T, session *fakeSession, launch *fakeLauncher) Model {
	t.Helper()
	m := NewModel(session, launch)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	m, _ = step(t, m, m.loadCmd()())
	return m
}

func TestModelRendersCardsAfterLoad(t *testing.T) {
	t.Parallel()
	session := &fakeSession{view: sessiondto.SessionView{
		Worship:    sessiondto.TrackOutput{Name: "Way Maker", URL: "https://example.com/way"},
		HasWorship: true,
		Story:      sessiondto.StoryOutput{Number: 1, Title: "God Makes the World"},
		StoryCount: 3,
		TrackCount: 1,
	}}
	m := NewModel(session, &fakeLauncher{})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	if !strings.Contains(m.View(), "Loading music...") {
		t.Fatalf("expected loading placeholder before init")
	}

	m, _ = step(t, m, m.loadCmd()())
	view := m.View()
	for _, want := range []string{"Family Altar", "Way Maker", "#1", "God Makes the World", "Beginner's Bible", "Start New Session"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelNewSessionUpdatesViewAndHistory(t *testing.T) {
	t.Parallel()
	record := sessiondto.RecordOutput{ID: 1, Date: "Monday, October 19, 2026", Worship: "Goodness of God", Story: "Noah Builds a Boat", StoryNumber: 2}
	session := &fakeSession{
		view: sessiondto.SessionView{Story: sessiondto.StoryOutput{Number: 1, Title: "God Makes the World"}, StoryCount: 3},
		next: sessiondto.NewSessionOutput{
			Record: record,
			View: sessiondto.SessionView{
				Worship:    sessiondto.TrackOutput{Name: "Goodness of God", URL: "https://example.com/good"},
				HasWorship: true,
				Story:      sessiondto.StoryOutput{Number: 2, Title: "Noah Builds a Boat"},
				StoryIndex: 1,
				StoryCount: 3,
				History:    []sessiondto.RecordOutput{record},
			},
		},
	}
	m := loadedModel(t, session, &fakeLauncher{})

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.busy {
		t.Fatalf("enter should start a session")
	}
	// a second press while busy is ignored
	if _, again := step(t, m, keyRune("n")); again != nil {
		t.Fatalf("new session should not be queued twice")
	}

	m, _ = step(t, m, m.newSessionCmd()())
	if session.calls != 1 || m.busy {
		t.Fatalf("calls=%d busy=%t", session.calls, m.busy)
	}
	if m.view.Story.Number != 2 || !strings.Contains(m.View(), "Noah Builds a Boat") {
		t.Fatalf("story card not advanced: %+v", m.view.Story)
	}
	if !strings.Contains(m.renderHeader(), "•") {
		t.Fatalf("history indicator should show once history is non-empty")
	}
}

func TestModelHistoryDrawerToggle(t *testing.T) {
	t.Parallel()
	m := loadedModel(t, &fakeSession{}, &fakeLauncher{})
	if strings.Contains(m.renderHeader(), "•") {
		t.Fatalf("no indicator expected for empty history")
	}

	m, _ = step(t, m, keyRune("h"))
	if !m.drawer.Open() || !strings.Contains(m.View(), "No history yet.") {
		t.Fatalf("h should open the drawer with the empty state")
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.drawer.Open() {
		t.Fatalf("esc should dismiss the drawer")
	}
}

func TestModelOpensWorshipLink(t *testing.T) {
	t.Parallel()
	launch := &fakeLauncher{}
	session := &fakeSession{view: sessiondto.SessionView{
		Worship:    sessiondto.TrackOutput{Name: "Way Maker", URL: "https://example.com/way"},
		HasWorship: true,
	}}
	m := loadedModel(t, session, launch)

	_, cmd := step(t, m, keyRune("o"))
	if cmd == nil {
		t.Fatalf("o should open the link")
	}
	msg, ok := cmd().(linkOpenedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected message %+v", msg)
	}
	if len(launch.opened) != 1 || launch.opened[0] != "https://example.com/way" {
		t.Fatalf("opened %v", launch.opened)
	}
}

func TestModelReportsEmptyCatalog(t *testing.T) {
	t.Parallel()
	session := &fakeSession{err: fmt.Errorf("next session: %w", apperrors.ErrEmptyCatalog)}
	m := loadedModel(t, session, &fakeLauncher{})
	if !strings.Contains(m.status, "no Bible stories available") {
		t.Fatalf("unexpected status %q", m.status)
	}
}
