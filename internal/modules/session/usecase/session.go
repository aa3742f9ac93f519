package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"familyalter/internal/modules/session/domain"
	sessiondto "familyalter/internal/modules/session/dto"
	sessionin "familyalter/internal/modules/session/port/in"
	sessionout "familyalter/internal/modules/session/port/out"
	"familyalter/internal/modules/session/service"
	apperrors "familyalter/internal/platform/errors"
)

// Interactor owns the in-memory session state. The store is read once, on
// first use, and written after every change to history or cursor.
type Interactor struct {
	svc      *service.SessionService
	store    sessionout.StateStore
	catalog  sessionout.Catalog
	exporter sessionout.HistoryExporter
	logger   *zap.Logger

	mu         sync.Mutex
	loaded     bool
	tracks     []domain.WorshipTrack
	stories    []domain.BibleStory
	state      domain.State
	worship    domain.WorshipTrack
	hasWorship bool
}

func NewInteractor(svc *service.SessionService, store sessionout.StateStore, catalog sessionout.Catalog, exporter sessionout.HistoryExporter, logger *zap.Logger) sessionin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, store: store, catalog: catalog, exporter: exporter, logger: logger}
}

func (i *Interactor) Init(ctx context.Context) (sessiondto.SessionView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return sessiondto.SessionView{}, err
	}
	return i.view(), nil
}

func (i *Interactor) NewSession(ctx context.Context) (sessiondto.NewSessionOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return sessiondto.NewSessionOutput{}, err
	}
	tr, err := i.svc.Next(ctx, i.state, i.tracks, i.stories)
	if err != nil {
		return sessiondto.NewSessionOutput{}, err
	}
	if err := i.store.SaveHistory(ctx, tr.State.History); err != nil {
		return sessiondto.NewSessionOutput{}, err
	}
	if err := i.store.SaveStoryIndex(ctx, tr.State.StoryIndex); err != nil {
		return sessiondto.NewSessionOutput{}, err
	}
	i.state = tr.State
	i.worship, i.hasWorship = tr.Worship, tr.HasWorship
	i.logger.Info("session recorded",
		zap.Int64("id", tr.Record.ID),
		zap.String("worship", tr.Record.Worship),
		zap.Int("story_number", tr.Record.StoryNumber),
		zap.Int("story_index", tr.State.StoryIndex),
		zap.Int("history", len(tr.State.History)))
	return sessiondto.NewSessionOutput{Record: toRecordOutput(tr.Record), View: i.view()}, nil
}

func (i *Interactor) Current(ctx context.Context) (sessiondto.SessionView, error) {
	return i.Init(ctx)
}

func (i *Interactor) History(ctx context.Context) ([]sessiondto.RecordOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return toRecordOutputs(i.state.History), nil
}

func (i *Interactor) ExportHistory(ctx context.Context, input sessiondto.ExportInput) (sessiondto.ExportOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return sessiondto.ExportOutput{}, fmt.Errorf("export path is required: %w", apperrors.ErrInvalidInput)
	}
	if i.exporter == nil {
		return sessiondto.ExportOutput{}, fmt.Errorf("history exporter: %w", apperrors.ErrNotConfigured)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return sessiondto.ExportOutput{}, err
	}
	if err := i.exporter.Export(ctx, input.Path, i.state.History, i.svc.Now()); err != nil {
		return sessiondto.ExportOutput{}, err
	}
	return sessiondto.ExportOutput{Path: input.Path, Sessions: len(i.state.History)}, nil
}

// Reset forgets the history and rewinds the cursor, in memory and on disk.
func (i *Interactor) Reset(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.store.Clear(ctx); err != nil {
		return err
	}
	i.state = domain.State{}
	i.logger.Info("session state reset")
	return nil
}

func (i *Interactor) ensureLoaded(ctx context.Context) error {
	if i.loaded {
		return nil
	}
	tracks, err := i.catalog.Tracks(ctx)
	if err != nil {
		return fmt.Errorf("load worship tracks: %w", err)
	}
	stories, err := i.catalog.Stories(ctx)
	if err != nil {
		return fmt.Errorf("load bible stories: %w", err)
	}
	state, err := i.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session state: %w", err)
	}
	i.tracks, i.stories, i.state = tracks, stories, state
	i.worship, i.hasWorship = i.svc.PickTrack(tracks)
	i.loaded = true
	i.logger.Debug("session state loaded",
		zap.Int("tracks", len(tracks)),
		zap.Int("stories", len(stories)),
		zap.Int("history", len(state.History)),
		zap.Int("story_index", state.StoryIndex))
	return nil
}

func (i *Interactor) view() sessiondto.SessionView {
	story := domain.StoryAt(i.stories, i.state.StoryIndex)
	return sessiondto.SessionView{
		Worship:    sessiondto.TrackOutput{Name: i.worship.Name, URL: i.worship.URL, Order: i.worship.Order},
		HasWorship: i.hasWorship,
		Story:      sessiondto.StoryOutput{Number: story.Number, Title: story.Title},
		StoryIndex: i.state.StoryIndex,
		StoryCount: len(i.stories),
		TrackCount: len(i.tracks),
		History:    toRecordOutputs(i.state.History),
	}
}

func toRecordOutput(r domain.Record) sessiondto.RecordOutput {
	return sessiondto.RecordOutput{ID: r.ID, Date: r.Date, Worship: r.Worship, Story: r.Story, StoryNumber: r.StoryNumber}
}

func toRecordOutputs(records []domain.Record) []sessiondto.RecordOutput {
	out := make([]sessiondto.RecordOutput, len(records))
	for idx, r := range records {
		out[idx] = toRecordOutput(r)
	}
	return out
}
