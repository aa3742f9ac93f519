package out

import (
	"context"
	"time"

	"familyalter/internal/modules/session/domain"
)

// StateStore persists the two state keys independently.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	SaveHistory(ctx context.Context, history []domain.Record) error
	SaveStoryIndex(ctx context.Context, index int) error
	Clear(ctx context.Context) error
}

// Catalog serves the converted, read-only datasets.
type Catalog interface {
	Tracks(ctx context.Context) ([]domain.WorshipTrack, error)
	Stories(ctx context.Context) ([]domain.BibleStory, error)
}

type HistoryExporter interface {
	Export(ctx context.Context, path string, history []domain.Record, exportedAt time.Time) error
}
