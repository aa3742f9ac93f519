package service

import (
	"context"
	"time"

	"familyalter/internal/modules/session/domain"
	"familyalter/internal/platform/clock"
	apperrors "familyalter/internal/platform/errors"
)

// DateFormatter renders the human-readable date stored on a record.
type DateFormatter interface {
	LongDate(t time.Time) string
}

// Transition is the outcome of one new-session step.
type Transition struct {
	State      domain.State
	Worship    domain.WorshipTrack
	HasWorship bool
	Story      domain.BibleStory
	Record     domain.Record
}

type SessionService struct {
	clock clock.Clock
	rng   domain.Rand
	dates DateFormatter
}

func NewSessionService(clock clock.Clock, rng domain.Rand, dates DateFormatter) *SessionService {
	return &SessionService{clock: clock, rng: rng, dates: dates}
}

func (s *SessionService) PickTrack(tracks []domain.WorshipTrack) (domain.WorshipTrack, bool) {
	return domain.PickRandomTrack(tracks, s.rng)
}

func (s *SessionService) Now() time.Time {
	return s.clock.Now()
}

// Next draws a fresh track, moves the story cursor one step and records the
// result at the head of the history. The story is resolved after the move.
func (s *SessionService) Next(_ context.Context, state domain.State, tracks []domain.WorshipTrack, stories []domain.BibleStory) (Transition, error) {
	if len(stories) == 0 {
		return Transition{}, apperrors.ErrEmptyCatalog
	}
	worship, ok := s.PickTrack(tracks)
	index := domain.NextStoryIndex(state.StoryIndex, len(stories))
	story := domain.StoryAt(stories, index)
	now := s.clock.Now()
	record := domain.Record{
		ID:          now.UnixMilli(),
		Date:        s.dates.LongDate(now),
		Worship:     worship.Name,
		Story:       story.Title,
		StoryNumber: story.Number,
	}
	return Transition{
		State: domain.State{
			History:    domain.Prepend(state.History, record),
			StoryIndex: index,
		},
		Worship:    worship,
		HasWorship: ok,
		Story:      story,
		Record:     record,
	}, nil
}
