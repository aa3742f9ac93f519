package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"familyalter/internal/modules/session/domain"
	sessionout "familyalter/internal/modules/session/port/out"
)

// corruptSuffix marks the key a malformed history value is moved to, so the
// next save cannot destroy it.
const corruptSuffix = ".corrupt"

// keyValue is the minimal storage the state codec needs.
type keyValue interface {
	get(ctx context.Context, key string) (string, bool, error)
	put(ctx context.Context, key, value string) error
	del(ctx context.Context, keys ...string) error
}

// KVStateStore encodes session state into two string keys.
type KVStateStore struct {
	kv     keyValue
	logger *zap.Logger
}

var _ sessionout.StateStore = (*KVStateStore)(nil)

func newKVStateStore(kv keyValue, logger *zap.Logger) *KVStateStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVStateStore{kv: kv, logger: logger}
}

// Load treats absent keys as empty. A malformed cursor reads as 0; a
// malformed history reads as empty after its raw value is set aside.
func (s *KVStateStore) Load(ctx context.Context) (domain.State, error) {
	state := domain.State{History: []domain.Record{}}

	raw, ok, err := s.kv.get(ctx, domain.HistoryKey)
	if err != nil {
		return domain.State{}, err
	}
	if ok && raw != "" {
		var history []domain.Record
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			s.logger.Warn("discarding malformed session history",
				zap.String("key", domain.HistoryKey),
				zap.String("moved_to", domain.HistoryKey+corruptSuffix),
				zap.Error(err))
			if err := s.kv.put(ctx, domain.HistoryKey+corruptSuffix, raw); err != nil {
				return domain.State{}, err
			}
		} else if history != nil {
			state.History = history
		}
	}

	raw, ok, err = s.kv.get(ctx, domain.StoryIndexKey)
	if err != nil {
		return domain.State{}, err
	}
	if ok && raw != "" {
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			s.logger.Warn("ignoring malformed story index",
				zap.String("key", domain.StoryIndexKey),
				zap.String("value", raw))
		} else {
			state.StoryIndex = idx
		}
	}
	return state, nil
}

func (s *KVStateStore) SaveHistory(ctx context.Context, history []domain.Record) error {
	if history == nil {
		history = []domain.Record{}
	}
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.kv.put(ctx, domain.HistoryKey, string(payload))
}

func (s *KVStateStore) SaveStoryIndex(ctx context.Context, index int) error {
	return s.kv.put(ctx, domain.StoryIndexKey, strconv.Itoa(index))
}

func (s *KVStateStore) Clear(ctx context.Context) error {
	return s.kv.del(ctx, domain.HistoryKey, domain.StoryIndexKey)
}
