package out

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type memoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStateStore keeps state for the life of the process only; used by
// --ephemeral runs and tests. seed pre-populates raw key values.
func NewMemoryStateStore(seed map[string]string, logger *zap.Logger) *KVStateStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return newKVStateStore(&memoryKV{values: values}, logger)
}

func (m *memoryKV) get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryKV) del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
