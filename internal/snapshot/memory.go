package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"luxeroom/shared/timezone"
)

// memoryStore keeps snapshots in process memory. It backs tests and lets
// the service run without Postgres (state then lives only as long as the
// process). Values are stored serialized so a load exercises the same
// round-trip as the Postgres implementation.
type memoryStore struct {
	mu        sync.RWMutex
	values    map[string][]byte
	revisions map[string]Revision
}

func NewMemory() Store {
	return &memoryStore{
		values:    make(map[string][]byte),
		revisions: make(map[string]Revision),
	}
}

func (s *memoryStore) Load(_ context.Context, key string, target any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return true, nil
}

func (s *memoryStore) Save(_ context.Context, key string, value any, origin string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = raw
	s.revisions[key] = Revision{ModifiedAt: timezone.Now(), ModifiedBy: origin}

	return nil
}

func (s *memoryStore) Revisions(_ context.Context) (map[string]Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make(map[string]Revision, len(s.revisions))
	for key, rev := range s.revisions {
		res[key] = rev
	}

	return res, nil
}
