package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory report store for development and testing.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*Report
}

// NewMemoryStore creates an empty in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*Report)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (s *MemoryStore) Set(ctx context.Context, rep *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rep
	s.reports[rep.ID] = &cp
	return nil
}

func (s *MemoryStore) List(ctx context.Context, opts ListOptions) ([]*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reports []*Report
	for _, rep := range s.reports {
		if opts.CircuitHash != "" && rep.CircuitHash != opts.CircuitHash {
			continue
		}
		cp := *rep
		reports = append(reports, &cp)
	}

	slices.SortStableFunc(reports, func(a, b *Report) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		// Map iteration order is random; break timestamp ties on ID so
		// listings stay deterministic.
		return cmp.Compare(a.ID, b.ID)
	})
	if opts.Limit > 0 && len(reports) > opts.Limit {
		reports = reports[:opts.Limit]
	}
	return reports, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reports, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
