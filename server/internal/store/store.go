package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// Entry is one graded cut together with the time it was last updated.
type Entry struct {
	ID         string              `json:"id"`
	Label      string              `json:"label,omitempty"`
	Evaluation types.CutEvaluation `json:"evaluation"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Store is a thread-safe in-memory cut store, keyed by cut ID.
// A background goroutine (Run) periodically evicts entries that have not
// been updated within the configured TTL. A zero TTL keeps entries forever.
type Store struct {
	mu   sync.RWMutex
	data map[string]*Entry
	ttl  time.Duration
	now  func() time.Time // injectable for deterministic tests
}

// New creates a Store with the given TTL.
func New(ttl time.Duration) *Store {
	return &Store{
		data: make(map[string]*Entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Create stores ev under a freshly generated ID and returns the new entry.
func (s *Store) Create(label string, ev types.CutEvaluation) *Entry {
	return s.Put(uuid.NewString(), label, ev)
}

// Put stores or replaces the evaluation held under id and returns a copy of
// the stored entry.
func (s *Store) Put(id, label string, ev types.CutEvaluation) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &Entry{
		ID:         id,
		Label:      label,
		Evaluation: ev,
		UpdatedAt:  s.now(),
	}
	s.data[id] = e
	cp := *e
	return &cp
}

// Get returns the entry for id and whether a live one was found. Entries
// past their TTL are reported missing even before eviction removes them.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[id]
	if !ok || !s.live(e, s.now()) {
		return nil, false
	}
	cp := *e
	return &cp, true
}

// List returns copies of all live entries ordered by ID.
// Stale entries that have not yet been evicted are excluded.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	out := make([]*Entry, 0, len(s.data))
	for _, e := range s.data {
		if s.live(e, now) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the total number of entries currently held, including stale ones.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) live(e *Entry, now time.Time) bool {
	return s.ttl == 0 || e.UpdatedAt.After(now.Add(-s.ttl))
}

// Evict removes entries whose UpdatedAt is older than now minus TTL.
// It returns the number of entries removed.
func (s *Store) Evict(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.data {
		if !s.live(e, now) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Run starts the background TTL eviction loop. It ticks at half the TTL interval
// (minimum 1 second) so entries are evicted promptly. Run blocks until ctx is
// cancelled.
func (s *Store) Run(ctx context.Context) {
	if s.ttl == 0 {
		<-ctx.Done()
		return
	}
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Evict(now); n > 0 {
				slog.Debug("store: evicted stale cuts", "count", n)
			}
		}
	}
}
