package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
	"github.com/google/uuid"
)

type entry struct {
	mu      sync.Mutex
	session *domain.Session
}

// Store keeps sessions in process memory. The map lock only guards lookups
// and lazy creation; each session carries its own mutex so that callers on
// different keys never wait on each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[domain.SessionKey]*entry
	capacity int
	clock    ports.Clock
}

// New returns an empty store whose sessions hold at most capacity results.
// A non-positive capacity means domain.MaxHistory.
func New(capacity int, clock ports.Clock) *Store {
	if capacity <= 0 {
		capacity = domain.MaxHistory
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Store{
		sessions: make(map[domain.SessionKey]*entry),
		capacity: capacity,
		clock:    clock,
	}
}

var _ ports.SessionStore = (*Store)(nil)

func (s *Store) GetOrCreate(ctx context.Context, key domain.SessionKey) (domain.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionView{}, err
	}

	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.View(), nil
}

func (s *Store) Append(ctx context.Context, key domain.SessionKey, symbol domain.Symbol) (domain.SessionView, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionView{}, err
	}
	if !symbol.Valid() {
		return domain.SessionView{}, fmt.Errorf("append %q: %w", symbol, domain.ErrUnrecognizedInput)
	}

	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.History.Push(symbol)
	added := symbol
	e.session.LastAdded = &added
	e.session.UpdatedAt = s.clock.Now()
	return e.session.View(), nil
}

func (s *Store) Undo(ctx context.Context, key domain.SessionKey) (domain.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.session.History.Pop()
	if err != nil {
		return "", err
	}
	e.session.LastAdded = nil
	e.session.UpdatedAt = s.clock.Now()
	return removed, nil
}

func (s *Store) Reset(ctx context.Context, key domain.SessionKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.History.Clear()
	e.session.LastAdded = nil
	e.session.UpdatedAt = s.clock.Now()
	return nil
}

func (s *Store) Snapshot(ctx context.Context, key domain.SessionKey) ([]domain.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.History.Snapshot(), nil
}

// Keys lists every session created so far, sorted.
func (s *Store) Keys(ctx context.Context) ([]domain.SessionKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	keys := make([]domain.SessionKey, 0, len(s.sessions))
	for key := range s.sessions {
		keys = append(keys, key)
	}
	s.mu.RUnlock()

	slices.Sort(keys)
	return keys, nil
}

func (s *Store) entry(key domain.SessionKey) *entry {
	s.mu.RLock()
	e, ok := s.sessions[key]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[key]; ok {
		return e
	}

	now := s.clock.Now()
	e = &entry{session: &domain.Session{
		Key:       key,
		ID:        uuid.Must(uuid.NewV7()).String(),
		History:   domain.NewHistory(s.capacity),
		CreatedAt: now,
		UpdatedAt: now,
	}}
	s.sessions[key] = e
	return e
}
