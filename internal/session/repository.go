package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = fmt.Errorf("session not found")

type Repository interface {
	Create(ctx context.Context, state *State) error
	Get(ctx context.Context, id string) (*State, error)
	Update(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}

type entry struct {
	state     State
	expiresAt time.Time
}

// memoryRepository keeps sessions in process memory with a TTL. Sessions are
// deliberately not persisted anywhere; a restart drops them all, the same way
// a page reload resets the original UI state.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
}

func NewMemoryRepository(ttl time.Duration) Repository {
	return &memoryRepository{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}
}

func (r *memoryRepository) Create(ctx context.Context, state *State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[state.ID]; exists {
		return fmt.Errorf("session %s already exists", state.ID)
	}

	r.sessions[state.ID] = entry{state: *state, expiresAt: time.Now().Add(r.ttl)}
	r.sweepLocked()
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*State, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}

	state := e.state
	return &state, nil
}

func (r *memoryRepository) Update(ctx context.Context, state *State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[state.ID]
	if !ok || time.Now().After(e.expiresAt) {
		return ErrNotFound
	}

	// Touch the TTL on every update; an active visitor never expires.
	r.sessions[state.ID] = entry{state: *state, expiresAt: time.Now().Add(r.ttl)}
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// sweepLocked drops expired sessions. Called opportunistically on create so
// the map cannot grow without bound; callers must hold the write lock.
func (r *memoryRepository) sweepLocked() {
	now := time.Now()
	for id, e := range r.sessions {
		if now.After(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
