// Package database keeps generated itineraries for the lifetime of a session.
// Nothing here is durable: entries expire after the configured TTL.
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripplanner/services"
)

var ErrSessionNotFound = errors.New("SESSION_NOT_FOUND")

// ─── Models ──────────────────────────────────────────────────────────────────

// Session is one generated itinerary plus the figures shown next to it.
type Session struct {
	ID              string              `json:"id"`
	Itinerary       *services.Itinerary `json:"itinerary"`
	TotalCost       float64             `json:"total_cost"`
	RemainingBudget float64             `json:"remaining_budget"`
	PDFData         []byte              `json:"pdf_data,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// NewSession assigns an id and computes the cost summary.
func NewSession(it *services.Itinerary) *Session {
	return &Session{
		ID:              uuid.New().String(),
		Itinerary:       it,
		TotalCost:       services.TotalCost(it),
		RemainingBudget: services.RemainingBudget(it),
		CreatedAt:       time.Now().UTC(),
	}
}

// Store holds sessions by id.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Ping(ctx context.Context) error
}

// ─── Memory ──────────────────────────────────────────────────────────────────

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore is the default Store. Expired sessions are dropped lazily on
// access and on each Save.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("session without id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || m.expired(e, m.now()) {
		return nil, ErrSessionNotFound
	}
	return e.session, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) expired(e memoryEntry, now time.Time) bool {
	return m.ttl > 0 && now.After(e.expiresAt)
}
