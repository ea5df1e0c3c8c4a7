package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
)

const defaultSweepInterval = time.Minute

type memoryEntry struct {
	session   domain.SettlementSession
	expiresAt time.Time
}

// MemoryStore implements SessionStore using an in-memory map.
// This is suitable for single-instance deployments and testing.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory store and starts a goroutine that drops
// expired sessions every sweepInterval (a minute when zero).
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	store := &MemoryStore{
		entries:  make(map[string]memoryEntry),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.sweepLoop(sweepInterval)

	return store
}

// GetSession returns a copy of the stored session.
func (s *MemoryStore) GetSession(ctx context.Context, sessionID string) (*domain.SettlementSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[sessionID]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, fmt.Errorf("%w: settlement session %s", apperrors.ErrNotFound, sessionID)
	}
	session := e.session
	session.State = e.session.State.Clone()
	return &session, nil
}

// SaveSession stores a copy of session for ttl if its version follows the stored one.
func (s *MemoryStore) SaveSession(ctx context.Context, session domain.SettlementSession, ttl time.Duration) error {
	session.State = session.State.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	var stored *domain.SettlementSession
	if e, ok := s.entries[session.SessionID]; ok && s.now().Before(e.expiresAt) {
		stored = &e.session
	}
	if err := checkVersion(session, stored); err != nil {
		return err
	}
	s.entries[session.SessionID] = memoryEntry{
		session:   session,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// DeleteSession removes a session. Deleting an unknown session is not an error.
func (s *MemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// Len returns the number of stored sessions, expired ones included until the next sweep.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the sweep goroutine. Safe to call multiple times.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

var _ portsrepo.SessionStore = (*MemoryStore)(nil)
