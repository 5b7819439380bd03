package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/classic-mines/internal/metrics"
	"github.com/vancomm/classic-mines/internal/mines"
)

var Log = logrus.New()

var ErrNotFound = errors.New("session not found")

// Store keeps game sessions in memory. Sessions idle for longer than ttl are
// dropped by [Store.Sweep]. Stores add and remove their own sessions from
// the process-wide [metrics.ActiveSessions] gauge.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	opts     []mines.Option
	now      func() time.Time
}

func NewStore(ttl time.Duration, opts ...mines.Option) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *Store) Create() *Session {
	now := s.now().UTC()
	session := &Session{
		Id:         uuid.New(),
		StartedAt:  now,
		touchedAt:  now,
		controller: mines.NewController(s.opts...),
		now:        s.now,
	}

	s.mu.Lock()
	s.sessions[session.Id] = session
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()
	Log.WithField("id", session.Id).Debug("session created")
	return session
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Deletes id from store. Deleting an unknown id is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		metrics.ActiveSessions.Dec()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions last touched before now - ttl and returns how many
// were dropped.
func (s *Store) Sweep(now time.Time) (dropped int) {
	deadline := now.Add(-s.ttl)

	s.mu.Lock()
	for id, session := range s.sessions {
		if session.TouchedAt().Before(deadline) {
			delete(s.sessions, id)
			dropped++
		}
	}
	s.mu.Unlock()

	metrics.ActiveSessions.Sub(float64(dropped))
	return
}

// Run sweeps the store every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			if dropped := s.Sweep(t); dropped > 0 {
				Log.WithFields(logrus.Fields{
					"dropped": dropped,
					"left":    s.Len(),
				}).Info("swept idle sessions")
			}
		}
	}
}
