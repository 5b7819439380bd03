package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/classic-mines/internal/metrics"
	"github.com/vancomm/classic-mines/internal/mines"
)

// Session is one player's game. Intents are serialised by mu, so a
// snapshot taken after Apply returns always reflects every applied intent.
type Session struct {
	Id        uuid.UUID
	StartedAt time.Time

	mu         sync.Mutex
	touchedAt  time.Time
	controller *mines.Controller
	now        func() time.Time
}

type Snapshot struct {
	Id        uuid.UUID
	Geometry  mines.Geometry
	Grid      mines.Grid
	GameOver  bool
	Changed   bool
	StartedAt time.Time
}

// Apply feeds intents to the controller in order and returns the board as
// it stands afterwards. Changed is set if any intent altered the board.
//
// panics [mines.IndexError]
func (s *Session) Apply(intents ...mines.Intent) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = s.now().UTC()

	changed := false
	for _, in := range intents {
		over := s.controller.GameOver()
		action := in.Action.String()
		if s.controller.Apply(in) {
			changed = true
			metrics.Intents.WithLabelValues(action).Inc()
		} else {
			metrics.IgnoredIntents.WithLabelValues(action).Inc()
		}
		if !over && s.controller.GameOver() {
			metrics.GamesLost.Inc()
			Log.WithField("id", s.Id).Debug("game lost")
		}
	}
	return s.snapshot(changed)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(false)
}

func (s *Session) snapshot(changed bool) Snapshot {
	return Snapshot{
		Id:        s.Id,
		Geometry:  s.controller.Geometry(),
		Grid:      s.controller.Grid(),
		GameOver:  s.controller.GameOver(),
		Changed:   changed,
		StartedAt: s.StartedAt,
	}
}

func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
