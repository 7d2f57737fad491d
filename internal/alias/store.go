package alias

import (
	"time"

	"aliasgame/pkg/realtime"
)

// Store is the process-wide session registry. It wraps realtime.Registry so
// every session gets its own SSE broadcaster; sessions live until the
// process exits. Constructed once at startup and handed to the transport by
// reference.
type Store struct {
	sessions    *realtime.Registry[*Game]
	roundLength time.Duration
}

// NewStore creates an empty store. roundLength <= 0 means DefaultRoundLength.
func NewStore(roundLength time.Duration) *Store {
	if roundLength <= 0 {
		roundLength = DefaultRoundLength
	}
	return &Store{
		sessions:    realtime.NewRegistry[*Game](),
		roundLength: roundLength,
	}
}

// CreateGame builds a session and registers it under its code.
func (s *Store) CreateGame(teamCount, winCount int, words []string, packName string) (*Game, error) {
	g, err := NewGame(teamCount, winCount, words, packName)
	if err != nil {
		return nil, err
	}
	g.RoundLength = s.roundLength
	s.sessions.Create(g.Code, g)
	return g, nil
}

// GetGame returns a session by code if it exists.
func (s *Store) GetGame(code string) (*Game, bool) {
	session, ok := s.sessions.Get(code)
	if !ok {
		return nil, false
	}
	return session.State, true
}

// Broadcaster returns the session's SSE hub, or nil for unknown codes.
func (s *Store) Broadcaster(code string) *realtime.Broadcaster {
	return s.sessions.Broadcaster(code)
}

// Publish notifies the session's subscribers that its state changed.
func (s *Store) Publish(code string, event string) {
	s.sessions.Publish(code, event)
}
