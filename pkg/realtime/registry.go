package realtime

import "sync"

// Session pairs one session's state with the broadcaster its watchers use.
type Session[T any] struct {
	Code  string
	State T
	hub   *Broadcaster
}

// Registry is a process-wide, code-keyed map of sessions. It is constructed
// once at startup and shared by reference with the request handlers; entries
// are never evicted. Mutating the state itself is the caller's business
// (each state value carries its own lock), the registry only guards the map.
type Registry[T any] struct {
	mu       sync.RWMutex
	sessions map[string]*Session[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{sessions: make(map[string]*Session[T])}
}

// Create adds a session under code with a fresh broadcaster.
func (r *Registry[T]) Create(code string, state T) *Session[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session[T]{Code: code, State: state, hub: NewBroadcaster()}
	r.sessions[code] = s
	return s
}

// Get returns the session for code if it exists.
func (r *Registry[T]) Get(code string) (*Session[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[code]
	return s, ok
}

// Broadcaster returns the hub for code, or nil when the session is unknown.
func (r *Registry[T]) Broadcaster(code string) *Broadcaster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[code]
	if !ok {
		return nil
	}
	return s.hub
}

// Publish notifies subscribers of the session's broadcaster. Unknown codes
// are ignored.
func (r *Registry[T]) Publish(code string, event string) {
	hub := r.Broadcaster(code)
	if hub != nil {
		hub.Publish(event)
	}
}
