package core

import "github.com/google/uuid"

// AuthState is the per-session authentication state machine. The only
// transition is Unauthenticated -> Authenticated; it lasts until the
// session is deregistered.
type AuthState int

const (
	// Unauthenticated is the state every new session starts in.
	Unauthenticated AuthState = iota
	// Authenticated is entered on a successful AUTHENTICATE command.
	Authenticated
)

// Session is the server-side record of one live connection.
type Session struct {
	Client *Client
	ID     string
	state  AuthState
}

// Authenticated reports whether the session has presented the admin secret.
func (s *Session) Authenticated() bool {
	return s.state == Authenticated
}

// Registry tracks all live sessions, keyed by client. It is owned by
// the hub goroutine, same as the board.
type Registry struct {
	sessions map[*Client]*Session
}

// NewRegistry constructs an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[*Client]*Session)}
}

// Register creates an unauthenticated session for the client.
func (r *Registry) Register(c *Client) *Session {
	s := &Session{
		Client: c,
		ID:     uuid.NewString(),
		state:  Unauthenticated,
	}
	r.sessions[c] = s
	return s
}

// Deregister removes the client's session, reporting whether one
// existed. Idempotent.
func (r *Registry) Deregister(c *Client) bool {
	if _, ok := r.sessions[c]; !ok {
		return false
	}
	delete(r.sessions, c)
	return true
}

// SetAuthenticated flips the client's session to Authenticated.
// No-op when the client is unknown.
func (r *Registry) SetAuthenticated(c *Client) {
	if s, ok := r.sessions[c]; ok {
		s.state = Authenticated
	}
}

// IsAuthenticated reports the client's session state; false when unknown.
func (r *Registry) IsAuthenticated(c *Client) bool {
	s, ok := r.sessions[c]
	return ok && s.Authenticated()
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	return len(r.sessions)
}

// AuthenticatedCount returns the number of authenticated live sessions.
func (r *Registry) AuthenticatedCount() int {
	n := 0
	for _, s := range r.sessions {
		if s.Authenticated() {
			n++
		}
	}
	return n
}

// All returns the live sessions for broadcast iteration.
func (r *Registry) All() []*Session {
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}
