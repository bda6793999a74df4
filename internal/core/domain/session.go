// internal/core/domain/session.go
package domain

import "fmt"

// SessionState identifies the current role of an interactive session.
type SessionState string

const (
	// StateAnonymous is the initial, logged-out state.
	StateAnonymous SessionState = "anonymous"
	// StateClient is an active client session with an attached client id.
	StateClient SessionState = "client"
	// StateClerk is an active clerk session.
	StateClerk SessionState = "clerk"
	// StateManager is an active manager session.
	StateManager SessionState = "manager"
)

// SessionEvent drives transitions between session states.
type SessionEvent string

const (
	EventLoginClient  SessionEvent = "login_client"
	EventLoginClerk   SessionEvent = "login_clerk"
	EventLoginManager SessionEvent = "login_manager"
	EventBecomeClient SessionEvent = "become_client"
	EventBecomeClerk  SessionEvent = "become_clerk"
	EventLogout       SessionEvent = "logout"
)

// transitions is the deterministic (state, event) table. Logout from a
// client session is absent here: it is routed by the session's entry
// origin instead.
var transitions = map[SessionState]map[SessionEvent]SessionState{
	StateAnonymous: {
		EventLoginClient:  StateClient,
		EventLoginClerk:   StateClerk,
		EventLoginManager: StateManager,
	},
	StateClient: {},
	StateClerk: {
		EventBecomeClient: StateClient,
		EventLogout:       StateAnonymous,
	},
	StateManager: {
		EventBecomeClerk: StateClerk,
		EventLogout:      StateAnonymous,
	},
}

// Session is the finite-state machine gating which warehouse operations
// a caller may invoke. It carries the acting client identity and the
// state a client session was entered from, so logging out of a client
// session returns to the correct caller (anonymous for a direct login,
// clerk when entered via "become client").
type Session struct {
	state    SessionState
	clientID string
	origin   SessionState
}

// NewSession returns a session in the anonymous state.
func NewSession() *Session {
	return &Session{state: StateAnonymous, origin: StateAnonymous}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// ClientID returns the acting client identifier, empty outside client
// sessions.
func (s *Session) ClientID() string {
	return s.clientID
}

// Dispatch applies event to the session. Events entering a client
// session (login as client, become client) require a resolved client
// identifier; the caller validates the identifier against the store
// before dispatching. A rejected event leaves the session untouched and
// returns ErrInvalidTransition.
func (s *Session) Dispatch(event SessionEvent, clientID string) (SessionState, error) {
	if event == EventLogout && s.state == StateClient {
		next := s.origin
		if next != StateClerk {
			next = StateAnonymous
		}
		s.state = next
		s.clientID = ""
		s.origin = StateAnonymous
		return s.state, nil
	}

	next, ok := transitions[s.state][event]
	if !ok {
		return s.state, fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event, s.state)
	}

	if next == StateClient {
		if clientID == "" {
			return s.state, fmt.Errorf("%s: %w", event, ErrClientRequired)
		}
		s.origin = s.state
		s.clientID = clientID
	}
	s.state = next
	return s.state, nil
}
