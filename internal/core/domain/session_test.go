package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func TestSession_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *domain.Session)
		event     domain.SessionEvent
		clientID  string
		wantState domain.SessionState
		wantErr   error
	}{
		{
			name:      "anonymous_login_client",
			event:     domain.EventLoginClient,
			clientID:  "C1",
			wantState: domain.StateClient,
		},
		{
			name:      "anonymous_login_clerk",
			event:     domain.EventLoginClerk,
			wantState: domain.StateClerk,
		},
		{
			name:      "anonymous_login_manager",
			event:     domain.EventLoginManager,
			wantState: domain.StateManager,
		},
		{
			name:      "anonymous_logout_rejected",
			event:     domain.EventLogout,
			wantState: domain.StateAnonymous,
			wantErr:   domain.ErrInvalidTransition,
		},
		{
			name:      "anonymous_become_clerk_rejected",
			event:     domain.EventBecomeClerk,
			wantState: domain.StateAnonymous,
			wantErr:   domain.ErrInvalidTransition,
		},
		{
			name:      "login_client_without_id_rejected",
			event:     domain.EventLoginClient,
			wantState: domain.StateAnonymous,
			wantErr:   domain.ErrClientRequired,
		},
		{
			name: "clerk_become_client",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginClerk, "")
			},
			event:     domain.EventBecomeClient,
			clientID:  "C2",
			wantState: domain.StateClient,
		},
		{
			name: "clerk_become_client_without_id_rejected",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginClerk, "")
			},
			event:     domain.EventBecomeClient,
			wantState: domain.StateClerk,
			wantErr:   domain.ErrClientRequired,
		},
		{
			name: "clerk_login_manager_rejected",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginClerk, "")
			},
			event:     domain.EventLoginManager,
			wantState: domain.StateClerk,
			wantErr:   domain.ErrInvalidTransition,
		},
		{
			name: "manager_become_clerk",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginManager, "")
			},
			event:     domain.EventBecomeClerk,
			wantState: domain.StateClerk,
		},
		{
			name: "manager_become_client_rejected",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginManager, "")
			},
			event:     domain.EventBecomeClient,
			clientID:  "C1",
			wantState: domain.StateManager,
			wantErr:   domain.ErrInvalidTransition,
		},
		{
			name: "client_login_clerk_rejected",
			setup: func(s *domain.Session) {
				mustDispatch(t, s, domain.EventLoginClient, "C1")
			},
			event:     domain.EventLoginClerk,
			wantState: domain.StateClient,
			wantErr:   domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSession()
			if tt.setup != nil {
				tt.setup(s)
			}

			got, err := s.Dispatch(tt.event, tt.clientID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, got)
			assert.Equal(t, tt.wantState, s.State())
		})
	}
}

// A client session entered from a clerk session must return to the
// clerk session on logout, and the clerk session then logs out to
// anonymous.
func TestSession_ClerkClientRoundTrip(t *testing.T) {
	s := domain.NewSession()

	mustDispatch(t, s, domain.EventLoginClerk, "")
	mustDispatch(t, s, domain.EventBecomeClient, "C1")
	assert.Equal(t, "C1", s.ClientID())

	got, err := s.Dispatch(domain.EventLogout, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StateClerk, got)
	assert.Empty(t, s.ClientID())

	got, err = s.Dispatch(domain.EventLogout, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnonymous, got)
}

// A directly entered client session logs out straight to anonymous.
func TestSession_DirectClientRoundTrip(t *testing.T) {
	s := domain.NewSession()

	mustDispatch(t, s, domain.EventLoginClient, "C1")
	assert.Equal(t, "C1", s.ClientID())

	got, err := s.Dispatch(domain.EventLogout, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnonymous, got)
	assert.Empty(t, s.ClientID())
}

// The origin recorded for a client session must not leak into the next
// one: after a clerk round trip, a direct client login still logs out
// to anonymous.
func TestSession_OriginResetBetweenClientSessions(t *testing.T) {
	s := domain.NewSession()

	mustDispatch(t, s, domain.EventLoginClerk, "")
	mustDispatch(t, s, domain.EventBecomeClient, "C1")
	mustDispatch(t, s, domain.EventLogout, "")
	mustDispatch(t, s, domain.EventLogout, "")

	mustDispatch(t, s, domain.EventLoginClient, "C2")
	got, err := s.Dispatch(domain.EventLogout, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAnonymous, got)
}

func mustDispatch(t *testing.T, s *domain.Session, event domain.SessionEvent, clientID string) {
	t.Helper()
	_, err := s.Dispatch(event, clientID)
	require.NoError(t, err)
}
