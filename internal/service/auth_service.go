package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/events"
)

// AuthService coordinates the login flow: throttle check, credential
// verification, session issuance.
type AuthService struct {
	authenticator *auth.Authenticator
	sessions      *auth.SessionIssuer
	limiter       *auth.LoginLimiter
	dispatcher    events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(authenticator *auth.Authenticator, sessions *auth.SessionIssuer, limiter *auth.LoginLimiter, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		sessions:      sessions,
		limiter:       limiter,
		dispatcher:    dispatcher,
	}
}

// Login authenticates credentials and issues a session token. Throttle and
// credential failures pass through untouched so the handler can pick the
// right status code.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Identity, string, time.Time, error) {
	if err := s.limiter.Check(ctx, email); err != nil {
		return nil, "", time.Time{}, err
	}

	identity, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.sessions.Issue(identity.Claim())
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.limiter.Reset(ctx, email)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserLoggedIn,
			SubjectID: identity.SubjectID,
			Timestamp: time.Now(),
			Payload:   events.UserLoggedInPayload{Role: identity.Role},
		})
	}

	return identity, token, expiresAt, nil
}

// SessionTTL exposes the session lifetime for cookie attributes.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}
