package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/field-service/internal/domain"
)

type stubCredentialStore struct {
	users map[string]*domain.User
	err   error
}

func (s *stubCredentialStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func storeWith(t *testing.T, password string, user domain.User) *stubCredentialStore {
	t.Helper()
	hash, err := HashPassword(password, 4)
	require.NoError(t, err)
	user.PasswordHash = hash
	return &stubCredentialStore{users: map[string]*domain.User{strings.ToLower(user.Email): &user}}
}

func TestAuthenticateSuccessLowercasesRole(t *testing.T) {
	store := storeWith(t, "s3cret", domain.User{
		ID:       "user-1",
		Name:     "Ana",
		Email:    "ana@example.com",
		RoleName: "Secretaria",
		Active:   true,
	})
	a := NewAuthenticator(store, zap.NewNop())

	identity, err := a.Authenticate(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.SubjectID)
	assert.Equal(t, "secretaria", identity.Role)
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	store := storeWith(t, "s3cret", domain.User{
		ID:       "user-1",
		Email:    "ana@example.com",
		RoleName: "admin",
		Active:   true,
	})
	a := NewAuthenticator(store, zap.NewNop())

	identity, err := a.Authenticate(context.Background(), "  ANA@Example.COM ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.SubjectID)
}

func TestAuthenticateFailures(t *testing.T) {
	store := storeWith(t, "s3cret", domain.User{
		ID:       "user-1",
		Email:    "ana@example.com",
		RoleName: "admin",
		Active:   true,
	})
	inactive := storeWith(t, "s3cret", domain.User{
		ID:       "user-2",
		Email:    "bob@example.com",
		RoleName: "tecnico",
		Active:   false,
	})
	a := NewAuthenticator(store, zap.NewNop())

	tests := []struct {
		name          string
		authenticator *Authenticator
		email         string
		password      string
	}{
		{"unknown email", a, "nobody@example.com", "s3cret"},
		{"wrong password", a, "ana@example.com", "wrong"},
		{"inactive account with correct password", NewAuthenticator(inactive, zap.NewNop()), "bob@example.com", "s3cret"},
		{"empty email", a, "", "s3cret"},
		{"empty password", a, "ana@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.authenticator.Authenticate(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticateStoreUnavailable(t *testing.T) {
	store := &stubCredentialStore{err: errors.New("connection refused")}
	a := NewAuthenticator(store, zap.NewNop())

	_, err := a.Authenticate(context.Background(), "ana@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
