package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/field-service/internal/domain"
)

// Authentication failure taxonomy. Unknown email, wrong password and
// inactive account all surface as ErrInvalidCredentials so responses never
// reveal which one it was.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// CredentialStore is the read-side lookup the authenticator needs.
// Lookups report absence with pgx.ErrNoRows.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator verifies email+password credentials against the store.
type Authenticator struct {
	store  CredentialStore
	logger *zap.Logger
}

// NewAuthenticator builds an authenticator.
func NewAuthenticator(store CredentialStore, logger *zap.Logger) *Authenticator {
	return &Authenticator{store: store, logger: logger}
}

// Authenticate looks up the normalized email, checks the active flag and
// verifies the password hash. The returned identity carries the role name
// lowercased regardless of how the store cased it.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.logger.Debug("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !user.Active {
		a.logger.Info("login attempt for inactive account", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		a.logger.Debug("password mismatch", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		SubjectID: user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      strings.ToLower(user.RoleName),
	}, nil
}
