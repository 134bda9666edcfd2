package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Decode failure taxonomy. Absence of a token is a caller-visible state of
// its own, never folded into ErrTokenInvalid.
var (
	ErrNoToken      = errors.New("no session token")
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

// SessionIssuer signs and verifies session tokens. Decode is a pure function
// of (token, current time, secret); it performs no I/O and is safe to run on
// every request.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionIssuer builds an issuer. An empty secret is a startup error, not
// a per-call one.
func NewSessionIssuer(secret string, ttl time.Duration) (*SessionIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret not configured")
	}
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// SessionClaims describes the JWT payload.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue serializes the claim plus issued-at and expiry into a signed token.
func (si *SessionIssuer) Issue(claim Claim) (string, time.Time, error) {
	issuedAt := si.now()
	expiresAt := issuedAt.Add(si.ttl)
	claims := &SessionClaims{
		Role: claim.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.SubjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(si.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Decode verifies signature and expiry and returns the embedded claim.
// A token presented exactly at its expiry instant is expired.
func (si *SessionIssuer) Decode(tokenStr string) (*Claim, error) {
	if tokenStr == "" {
		return nil, ErrNoToken
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return si.secret, nil
		},
		jwt.WithTimeFunc(si.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return &Claim{SubjectID: claims.Subject, Role: claims.Role}, nil
}

// TTL reports the configured session lifetime.
func (si *SessionIssuer) TTL() time.Duration {
	return si.ttl
}
