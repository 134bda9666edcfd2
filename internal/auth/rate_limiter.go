package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTooManyAttempts signals the login throttle tripped for an email.
var ErrTooManyAttempts = errors.New("too many login attempts")

// LoginLimiter throttles login attempts per normalized email over a fixed
// Redis-backed window. It is best-effort: a Redis outage never blocks logins.
type LoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginLimiter builds a limiter. A nil client disables throttling.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginLimiter{client: client, max: maxAttempts, window: window}
}

// Check records an attempt and reports whether the caller exceeded the window.
func (l *LoginLimiter) Check(ctx context.Context, email string) error {
	if l == nil || l.client == nil {
		return nil
	}
	key := attemptKey(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	if count > int64(l.max) {
		return ErrTooManyAttempts
	}
	return nil
}

// Reset clears the window after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, attemptKey(email))
}

func attemptKey(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}
