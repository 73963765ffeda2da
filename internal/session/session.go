package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by a Store when no live session has the id.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidConfig indicates the manager was built with missing or invalid options.
	ErrInvalidConfig = errors.New("session: invalid config")
	// ErrInvalidUser is returned when sign-in details are unusable.
	ErrInvalidUser = errors.New("session: invalid user")
)

// Session is a signed-in visitor.
type Session struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Name is what the header shows for the visitor.
func (s Session) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// Store persists sessions by id.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Counter is implemented by stores that can report how many sessions they hold.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Sweeper is implemented by stores that need periodic cleanup.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type ctxKey struct{}

// WithSession stores s on ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the current session, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// NormalizeUser trims and validates sign-in details. The email must
// contain a single @ with text on both sides; the display name is optional
// and capped at 64 runes.
func NormalizeUser(email, displayName string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.Join(strings.Fields(displayName), " ")

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") || len(email) > 254 {
		return "", "", ErrInvalidUser
	}
	if strings.ContainsAny(email, " \t\r\n<>\"") {
		return "", "", ErrInvalidUser
	}
	if r := []rune(displayName); len(r) > 64 {
		displayName = string(r[:64])
	}
	return email, displayName, nil
}

// newID returns a random (version 4) UUID. The cookie carrying it is
// signed, so the id only has to be unguessable.
func newID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
