package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	defaultCookieName = "devdocs_session"
	defaultCookiePath = "/"
	defaultTTL        = 720 * time.Hour
)

// Config controls cookie encoding and session lifetime.
type Config struct {
	CookieName   string
	HashKey      []byte
	BlockKey     []byte
	CookieSecure bool
	TTL          time.Duration
	Now          func() time.Time
}

// Manager ties the signed cookie carrying a session id to a Store.
type Manager struct {
	cfg   Config
	codec *securecookie.SecureCookie
	store Store
	now   func() time.Time
}

// NewManager validates cfg and returns a Manager backed by store.
func NewManager(cfg Config, store Store) (*Manager, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("%w: hash key is required", ErrInvalidConfig)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	codec := securecookie.New(cfg.HashKey, cfg.BlockKey)
	codec.MaxAge(int(cfg.TTL.Seconds()))

	return &Manager{cfg: cfg, codec: codec, store: store, now: now}, nil
}

// GenerateKey returns a random key for dev mode.
func GenerateKey() []byte {
	return securecookie.GenerateRandomKey(32)
}

// CookieSecure reports whether cookies are marked Secure.
func (m *Manager) CookieSecure() bool { return m.cfg.CookieSecure }

// Store returns the backing store.
func (m *Manager) Store() Store { return m.store }


// Load returns the session referenced by the request cookie. A missing,
// tampered or expired cookie yields ok=false and no error; only store
// failures are reported.
func (m *Manager) Load(r *http.Request) (Session, bool, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return Session{}, false, nil
	}

	var id string
	if err := m.codec.Decode(m.cfg.CookieName, cookie.Value, &id); err != nil {
		return Session{}, false, nil
	}

	s, err := m.store.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("load session: %w", err)
	}
	if s.Expired(m.now()) {
		return Session{}, false, nil
	}
	return s, true, nil
}

// Start creates a session for the user and sets the cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, email, displayName string) (Session, error) {
	email, displayName, err := NormalizeUser(email, displayName)
	if err != nil {
		return Session{}, err
	}

	id, err := newID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := m.now().UTC()
	s := Session{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.cfg.TTL),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	encoded, err := m.codec.Encode(m.cfg.CookieName, s.ID)
	if err != nil {
		return Session{}, fmt.Errorf("encode session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    encoded,
		Path:     defaultCookiePath,
		Secure:   m.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.ExpiresAt,
		MaxAge:   int(m.cfg.TTL.Seconds()),
	})
	return s, nil
}

// End deletes the request's session, if any, and clears the cookie.
func (m *Manager) End(w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, m.expiredCookie())

	s, ok, err := m.Load(r)
	if err != nil || !ok {
		return err
	}
	if err := m.store.Delete(r.Context(), s.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (m *Manager) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     defaultCookiePath,
		Secure:   m.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
}
