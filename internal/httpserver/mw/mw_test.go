package mw

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

var noContent = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limited := 0
	h := RateLimit(RateLimitConfig{
		Burst:             2,
		RefillPerIPPerMin: 1,
		Now:               func() time.Time { return now },
		OnLimit:           func(*http.Request) { limited++ },
	})(noContent)

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusNoContent, send("1.1.1.1:1").Code)
	require.Equal(t, http.StatusNoContent, send("1.1.1.1:2").Code)

	rec := send("1.1.1.1:3")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, 1, limited)

	// Other clients have their own bucket.
	require.Equal(t, http.StatusNoContent, send("2.2.2.2:1").Code)

	now = now.Add(time.Minute)
	require.Equal(t, http.StatusNoContent, send("1.1.1.1:4").Code)
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"docs.example.com", "*.preview.example.com"}, logger.Nop())(noContent)

	tests := []struct {
		host string
		want int
	}{
		{"docs.example.com", http.StatusNoContent},
		{"DOCS.example.com:8080", http.StatusNoContent},
		{"pr-12.preview.example.com", http.StatusNoContent},
		{"preview.example.com", http.StatusMisdirectedRequest},
		{"evil.com", http.StatusMisdirectedRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = tt.host
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tt.want, rec.Code, tt.host)
	}
}

func TestEnforceHostPassthrough(t *testing.T) {
	h := EnforceHost([]string{" "}, logger.Nop())(noContent)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "anything"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, logger.Nop())(noContent)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	req.RemoteAddr = "10.1.1.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req.RemoteAddr = "8.8.8.8:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionMiddleware(t *testing.T) {
	mgr, err := session.NewManager(session.Config{HashKey: session.GenerateKey()}, session.NewMemoryStore(nil))
	require.NoError(t, err)

	login := httptest.NewRecorder()
	_, err = mgr.Start(httptest.NewRequest(http.MethodPost, "/login", nil).Context(), login, "ada@example.com", "Ada")
	require.NoError(t, err)
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)

	var got session.Session
	var found bool
	h := Session(mgr, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = session.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, found)
	require.Equal(t, "Ada", got.Name())

	found = false
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, found)
}

func TestCSRF(t *testing.T) {
	var seen string
	h := CSRF(true, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CSRFToken(r)
		w.WriteHeader(http.StatusNoContent)
	}))
	token := strings.Repeat("ab", 16)

	t.Run("get issues cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, CSRFCookieName, cookies[0].Name)
		require.True(t, cookies[0].Secure)
		require.Len(t, cookies[0].Value, 32)
		require.Equal(t, cookies[0].Value, seen)
	})

	t.Run("valid cookie is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Empty(t, rec.Result().Cookies())
		require.Equal(t, token, seen)
	})

	tests := []struct {
		name   string
		cookie string
		field  string
		header string
		want   int
	}{
		{name: "form field matches", cookie: token, field: token, want: http.StatusNoContent},
		{name: "header matches", cookie: token, header: token, want: http.StatusNoContent},
		{name: "missing field", cookie: token, want: http.StatusForbidden},
		{name: "mismatch", cookie: token, field: strings.Repeat("cd", 16), want: http.StatusForbidden},
		{name: "no cookie", field: token, want: http.StatusForbidden},
		{name: "malformed cookie", cookie: "short", field: "short", want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			if tt.field != "" {
				form.Set(CSRFFormField, tt.field)
			}
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.header != "" {
				req.Header.Set("X-CSRF-Token", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
