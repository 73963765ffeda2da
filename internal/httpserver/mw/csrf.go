package mw

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/utils"
)

const (
	CSRFCookieName = "devdocs_csrf"
	CSRFFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"

	csrfTokenBytes = 16
	maxCSRFForm    = 4 << 10
)

type csrfKey struct{}

// CSRF issues a double-submit token cookie and requires unsafe requests to
// echo it in the csrf_token form field or the X-CSRF-Token header.
func CSRF(secure bool, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := csrfCookie(r)
			if !fromCookie {
				token = newCSRFToken()
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if !isSafeMethod(r.Method) {
				r.Body = http.MaxBytesReader(w, r.Body, maxCSRFForm)
				sent := r.Header.Get(csrfHeader)
				if sent == "" {
					sent = r.PostFormValue(CSRFFormField)
				}
				if !fromCookie || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					log.Debug("csrf token rejected",
						logger.String("method", r.Method),
						logger.String("path", r.URL.Path),
						logger.String("remote_ip", utils.ClientIP(r, false)),
						logger.Bool("cookie", fromCookie))
					http.Error(w, "invalid CSRF token", http.StatusForbidden)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfKey{}, token)))
		})
	}
}

// CSRFToken returns the token CSRF attached to r, or "" outside it.
func CSRFToken(r *http.Request) string {
	token, _ := r.Context().Value(csrfKey{}).(string)
	return token
}

func csrfCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(CSRFCookieName)
	if err != nil || !validCSRFToken(c.Value) {
		return "", false
	}
	return c.Value, true
}

func validCSRFToken(s string) bool {
	if len(s) != 2*csrfTokenBytes {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func newCSRFToken() string {
	return hex.EncodeToString(securecookie.GenerateRandomKey(csrfTokenBytes))
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
