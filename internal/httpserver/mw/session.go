package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

// Session attaches the visitor's session, if any, to the request context.
// A failing store is logged and the request continues anonymously.
func Session(mgr *session.Manager, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok, err := mgr.Load(r)
			if err != nil {
				log.Warn("session lookup failed", logger.Error(err))
			}
			if ok {
				r = r.WithContext(session.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}
