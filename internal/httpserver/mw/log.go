package mw

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
)

// Log writes one access line per request. Page requests are labelled with
// the site route pattern that served them, other requests with the chi
// pattern.
func Log(loggerClient logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			route := &routeRecorder{}

			next.ServeHTTP(ww, r.WithContext(withRouteRecorder(r.Context(), route)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			pattern := route.pattern
			if pattern == "" {
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					pattern = rctx.RoutePattern()
				}
			}

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", pattern),
				logger.Int("status", status),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
				logger.String("remote_ip", r.RemoteAddr),
				logger.String("user_agent", r.UserAgent()),
				logger.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				loggerClient.Warn("http_request", fields...)
				return
			}
			loggerClient.Info("http_request", fields...)
		})
	}
}

// RecordRoute lets the page dispatcher report the site route it resolved.
func RecordRoute(r *http.Request, m routing.Match) {
	if rec, ok := r.Context().Value(routeRecorderKey{}).(*routeRecorder); ok {
		rec.pattern = m.Route.Pattern
	}
}
