package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r = r.With(mw.CSRF(d.Sessions.CookieSecure(), d.Logger))

	// GET /login is a table route; bound here so chi does not answer 405.
	r.Get("/login", handlers.Pages(d))

	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.LoginBurst,
		RefillPerIPPerMin: d.LoginRefillPerMin,
		MaxEntries:        10_000,
		TrustProxy:        d.TrustProxy,
		OnLimit: func(*http.Request) {
			if d.Metrics != nil {
				d.Metrics.LoginsTotal.WithLabelValues("limited").Inc()
			}
		},
	})).Post("/login", handlers.Login(d))

	r.Post("/logout", handlers.Logout(d))
}
