package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/mw"
)

func init() { Register(registerPages) }

// Every other GET is dispatched through the site route table, which owns
// the not-found fallback.
func registerPages(r chi.Router, d deps.Deps) {
	pages := r.With(mw.CSRF(d.Sessions.CookieSecure(), d.Logger))
	pages.Get("/", handlers.Pages(d))
	pages.Get("/*", handlers.Pages(d))
}
