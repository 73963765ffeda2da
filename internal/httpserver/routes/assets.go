package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/handlers"
)

func init() { Register(registerAssets) }

func registerAssets(r chi.Router, d deps.Deps) {
	r.Method(http.MethodGet, "/assets/*", d.Renderer.Assets().Handler(handlers.NotFound(d)))
}
