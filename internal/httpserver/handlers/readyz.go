package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

const readyPingTimeout = 2 * time.Second

type componentStatus struct {
	OK    bool   `json:"ok"`
	Count *int   `json:"count,omitempty"`
	Mode  string `json:"mode,omitempty"`
	Error string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports whether the route table, article library and session
// store can serve traffic. Any failing component yields 503.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"routes":   checkRoutes(d),
			"articles": checkArticles(d),
			"sessions": checkSessions(r.Context(), d),
		}

		ready := true
		for _, c := range components {
			if !c.OK {
				ready = false
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: ready, Components: components})
	}
}

func checkRoutes(d deps.Deps) componentStatus {
	if d.Routes == nil {
		return componentStatus{Error: "route table not initialized"}
	}
	n := len(d.Routes.Routes())
	return componentStatus{OK: n > 0, Count: &n}
}

func checkArticles(d deps.Deps) componentStatus {
	if d.Library == nil || d.Routes == nil {
		return componentStatus{Error: "article library not initialized"}
	}
	n := d.Library.Len()
	slugs := make([]string, 0, n)
	for _, p := range d.Routes.PagePatterns(routing.PageArticle) {
		slugs = append(slugs, routing.ArticleSlug(p))
	}
	if err := d.Library.Require(slugs...); err != nil {
		return componentStatus{Count: &n, Error: err.Error()}
	}
	return componentStatus{OK: true, Count: &n}
}

func checkSessions(ctx context.Context, d deps.Deps) componentStatus {
	if d.Sessions == nil {
		return componentStatus{Error: "session manager not initialized"}
	}

	ctx, cancel := context.WithTimeout(ctx, readyPingTimeout)
	defer cancel()

	store := d.Sessions.Store()
	mode := storeMode(d)
	if err := store.Ping(ctx); err != nil {
		return componentStatus{Mode: mode, Error: err.Error()}
	}

	status := componentStatus{OK: true, Mode: mode}
	if c, ok := store.(session.Counter); ok {
		n, err := c.Count(ctx)
		if err != nil {
			return componentStatus{Mode: mode, Error: err.Error()}
		}
		count := int(n)
		status.Count = &count
	}
	return status
}

func storeMode(d deps.Deps) string {
	if _, ok := d.Sessions.Store().(*session.MemoryStore); ok {
		return "memory"
	}
	return "redis"
}
