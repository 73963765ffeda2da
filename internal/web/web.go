// Package web owns the embedded HTML templates and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	PageHome      = "home"
	PageArticle   = "article"
	PageResources = "resources"
	PageLogin     = "login"
	PageNotFound  = "notfound"
)

var pageNames = []string{PageHome, PageArticle, PageResources, PageLogin, PageNotFound}

// Renderer executes page templates. Each page is parsed on top of its own
// clone of the layout so their "content" blocks do not collide.
type Renderer struct {
	pages  map[string]*template.Template
	assets *Assets
}

// NewRenderer parses every embedded template and fingerprints the assets.
func NewRenderer() (*Renderer, error) {
	assets, err := NewAssets()
	if err != nil {
		return nil, err
	}

	funcs := template.FuncMap{
		"asset": assets.Path,
	}

	layout, err := template.New("_root").Funcs(funcs).ParseFS(templateFS,
		"templates/base.html",
		"templates/partials.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, assets: assets}, nil
}

// Assets returns the fingerprinted static asset set.
func (r *Renderer) Assets() *Assets { return r.assets }

// Render executes page into a buffer and only writes the response when
// the template succeeds, so a failing template never leaves a half page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("execute %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

// staticRoot strips the embed directory so files are addressed by name.
func staticRoot() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func cleanAssetName(p string) string {
	return strings.TrimPrefix(p, "/")
}
