package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MrSnakeDoc/devdocs/internal/disclosure"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/httpserver/mw"
	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/nav"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
	"github.com/MrSnakeDoc/devdocs/internal/session"
	"github.com/MrSnakeDoc/devdocs/internal/web"
)

const popularLimit = 5

// Pages resolves the request path through the site route table and renders
// the page bound to it. Exactly one page renders per request.
func Pages(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := d.Now()
		m := d.Routes.Resolve(r.URL.Path)
		r = r.WithContext(routing.WithMatch(r.Context(), m))
		mw.RecordRoute(r, m)

		var status int
		switch m.Route.Page {
		case routing.PageHome:
			status = home(d, w, r)
		case routing.PageArticle:
			status = article(d, w, r, m)
		case routing.PageResources:
			status = resources(d, w, r, m)
		case routing.PageLogin:
			status = loginPage(d, w, r, http.StatusOK, web.LoginView{})
		default:
			status = notFound(d, w, r)
		}

		observePage(d, m, status, d.Now().Sub(start))
	}
}

func layout(d deps.Deps, r *http.Request, page, title string) web.Layout {
	l := web.Layout{
		SiteTitle: d.SiteTitle,
		Title:     title,
		Page:      page,
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		Crumbs:    nav.Breadcrumbs(r.URL.Path),
		Version:   d.Version,
		Year:      d.Now().Year(),
		CSRFToken: mw.CSRFToken(r),
	}
	if s, ok := session.FromContext(r.Context()); ok {
		l.User = &s
	}
	return l
}

func home(d deps.Deps, w http.ResponseWriter, r *http.Request) int {
	view := web.HomeView{Layout: layout(d, r, web.PageHome, "")}

	for _, key := range d.Catalog.Keys() {
		entry, _ := d.Catalog.Lookup(key)
		available := 0
		for _, it := range entry.Items {
			if it.Available() {
				available++
			}
		}
		view.Categories = append(view.Categories, web.CategoryCard{
			Key:       key,
			Title:     entry.Title,
			Href:      "/resources/" + key,
			Available: available,
		})
	}

	if d.Usage != nil {
		top, err := d.Usage.Top(r.Context(), popularLimit)
		if err != nil {
			d.Logger.Warn("popular articles unavailable", logger.Error(err))
		}
		for _, e := range top {
			a, ok := d.Library.Get(routing.ArticleSlug(e.Path))
			if !ok {
				continue
			}
			view.Popular = append(view.Popular, web.PopularItem{Path: e.Path, Title: a.Title, Views: e.Views})
		}
	}

	return render(d, w, http.StatusOK, web.PageHome, view)
}

func article(d deps.Deps, w http.ResponseWriter, r *http.Request, m routing.Match) int {
	slug := routing.ArticleSlug(m.Route.Pattern)
	a, ok := d.Library.Get(slug)
	if !ok {
		// Startup checks every article route, so this is a wiring bug.
		d.Logger.Error("article route without content", logger.String("slug", slug))
		return notFound(d, w, r)
	}

	l := layout(d, r, web.PageArticle, a.Title)
	l.Description = a.Summary

	view := web.ArticleView{
		Article: web.NewArticleBody(a),
		Panels:  disclosure.Views(m.Route.Pattern, disclosure.ParseOpenSet(r.URL.Query()), a.Panels),
	}
	if entry, ok := d.Catalog.Lookup(a.Category); ok {
		view.CategoryTitle = entry.Title
		l.Crumbs = nav.ArticleCrumbs(a.Category, entry.Title, m.Route.Pattern, a.Title)
	} else {
		l.Crumbs = nav.ArticleCrumbs("", "", m.Route.Pattern, a.Title)
	}
	view.Layout = l

	if d.Metrics != nil {
		for _, p := range view.Panels {
			if p.Expanded() {
				d.Metrics.PanelExpansionsTotal.WithLabelValues(slug).Inc()
			}
		}
	}
	// Panel toggles reload the page with an open parameter and are not views.
	if d.Usage != nil && !r.URL.Query().Has(disclosure.QueryParam) {
		if err := d.Usage.Record(r.Context(), m.Route.Pattern); err != nil {
			d.Logger.Debug("view not recorded", logger.String("path", m.Route.Pattern), logger.Error(err))
		}
	}

	return render(d, w, http.StatusOK, web.PageArticle, view)
}

// resources renders the registry entry for the category parameter. An
// absent or unknown key renders the default entry with status 200.
func resources(d deps.Deps, w http.ResponseWriter, r *http.Request, m routing.Match) int {
	key := m.Param(routing.CategoryParam)
	entry, found := d.Catalog.Lookup(key)

	view := web.ResourcesView{
		Layout: layout(d, r, web.PageResources, entry.Title),
		Key:    key,
		Entry:  entry,
		Cards:  web.Cards(entry.Items),
	}
	if !found {
		view.Others = d.Catalog.Keys()
	}
	return render(d, w, http.StatusOK, web.PageResources, view)
}

func loginPage(d deps.Deps, w http.ResponseWriter, r *http.Request, status int, view web.LoginView) int {
	view.Layout = layout(d, r, web.PageLogin, "Sign in")
	return render(d, w, status, web.PageLogin, view)
}

// NotFound renders the not-found page for requests outside the route table.
func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound(d, w, r)
		if d.Metrics != nil {
			d.Metrics.NotFoundTotal.Inc()
		}
	}
}

func notFound(d deps.Deps, w http.ResponseWriter, r *http.Request) int {
	view := web.NotFoundView{
		Layout:        layout(d, r, web.PageNotFound, "Page not found"),
		RequestedPath: r.URL.Path,
	}
	view.Crumbs = nil
	return render(d, w, http.StatusNotFound, web.PageNotFound, view)
}

func render(d deps.Deps, w http.ResponseWriter, status int, page string, data any) int {
	if err := d.Renderer.Render(w, status, page, data); err != nil {
		d.Logger.Error("render failed", logger.String("page", page), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	return status
}

func observePage(d deps.Deps, m routing.Match, status int, elapsed time.Duration) {
	if d.Metrics == nil {
		return
	}
	d.Metrics.PageRendersTotal.WithLabelValues(m.Route.Page, m.Route.Pattern, strconv.Itoa(status)).Inc()
	d.Metrics.PageRenderDurationSeconds.WithLabelValues(m.Route.Page).Observe(elapsed.Seconds())
	if m.Fallback() {
		d.Metrics.NotFoundTotal.Inc()
	}
}
