package web

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/disclosure"
	"github.com/MrSnakeDoc/devdocs/internal/nav"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

func layout(path string) Layout {
	return Layout{
		SiteTitle: "DevDocs",
		Title:     "Test",
		Path:      path,
		Nav:       nav.Build(path),
		Crumbs:    nav.Breadcrumbs(path),
		Version:   "test",
		Year:      2026,
	}
}

func render(t *testing.T, page string, data any) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, page, data))
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.Error(t, r.Render(rec, http.StatusOK, "nope", nil))
	require.Zero(t, rec.Body.Len())
}

func TestResourcesCards(t *testing.T) {
	entry, ok := catalog.Default.Lookup("git")
	require.True(t, ok)

	doc := render(t, PageResources, ResourcesView{
		Layout: layout("/resources/git"),
		Key:    "git",
		Entry:  entry,
		Cards:  Cards(entry.Items),
	})

	require.Equal(t, "Git Resources", strings.TrimSpace(doc.Find(".resources h1").Text()))
	require.Equal(t, 11, doc.Find(".card-grid .card").Length())

	href, ok := doc.Find(".card-grid .card").First().Attr("href")
	require.True(t, ok)
	require.Equal(t, "/git-commands-reference", href)

	last := doc.Find(".card-grid .card").Last()
	require.True(t, last.HasClass("card--disabled"))
	_, hasHref := last.Attr("href")
	require.False(t, hasHref)
	disabled, _ := last.Attr("aria-disabled")
	require.Equal(t, "true", disabled)
}

func TestResourcesEmptyState(t *testing.T) {
	doc := render(t, PageResources, ResourcesView{
		Layout: layout("/resources/unknown"),
		Key:    "unknown",
		Entry:  catalog.NotFound(),
	})
	require.Equal(t, catalog.NotFoundTitle, strings.TrimSpace(doc.Find(".resources h1").Text()))
	require.Equal(t, "No resources found for this category.", strings.TrimSpace(doc.Find(".empty-state").Text()))
	require.Zero(t, doc.Find(".card").Length())
}

func TestArticlePanels(t *testing.T) {
	panels := []disclosure.Panel{
		disclosure.New("git-add", "git add .", "terminal", template.HTML("<p>Stage everything.</p>")),
		disclosure.New("git-commit", "git commit", "", template.HTML("<p>Record changes.</p>")),
	}
	open := disclosure.ParseOpenSet(map[string][]string{"open": {"git-add"}})

	doc := render(t, PageArticle, ArticleView{
		Layout:  layout("/git-commands-reference"),
		Article: ArticleBody{Slug: "git-commands-reference", Title: "Git Commands", Body: "<p>body</p>"},
		Panels:  disclosure.Views("/git-commands-reference", open, panels),
	})

	add := doc.Find("#git-add")
	require.Equal(t, "expanded", add.AttrOr("data-state", ""))
	require.Equal(t, "true", add.Find(".panel__toggle").AttrOr("aria-expanded", ""))
	require.Contains(t, add.Find(".panel__body").Text(), "Stage everything.")
	require.Equal(t, "/git-commands-reference#git-add", add.Find(".panel__toggle").AttrOr("href", ""))

	commit := doc.Find("#git-commit")
	require.Equal(t, "collapsed", commit.AttrOr("data-state", ""))
	require.Equal(t, "false", commit.Find(".panel__toggle").AttrOr("aria-expanded", ""))
	require.Zero(t, commit.Find(".panel__body").Length())
}

func TestLayoutUserAndNav(t *testing.T) {
	l := layout("/resources/git")
	l.User = &session.Session{Email: "ada@example.com", DisplayName: "Ada"}

	doc := render(t, PageNotFound, NotFoundView{Layout: l, RequestedPath: "/x"})

	require.Equal(t, "Ada", doc.Find(".user-name").Text())
	require.Equal(t, "Git", doc.Find(".site-nav a.is-active").First().Text())
	require.Equal(t, 1, doc.Find(`link[rel="stylesheet"]`).Length())
	require.True(t, strings.HasPrefix(doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""), "/assets/site.css?v="))
}

func TestCardsPreservesOrder(t *testing.T) {
	cards := Cards([]catalog.ContentItem{
		{Name: "B", Path: "/b"},
		{Name: "A", Path: catalog.Placeholder},
	})
	require.Equal(t, []Card{
		{Name: "B", Href: "/b"},
		{Name: "A", Disabled: true},
	}, cards)
}

func TestAssetsETag(t *testing.T) {
	a, err := NewAssets()
	require.NoError(t, err)

	et := a.ETag("site.css")
	require.True(t, strings.HasPrefix(et, `W/"`))

	rec := httptest.NewRecorder()
	a.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, et, rec.Header().Get("ETag"))
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/assets/site.css", nil)
	req.Header.Set("If-None-Match", et)
	rec = httptest.NewRecorder()
	a.Handler(nil).ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	missing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	for _, p := range []string{"/assets/missing.css", "/assets/", "/assets/../templates/base.html"} {
		rec = httptest.NewRecorder()
		a.Handler(missing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusGone, rec.Code, p)
		require.Empty(t, rec.Header().Get("Cache-Control"), p)
	}
}
