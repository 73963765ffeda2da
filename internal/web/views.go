package web

import (
	"html/template"

	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/content"
	"github.com/MrSnakeDoc/devdocs/internal/disclosure"
	"github.com/MrSnakeDoc/devdocs/internal/nav"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

// Layout is the chrome shared by every page.
type Layout struct {
	SiteTitle   string
	Title       string
	Description string
	Page        string
	Path        string
	Nav         []nav.RenderedItem
	Crumbs      []nav.Crumb
	User        *session.Session
	CSRFToken   string
	Version     string
	Year        int
}

type CategoryCard struct {
	Key       string
	Title     string
	Href      string
	Available int
}

type PopularItem struct {
	Path  string
	Title string
	Views int64
}

type HomeView struct {
	Layout
	Categories []CategoryCard
	Popular    []PopularItem
}

// ArticleBody is the subset of an article the template needs.
type ArticleBody struct {
	Slug     string
	Title    string
	Summary  string
	Category string
	Body     template.HTML
}

type ArticleView struct {
	Layout
	Article       ArticleBody
	CategoryTitle string
	Panels        []disclosure.View
}

// NewArticleBody copies the renderable parts of a.
func NewArticleBody(a content.Article) ArticleBody {
	return ArticleBody{
		Slug:     a.Slug,
		Title:    a.Title,
		Summary:  a.Summary,
		Category: a.Category,
		Body:     a.Body,
	}
}

// Card is one resource card. Disabled cards have no link.
type Card struct {
	Name        string
	Href        string
	Description string
	Disabled    bool
}

type ResourcesView struct {
	Layout
	Key    string
	Entry  catalog.CategoryEntry
	Cards  []Card
	Others []string
}

// Cards maps category items to cards, keeping their order. Items whose
// path is the placeholder become disabled cards.
func Cards(items []catalog.ContentItem) []Card {
	out := make([]Card, 0, len(items))
	for _, it := range items {
		c := Card{Name: it.Name, Description: it.Description}
		if it.Available() {
			c.Href = it.Path
		} else {
			c.Disabled = true
		}
		out = append(out, c)
	}
	return out
}

type LoginView struct {
	Layout
	Email       string
	DisplayName string
	Error       string
}

type NotFoundView struct {
	Layout
	RequestedPath string
}
