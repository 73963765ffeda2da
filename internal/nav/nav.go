package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item is a header navigation entry.
type Item struct {
	Path  string
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb is one breadcrumb entry. The last crumb is Active and not linked.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the header navigation.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/resources/git", Label: "Git"},
	{Path: "/resources/react", Label: "React"},
	{Path: "/resources/laravel", Label: "Laravel"},
	{Path: "/resources/devops", Label: "DevOps"},
	{Path: "/resources", Label: "All resources"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

// isActive matches exactly or on a segment boundary: "/a" is active for
// "/a" and "/a/b" but not "/ab".
func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds entries from the path, starting with Home.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." || clean == "/" {
		return crumbs
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		href += "/" + seg
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  TitleFromSegment(seg),
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

// ArticleCrumbs is Home > category > article. The category crumb is
// skipped when categoryKey is empty.
func ArticleCrumbs(categoryKey, categoryTitle, articlePath, articleTitle string) []Crumb {
	crumbs := []Crumb{{Href: "/", Label: "Home"}}
	if categoryKey != "" {
		label := categoryTitle
		if label == "" {
			label = TitleFromSegment(categoryKey)
		}
		crumbs = append(crumbs, Crumb{Href: "/resources/" + categoryKey, Label: label})
	}
	return append(crumbs, Crumb{Href: articlePath, Label: articleTitle, Active: true})
}

// TitleFromSegment turns "git-prune_branches" into "Git Prune Branches".
func TitleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}
