package app

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/content"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
)

// ErrDanglingItem reports a registry item whose path is neither the
// placeholder nor a routed page.
var ErrDanglingItem = errors.New("registry item points to an unrouted path")

// Check verifies that every article route has content and that every
// registry item links to a routed page or is the placeholder. All
// problems are reported together.
func Check(table *routing.Table, reg *catalog.Registry, lib *content.Library) error {
	var errs []error

	patterns := table.PagePatterns(routing.PageArticle)
	slugs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		slugs = append(slugs, routing.ArticleSlug(p))
	}
	if err := lib.Require(slugs...); err != nil {
		errs = append(errs, err)
	}

	for _, key := range reg.Keys() {
		entry, _ := reg.Lookup(key)
		for _, it := range entry.Items {
			if !it.Available() {
				continue
			}
			if table.Resolve(it.Path).Fallback() {
				errs = append(errs, fmt.Errorf("%w: %s: %q -> %s", ErrDanglingItem, key, it.Name, it.Path))
			}
		}
	}

	return errors.Join(errs...)
}
