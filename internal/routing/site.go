package routing

import "strings"

// Page names bound in the site table.
const (
	PageHome      = "home"
	PageArticle   = "article"
	PageResources = "resources"
	PageLogin     = "login"
	PageNotFound  = "notfound"
)

// CategoryParam is the path parameter of the category page.
const CategoryParam = "category"

// articlePatterns are the article routes in declaration order.
// "git-commit-types" is declared without its leading slash and normalized.
var articlePatterns = []string{
	"/vite-explanation",
	"/web-services-explanation",
	"/webhook",
	"/ssl-guide-lets-encrypt",
	"/supabase-migration-guide",

	"/gitflow-workflow",
	"/git-conflict-resolution",
	"/git-prune-branches",
	"/pr-scenarios-guide",
	"/bitbucket-draft-pr-guide",
	"/git-commit-am-guide",
	"/git-commands-reference",
	"/git-feature-branch-rebase",
	"git-commit-types",
	"/git-prep-new-feature",

	"/ci-4",

	"/laravel-queue-worker-guide",
	"/laravel-concepts",
	"/laravel-utility-class",
	"/laravel-graphql-guide",

	"/react-ref",
	"/react-context",
	"/react-portal",
	"/react-suspense",
}

// SiteBindings returns the site's bindings in declaration order.
func SiteBindings() []Binding {
	b := make([]Binding, 0, len(articlePatterns)+5)
	b = append(b, Binding{Pattern: "/", Page: PageHome})
	for _, p := range articlePatterns {
		b = append(b, Binding{Pattern: p, Page: PageArticle})
	}
	b = append(b,
		Binding{Pattern: "/resources", Page: PageResources},
		Binding{Pattern: "/resources/{" + CategoryParam + "}", Page: PageResources},
		Binding{Pattern: "/login", Page: PageLogin},
		Binding{Pattern: Wildcard, Page: PageNotFound},
	)
	return b
}

// Site is the compiled site route table.
var Site = MustTable(SiteBindings()...)

// ArticleSlug maps an article route pattern to its content slug.
func ArticleSlug(pattern string) string {
	return strings.TrimPrefix(pattern, "/")
}
