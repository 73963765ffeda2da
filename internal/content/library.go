package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/devdocs/internal/disclosure"
)

//go:embed articles/*.md
var embedded embed.FS

var (
	ErrMissingArticle = errors.New("missing article")
	ErrNoFrontmatter  = errors.New("article has no frontmatter")
)

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// PanelSource is a disclosure panel as declared in frontmatter.
type PanelSource struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Body  string `yaml:"body"`
}

// Meta is an article's frontmatter.
type Meta struct {
	Title    string        `yaml:"title"`
	Summary  string        `yaml:"summary"`
	Category string        `yaml:"category"`
	Panels   []PanelSource `yaml:"panels"`
}

// Article is a rendered article.
type Article struct {
	Slug     string
	Title    string
	Summary  string
	Category string
	Body     template.HTML
	Panels   []disclosure.Panel
}

// Library holds every article keyed by slug. Read-only after Load.
type Library struct {
	articles map[string]Article
	slugs    []string
}

// LoadEmbedded loads the articles compiled into the binary.
func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(embedded, "articles")
	if err != nil {
		return nil, fmt.Errorf("sub articles: %w", err)
	}
	return Load(sub, NewRenderer())
}

// Load reads every *.md file at the root of fsys.
func Load(fsys fs.FS, r *Renderer) (*Library, error) {
	matches, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("glob articles: %w", err)
	}

	lib := &Library{articles: make(map[string]Article, len(matches))}
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		slug := strings.TrimSuffix(path.Base(name), ".md")
		a, err := parseArticle(slug, raw, r)
		if err != nil {
			return nil, fmt.Errorf("article %s: %w", slug, err)
		}
		lib.articles[slug] = a
		lib.slugs = append(lib.slugs, slug)
	}
	sort.Strings(lib.slugs)
	return lib, nil
}

func parseArticle(slug string, raw []byte, r *Renderer) (Article, error) {
	var meta Meta
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &meta, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Article{}, ErrNoFrontmatter
		}
		return Article{}, fmt.Errorf("frontmatter: %w", err)
	}

	html, err := r.Render(body)
	if err != nil {
		return Article{}, err
	}

	a := Article{
		Slug:     slug,
		Title:    strings.TrimSpace(meta.Title),
		Summary:  strings.TrimSpace(meta.Summary),
		Category: strings.TrimSpace(meta.Category),
		Body:     html,
	}
	if a.Title == "" {
		a.Title = TitleFromSlug(slug)
	}

	used := make(map[string]bool, len(meta.Panels))
	for i, ps := range meta.Panels {
		if strings.TrimSpace(ps.Label) == "" {
			return Article{}, fmt.Errorf("panel %d has no label", i+1)
		}
		panelHTML, err := r.Render([]byte(ps.Body))
		if err != nil {
			return Article{}, fmt.Errorf("panel %q: %w", ps.Label, err)
		}
		id := PanelID(ps.ID)
		if id == "" {
			id = PanelID(ps.Label)
		}
		if id == "" {
			id = "panel-" + strconv.Itoa(i+1)
		}
		id = uniqueID(id, used)
		a.Panels = append(a.Panels, disclosure.New(id, strings.TrimSpace(ps.Label), strings.TrimSpace(ps.Icon), panelHTML))
	}
	return a, nil
}

// uniqueID returns base, or base-N for the smallest N >= 2 not yet in used,
// and records the result.
func uniqueID(base string, used map[string]bool) string {
	id := base
	for n := 2; used[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	used[id] = true
	return id
}

// PanelID reduces s to lowercase ASCII letters, digits and dashes.
func PanelID(s string) string {
	s = cases.Lower(language.English).String(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	id := strings.TrimSuffix(b.String(), "-")
	if len(id) > 48 {
		id = strings.TrimSuffix(id[:48], "-")
	}
	return id
}

// TitleFromSlug turns "git-prune-branches" into "Git Prune Branches".
func TitleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}

// Get returns the article for slug. The panels slice is copied.
func (l *Library) Get(slug string) (Article, bool) {
	a, ok := l.articles[slug]
	if !ok {
		return Article{}, false
	}
	a.Panels = append([]disclosure.Panel(nil), a.Panels...)
	return a, true
}

// Slugs returns every loaded slug, sorted.
func (l *Library) Slugs() []string {
	return append([]string(nil), l.slugs...)
}

// Len returns the number of articles.
func (l *Library) Len() int { return len(l.articles) }

// Require checks that every slug has an article. All missing slugs are
// reported in one error wrapping ErrMissingArticle.
func (l *Library) Require(slugs ...string) error {
	var missing []string
	for _, s := range slugs {
		if _, ok := l.articles[s]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingArticle, strings.Join(missing, ", "))
	}
	return nil
}
