package catalog

// Placeholder is the path sentinel for items that are not published yet.
// Cards pointing at it are rendered disabled and never navigate.
const Placeholder = "#"

// NotFoundTitle is the heading of the entry returned for unknown keys.
const NotFoundTitle = "Resources Not Found"

// ContentItem describes one linkable article.
type ContentItem struct {
	Name        string `yaml:"name" json:"name"`
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description" json:"description"`
}

// Available reports whether the item points at a real page.
func (i ContentItem) Available() bool {
	return i.Path != Placeholder
}

// CategoryEntry is the content of one category page.
// Items are in display order.
type CategoryEntry struct {
	Title string        `yaml:"title" json:"title"`
	Items []ContentItem `yaml:"items" json:"items"`
}

// Empty reports whether the entry has nothing to list.
func (e CategoryEntry) Empty() bool {
	return len(e.Items) == 0
}

func (e CategoryEntry) clone() CategoryEntry {
	out := CategoryEntry{Title: e.Title}
	if len(e.Items) > 0 {
		out.Items = append([]ContentItem(nil), e.Items...)
	}
	return out
}

// Registry maps category keys to entries. It is immutable once built:
// every accessor hands out copies.
type Registry struct {
	keys    []string
	entries map[string]CategoryEntry
}

// Category pairs a key with its entry, used to build a Registry.
type Category struct {
	Key   string
	Entry CategoryEntry
}

// NewRegistry builds a registry from categories in declaration order.
// A repeated key panics: the set is compiled in, so this is a programming error.
func NewRegistry(categories ...Category) *Registry {
	r := &Registry{
		keys:    make([]string, 0, len(categories)),
		entries: make(map[string]CategoryEntry, len(categories)),
	}
	for _, c := range categories {
		if _, dup := r.entries[c.Key]; dup {
			panic("catalog: duplicate category key " + c.Key)
		}
		r.keys = append(r.keys, c.Key)
		r.entries[c.Key] = c.Entry.clone()
	}
	return r
}

// Lookup returns the entry for key, or the "Resources Not Found" entry when
// the key is unknown. The second result reports whether the key was known.
// Keys are matched exactly (case-sensitive).
func (r *Registry) Lookup(key string) (CategoryEntry, bool) {
	if r != nil {
		if e, ok := r.entries[key]; ok {
			return e.clone(), true
		}
	}
	return NotFound(), false
}

// Keys returns the category keys in declaration order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// NotFound is the entry used when a category key is absent or unknown.
func NotFound() CategoryEntry {
	return CategoryEntry{Title: NotFoundTitle}
}
