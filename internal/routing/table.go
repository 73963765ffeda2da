package routing

import (
	"errors"
	"fmt"
	"strings"
)

// Wildcard is the catch-all pattern. A table holds exactly one, last.
const Wildcard = "*"

var (
	ErrDuplicateRoute  = errors.New("duplicate route pattern")
	ErrWildcardNotLast = errors.New("wildcard route must be declared last")
	ErrMissingWildcard = errors.New("route table has no wildcard route")
	ErrInvalidPattern  = errors.New("invalid route pattern")
)

// Kind classifies a pattern.
type Kind int

const (
	KindLiteral Kind = iota
	KindParam
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParam:
		return "param"
	case KindWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Binding pairs a declared pattern with the name of the page serving it.
type Binding struct {
	Pattern string
	Page    string
}

// Route is a compiled binding.
type Route struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Page    string `yaml:"page" json:"page"`
	Kind    Kind   `yaml:"-" json:"-"`

	segments []string
}

// Match is the result of resolving a path.
type Match struct {
	Route  Route
	Params map[string]string
}

// Param returns the value of a named parameter, or "" when absent.
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Fallback reports whether the match is the wildcard route.
func (m Match) Fallback() bool {
	return m.Route.Kind == KindWildcard
}

// Table is an ordered, immutable route table. First match wins.
type Table struct {
	routes   []Route
	fallback Route
}

// NewTable compiles bindings in declaration order.
func NewTable(bindings ...Binding) (*Table, error) {
	t := &Table{routes: make([]Route, 0, len(bindings))}
	seen := make(map[string]struct{}, len(bindings))
	wildcards := 0

	for i, b := range bindings {
		r, err := compile(b)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[r.Pattern]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, r.Pattern)
		}
		seen[r.Pattern] = struct{}{}

		if r.Kind == KindWildcard {
			wildcards++
			if i != len(bindings)-1 {
				return nil, fmt.Errorf("%w: found at position %d of %d", ErrWildcardNotLast, i+1, len(bindings))
			}
			t.fallback = r
		}
		t.routes = append(t.routes, r)
	}

	if wildcards == 0 {
		return nil, ErrMissingWildcard
	}
	return t, nil
}

// MustTable is NewTable that panics on error. Used for compiled-in tables.
func MustTable(bindings ...Binding) *Table {
	t, err := NewTable(bindings...)
	if err != nil {
		panic(fmt.Sprintf("routing: %v", err))
	}
	return t
}

func compile(b Binding) (Route, error) {
	p := strings.TrimSpace(b.Pattern)
	if p == "" {
		return Route{}, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if b.Page == "" {
		return Route{}, fmt.Errorf("%w: %q has no page", ErrInvalidPattern, p)
	}
	if p == Wildcard {
		return Route{Pattern: Wildcard, Page: b.Page, Kind: KindWildcard}, nil
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	r := Route{Pattern: p, Page: b.Page, Kind: KindLiteral}
	if p == "/" {
		return r, nil
	}

	r.segments = strings.Split(strings.TrimPrefix(p, "/"), "/")
	names := make(map[string]struct{})
	for _, seg := range r.segments {
		if seg == "" {
			return Route{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, p)
		}
		if strings.Contains(seg, Wildcard) {
			return Route{}, fmt.Errorf("%w: %q mixes a wildcard into a segment", ErrInvalidPattern, p)
		}
		name, isParam := paramName(seg)
		if !isParam {
			continue
		}
		if name == "" {
			return Route{}, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, p)
		}
		if _, dup := names[name]; dup {
			return Route{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, p, name)
		}
		names[name] = struct{}{}
		r.Kind = KindParam
	}
	return r, nil
}

func paramName(seg string) (string, bool) {
	if len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}' {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

// Resolve returns the first route matching path. The path is compared
// as given; it is never trimmed or cleaned.
func (t *Table) Resolve(path string) Match {
	for _, r := range t.routes {
		if params, ok := r.match(path); ok {
			return Match{Route: r, Params: params}
		}
	}
	return Match{Route: t.fallback}
}

func (r Route) match(path string) (map[string]string, bool) {
	switch r.Kind {
	case KindWildcard:
		return nil, true
	case KindLiteral:
		return nil, path == r.Pattern
	}

	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	parts := strings.Split(path[1:], "/")
	if len(parts) != len(r.segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range r.segments {
		if name, ok := paramName(seg); ok {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[name] = parts[i]
			continue
		}
		if parts[i] != seg {
			return nil, false
		}
	}
	return params, true
}

// Routes lists the compiled routes in declaration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Lookup returns the route declared with pattern, after normalization.
func (t *Table) Lookup(pattern string) (Route, bool) {
	if pattern != Wildcard && !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	for _, r := range t.routes {
		if r.Pattern == pattern {
			return r, true
		}
	}
	return Route{}, false
}

// PagePatterns returns the patterns bound to page, in order.
func (t *Table) PagePatterns(page string) []string {
	var out []string
	for _, r := range t.routes {
		if r.Page == page {
			out = append(out, r.Pattern)
		}
	}
	return out
}
