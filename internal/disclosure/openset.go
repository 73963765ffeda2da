package disclosure

import (
	"net/url"
	"sort"
	"strings"
)

// QueryParam carries the ids of expanded panels.
const QueryParam = "open"

// maxOpen bounds how many ids a single query can expand.
const maxOpen = 64

// OpenSet is an immutable set of expanded panel ids.
type OpenSet struct {
	ids map[string]struct{}
}

// ParseOpenSet reads the open parameter. Repeated parameters and
// comma-separated lists are both accepted; blanks are dropped.
func ParseOpenSet(q url.Values) OpenSet {
	s := OpenSet{ids: map[string]struct{}{}}
	for _, raw := range q[QueryParam] {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if !validID(id) {
				continue
			}
			if len(s.ids) >= maxOpen {
				return s
			}
			s.ids[id] = struct{}{}
		}
	}
	return s
}

func validID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// Has reports whether id is expanded.
func (s OpenSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded ids.
func (s OpenSet) Len() int { return len(s.ids) }

// Toggle returns a new set with id flipped. s is not modified.
func (s OpenSet) Toggle(id string) OpenSet {
	next := OpenSet{ids: make(map[string]struct{}, len(s.ids)+1)}
	for k := range s.ids {
		next.ids[k] = struct{}{}
	}
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else if validID(id) {
		next.ids[id] = struct{}{}
	}
	return next
}

// IDs returns the ids sorted.
func (s OpenSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Query encodes the set as a query string, or "" when empty.
func (s OpenSet) Query() string {
	if len(s.ids) == 0 {
		return ""
	}
	v := url.Values{}
	v.Set(QueryParam, strings.Join(s.IDs(), ","))
	return v.Encode()
}

// Href is the link to path with this set applied, anchored at fragment.
func (s OpenSet) Href(path, fragment string) string {
	href := path
	if q := s.Query(); q != "" {
		href += "?" + q
	}
	if fragment != "" {
		href += "#" + fragment
	}
	return href
}
