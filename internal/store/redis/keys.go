package redis

const (
	// KeyPrefixSession is the prefix for session keys
	KeyPrefixSession = "devdocs:session:"
	// KeyAllSessions is the key for the set of known session IDs
	KeyAllSessions = "devdocs:sessions:all"
	// KeyPageViews is the sorted set of article path view counts
	KeyPageViews = "devdocs:views"
)

// SessionKey returns the Redis key for a session by ID
func SessionKey(id string) string {
	return KeyPrefixSession + id
}

// AllSessionsKey returns the key for the set of all session IDs
func AllSessionsKey() string {
	return KeyAllSessions
}

// PageViewsKey returns the key for the page view counters
func PageViewsKey() string {
	return KeyPageViews
}
