package routing

import "context"

type matchKey struct{}

// WithMatch stores m on ctx.
func WithMatch(ctx context.Context, m Match) context.Context {
	return context.WithValue(ctx, matchKey{}, m)
}

// FromContext returns the match stored by WithMatch.
func FromContext(ctx context.Context) (Match, bool) {
	m, ok := ctx.Value(matchKey{}).(Match)
	return m, ok
}

// Param returns a named route parameter from ctx, or "".
func Param(ctx context.Context, name string) string {
	m, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return m.Param(name)
}
