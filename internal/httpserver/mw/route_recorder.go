package mw

import "context"

type routeRecorderKey struct{}

type routeRecorder struct {
	pattern string
}

func withRouteRecorder(ctx context.Context, rec *routeRecorder) context.Context {
	return context.WithValue(ctx, routeRecorderKey{}, rec)
}
