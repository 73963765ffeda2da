package redis

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/devdocs/internal/usage"
)

// Record increments the view counter for an article path
func (s *Store) Record(ctx context.Context, path string) error {
	if err := s.client.ZIncrBy(ctx, PageViewsKey(), 1, path).Err(); err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}
	return nil
}

// Top retrieves the n most viewed paths
func (s *Store) Top(ctx context.Context, n int) ([]usage.Entry, error) {
	if n <= 0 {
		return []usage.Entry{}, nil
	}
	zs, err := s.client.ZRevRangeWithScores(ctx, PageViewsKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get page views: %w", err)
	}

	stats := make([]usage.Entry, 0, len(zs))
	for _, z := range zs {
		path, ok := z.Member.(string)
		if !ok {
			continue
		}
		stats = append(stats, usage.Entry{Path: path, Views: int64(z.Score)})
	}
	return stats, nil
}
