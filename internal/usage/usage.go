package usage

import (
	"context"
	"sort"
	"sync"
)

// Entry is one page and its view count.
type Entry struct {
	Path  string
	Views int64
}

// Counter records article views and reports the most read pages.
type Counter interface {
	Record(ctx context.Context, path string) error
	Top(ctx context.Context, n int) ([]Entry, error)
}

// MemoryCounter is a Counter kept in process.
type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

func (c *MemoryCounter) Record(_ context.Context, path string) error {
	c.mu.Lock()
	c.counts[path]++
	c.mu.Unlock()
	return nil
}

// Top returns up to n entries, most viewed first; ties sort by path.
func (c *MemoryCounter) Top(_ context.Context, n int) ([]Entry, error) {
	c.mu.Lock()
	out := make([]Entry, 0, len(c.counts))
	for p, v := range c.counts {
		out = append(out, Entry{Path: p, Views: v})
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].Path < out[j].Path
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}
