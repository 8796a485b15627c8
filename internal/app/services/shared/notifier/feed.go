package notifier

import (
	"context"
	"medibook-client/internal/app/models"
	"sync"
)

const defaultFeedSize = 50

// Feed keeps the most recent notifications in memory.
type Feed struct {
	mu      sync.RWMutex
	entries []models.Notification
	next    int
	full    bool
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = defaultFeedSize
	}
	return &Feed{entries: make([]models.Notification, size)}
}

func (f *Feed) Notify(_ context.Context, notification models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[f.next] = notification
	f.next = (f.next + 1) % len(f.entries)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to limit notifications, newest first. A limit of zero
// or less returns everything retained.
func (f *Feed) Recent(limit int) []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := f.next
	if f.full {
		count = len(f.entries)
	}
	if limit <= 0 || limit > count {
		limit = count
	}

	recent := make([]models.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		index := (f.next - i + len(f.entries)) % len(f.entries)
		recent = append(recent, f.entries[index])
	}
	return recent
}
