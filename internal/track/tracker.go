package track

import (
	"context"
	"sort"
	"sync"
	"time"
)

// maxTrailLen bounds the per-asset position history kept for trail drawing
const maxTrailLen = 32

// Tracker manages a collection of assets with thread-safe access
type Tracker struct {
	assets  map[string]*Asset // Keyed by asset ID
	mu      sync.RWMutex
	timeout time.Duration
}

// NewTracker creates a new asset tracker.
// timeout specifies how long before an asset is considered stale (default: 5m).
func NewTracker(timeout time.Duration) *Tracker {
	if timeout == 0 {
		timeout = 5 * time.Minute
	}

	return &Tracker{
		assets:  make(map[string]*Asset),
		timeout: timeout,
	}
}

// Update updates or adds an asset, merging non-zero fields of the report
// into the existing record and extending the movement trail
func (t *Tracker) Update(a *Asset) {
	if a == nil || a.ID == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	existing, exists := t.assets[a.ID]
	if !exists {
		if a.Position != nil {
			a.Trail = append(a.Trail, *a.Position)
		}
		t.assets[a.ID] = a
		return
	}

	existing.LastSeen = a.LastSeen

	if a.Name != "" {
		existing.Name = a.Name
	}

	if a.Position != nil {
		existing.Position = a.Position
		existing.Trail = append(existing.Trail, *a.Position)
		if len(existing.Trail) > maxTrailLen {
			existing.Trail = existing.Trail[len(existing.Trail)-maxTrailLen:]
		}
	}

	if a.Heading != 0 {
		existing.Heading = a.Heading
	}

	if a.SpeedKts != 0 {
		existing.SpeedKts = a.SpeedKts
	}
}

// Get retrieves an asset by ID
func (t *Tracker) Get(id string) (*Asset, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, exists := t.assets[id]
	return a, exists
}

// GetAll returns all tracked assets sorted by ID
func (t *Tracker) GetAll() []*Asset {
	t.mu.RLock()
	defer t.mu.RUnlock()

	assets := make([]*Asset, 0, len(t.assets))
	for _, a := range t.assets {
		assets = append(assets, a)
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].ID < assets[j].ID
	})

	return assets
}

// GetWithPosition returns all assets that have valid position data
func (t *Tracker) GetWithPosition() []*Asset {
	all := t.GetAll()
	withPos := make([]*Asset, 0, len(all))

	for _, a := range all {
		if a.HasPosition() {
			withPos = append(withPos, a)
		}
	}

	return withPos
}

// Count returns the number of tracked assets
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.assets)
}

// PruneStale removes assets not seen within the timeout period and
// returns the number removed
func (t *Tracker) PruneStale() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-t.timeout)
	for id, a := range t.assets {
		if a.LastSeen.Before(cutoff) {
			delete(t.assets, id)
			removed++
		}
	}

	return removed
}

// Clear removes all assets from the tracker
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.assets = make(map[string]*Asset)
}

// StartPruning starts a background goroutine that periodically prunes
// stale assets until the context is cancelled
func (t *Tracker) StartPruning(ctx context.Context, pruneInterval time.Duration) {
	if pruneInterval == 0 {
		pruneInterval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.PruneStale()
			}
		}
	}()
}
