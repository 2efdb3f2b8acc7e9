package cache

import (
	"sync"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
)

// SeasonSnapshot is the read-mostly part of a season that every
// reconciliation needs.
type SeasonSnapshot struct {
	Season *repository.Season
	Prices []*repository.TicketPrice
	Events []*repository.DinnerEvent
}

// SeasonCache keeps snapshots by season id and remembers which one is active.
// Callers own invalidation: any write to a season, its prices or its events
// must Invalidate it.
type SeasonCache struct {
	mu       sync.RWMutex
	cache    map[int64]*SeasonSnapshot
	activeID int64
}

func NewSeasonCache() *SeasonCache {
	return &SeasonCache{cache: make(map[int64]*SeasonSnapshot)}
}

func (c *SeasonCache) Get(seasonID int64) (*SeasonSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, found := c.cache[seasonID]
	return snap, found
}

func (c *SeasonCache) Active() (*SeasonSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.activeID == 0 {
		return nil, false
	}
	snap, found := c.cache[c.activeID]
	return snap, found
}

func (c *SeasonCache) Set(snap *SeasonSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[snap.Season.ID] = snap
	if snap.Season.IsActive {
		c.activeID = snap.Season.ID
	} else if c.activeID == snap.Season.ID {
		c.activeID = 0
	}
	metrics.SeasonCacheItems.Set(float64(len(c.cache)))
}

func (c *SeasonCache) Invalidate(seasonID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, seasonID)
	if c.activeID == seasonID {
		c.activeID = 0
	}
	metrics.SeasonCacheItems.Set(float64(len(c.cache)))
}

// InvalidateAll drops everything, used when the active season switches.
func (c *SeasonCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[int64]*SeasonSnapshot)
	c.activeID = 0
	metrics.SeasonCacheItems.Set(0)
}

func (c *SeasonCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
