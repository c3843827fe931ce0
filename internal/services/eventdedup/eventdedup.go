package eventdedup

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Deduplicator remembers webhook event ids for a while so redelivered events can be skipped.
type Deduplicator struct {
	cache *cache.Cache
}

// New creates a Deduplicator that forgets ids after ttl.
func New(ttl time.Duration) *Deduplicator {
	return &Deduplicator{
		cache: cache.New(ttl, 2*ttl),
	}
}

// FirstSeen records eventID and reports whether it had not been recorded before.
// An empty id is always reported as first seen.
func (d *Deduplicator) FirstSeen(eventID string) bool {
	if eventID == "" {
		return true
	}
	// Add fails when the key is already present and unexpired.
	return d.cache.Add(eventID, struct{}{}, cache.DefaultExpiration) == nil
}

// Forget drops eventID so a later delivery is processed again.
func (d *Deduplicator) Forget(eventID string) {
	d.cache.Delete(eventID)
}
