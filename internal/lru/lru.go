// Package lru tracks recency of refresh for stable cache slots, so the ARP
// cache's find-a-victim path can retrieve "the stable slot with the
// greatest age" in O(1) instead of scanning every slot on every insertion
// under pressure (spec §4.1, find_slot).
package lru

import (
	lru "github.com/hashicorp/golang-lru"
)

// Tracker orders stable slot indices by recency of their last Touch call.
// The least recently touched slot is the one find_slot should evict, since
// age only ever resets on a touch (entry creation or MAC refresh).
type Tracker struct {
	c *lru.Cache
}

// New returns a Tracker with room for size slots. size should match the
// cache's table size: every stable slot is tracked at most once.
func New(size int) (*Tracker, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Tracker{c: c}, nil
}

// Touch marks slot as just-refreshed, moving it to the most-recently-used
// position.
func (t *Tracker) Touch(slot int) {
	t.c.Add(slot, struct{}{})
}

// Remove stops tracking slot, e.g. once it has been evicted or expired.
func (t *Tracker) Remove(slot int) {
	t.c.Remove(slot)
}

// Oldest returns the least recently touched tracked slot, if any.
func (t *Tracker) Oldest() (int, bool) {
	key, _, ok := t.c.GetOldest()
	if !ok {
		return 0, false
	}
	return key.(int), true
}
