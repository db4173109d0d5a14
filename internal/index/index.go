// Package index provides an O(1) IPv4-to-slot index for the ARP cache,
// replacing the linear "search the cache for an entry with matching ip"
// scan the original C implementation performs on every learn and query
// call. Slot counts stay small (typically 4-16) so the scan was never a
// real bottleneck, but the index is cheap and keeps the cache's hot paths
// off a for-loop.
package index

import (
	"github.com/cespare/xxhash/v2"
)

const bucketCount = 64

type entry struct {
	ip   [4]byte
	slot int
}

// Index maps a 4-byte IPv4 address to the cache slot index that holds it.
// It is bucketed by xxhash of the address rather than backed directly by a
// Go map so that collisions are resolved explicitly against the stored key,
// mirroring a hand-rolled hash table rather than leaning entirely on the
// runtime map implementation.
type Index struct {
	buckets [bucketCount][]entry
}

// New returns an empty Index.
func New() *Index {
	return &Index{}
}

func (idx *Index) bucketFor(ip [4]byte) *[]entry {
	h := xxhash.Sum64(ip[:]) % bucketCount
	return &idx.buckets[h]
}

// Put records that ip lives in slot, overwriting any prior mapping for ip.
func (idx *Index) Put(ip [4]byte, slot int) {
	b := idx.bucketFor(ip)
	for i := range *b {
		if (*b)[i].ip == ip {
			(*b)[i].slot = slot
			return
		}
	}
	*b = append(*b, entry{ip: ip, slot: slot})
}

// Get returns the slot holding ip, if any.
func (idx *Index) Get(ip [4]byte) (int, bool) {
	b := idx.bucketFor(ip)
	for _, e := range *b {
		if e.ip == ip {
			return e.slot, true
		}
	}
	return 0, false
}

// Delete removes any mapping for ip.
func (idx *Index) Delete(ip [4]byte) {
	b := idx.bucketFor(ip)
	for i := range *b {
		if (*b)[i].ip == ip {
			*b = append((*b)[:i], (*b)[i+1:]...)
			return
		}
	}
}
