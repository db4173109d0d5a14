package etharp

import "github.com/rs/zerolog"

// Resolver ties one Interface to its Cache and is the type every public
// operation in spec §4 hangs off, per the "Design Notes" suggestion to
// parameterize operations by a handle instead of relying on a package-level
// singleton table.
type Resolver struct {
	iface *Interface
	cache *Cache
}

// NewResolver builds a Resolver for iface backed by cache. cache must have
// been constructed against the same iface.
func NewResolver(iface *Interface, cache *Cache) *Resolver {
	return &Resolver{iface: iface, cache: cache}
}

// Interface returns the interface this resolver serves.
func (r *Resolver) Interface() *Interface {
	return r.iface
}

// Cache returns the underlying ARP cache, mainly for diagnostics
// (Cache.Snapshot, Cache.LookupByMAC).
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// SetLogger attaches a structured logger used for §7's debug-level traces
// of dropped or malformed input.
func (r *Resolver) SetLogger(l zerolog.Logger) {
	r.cache.log = l
}

// Tick runs one aging pass over the cache (spec §4.3). The host is expected
// to call this roughly every 10 seconds.
func (r *Resolver) Tick() {
	r.cache.Tick()
}
