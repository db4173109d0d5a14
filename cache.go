package etharp

import (
	"net"

	"github.com/rs/zerolog"

	"github.com/nilroute/etharp/internal/index"
	"github.com/nilroute/etharp/internal/lru"
)

// Cache is the fixed-size ARP table (spec §3). It owns the resolver's
// entire mutable state: the array of entries, and the auxiliary index and
// victim-tracking structures that keep lookups and replacement off an O(N)
// scan of that array.
type Cache struct {
	entries    []entry
	iface      *Interface
	byIP       *index.Index
	victims    *lru.Tracker
	trustIPMAC bool
	log        zerolog.Logger
}

// CacheOption configures optional Cache behavior at construction time.
type CacheOption func(*Cache)

// WithTrustIPMAC controls whether plain IP traffic snooping is allowed to
// refresh cache entries at all. It has no counterpart in the original C or
// in any example in the pack - it's an original safety valve for
// deployments that don't trust link-layer source addresses on incoming IP
// traffic (e.g. a shared segment without port security). Default true.
func WithTrustIPMAC(trust bool) CacheOption {
	return func(c *Cache) { c.trustIPMAC = trust }
}

// WithLogger attaches a zerolog.Logger for debug-level tracing of dropped
// or malformed input. The zero value logs nothing.
func WithLogger(l zerolog.Logger) CacheOption {
	return func(c *Cache) { c.log = l }
}

// NewCache constructs a Cache with size slots for iface. size must be
// positive; the spec's documented range is 4-16, but any positive size is
// accepted.
func NewCache(size int, iface *Interface, opts ...CacheOption) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidTableSize
	}

	victims, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		entries:    make([]entry, size),
		iface:      iface,
		byIP:       index.New(),
		victims:    victims,
		trustIPMAC: true,
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Size returns the number of slots in the cache.
func (c *Cache) Size() int {
	return len(c.entries)
}

// Snapshot returns a read-only copy of every non-empty entry, for
// diagnostics and tests.
func (c *Cache) Snapshot() []EntryView {
	views := make([]EntryView, 0, len(c.entries))
	for _, e := range c.entries {
		if e.isEmpty() {
			continue
		}
		ip := make(net.IP, IPv4AddrLen)
		copy(ip, e.ip[:])
		views = append(views, EntryView{
			IP:    ip,
			MAC:   append(net.HardwareAddr(nil), e.mac...),
			State: e.state.String(),
			Age:   e.age,
		})
	}
	return views
}

// LookupByMAC is a reverse lookup: given a MAC, find its stable IPv4
// mapping. It is an original addition with no counterpart in the original
// C implementation - a small linear scan over entries, not worth a second
// index given the table sizes this cache runs at.
func (c *Cache) LookupByMAC(mac net.HardwareAddr) (net.IP, bool) {
	for _, e := range c.entries {
		if e.state == stateStable && e.mac.String() == mac.String() {
			ip := make(net.IP, IPv4AddrLen)
			copy(ip, e.ip[:])
			return ip, true
		}
	}
	return nil, false
}

func toIP4(ip net.IP) ([IPv4AddrLen]byte, bool) {
	var out [IPv4AddrLen]byte
	ip4 := ip.To4()
	if ip4 == nil {
		return out, false
	}
	copy(out[:], ip4)
	return out, true
}

// findByIP returns the slot index holding ip, in any non-empty state.
func (c *Cache) findByIP(ip [IPv4AddrLen]byte) (int, bool) {
	slot, ok := c.byIP.Get(ip)
	if !ok {
		return 0, false
	}
	// defensive: the index and array must agree; if they ever drift this
	// treats it as "not found" rather than returning a stale slot.
	if c.entries[slot].ip != ip {
		return 0, false
	}
	return slot, true
}

// findSlot implements spec §4.1's entry-selection policy: first empty slot
// wins, otherwise the stable slot with the greatest age is evicted and
// reused, otherwise (every slot pending) ErrOutOfMemory.
func (c *Cache) findSlot() (int, error) {
	for i := range c.entries {
		if c.entries[i].isEmpty() {
			return i, nil
		}
	}

	victim, ok := c.victims.Oldest()
	if !ok {
		return 0, ErrOutOfMemory
	}

	c.evict(victim)
	return victim, nil
}

// evict releases and clears slot, removing it from the index and victim
// tracker. Used both for stable-entry replacement and for expiry.
func (c *Cache) evict(slot int) {
	e := &c.entries[slot]
	if e.isEmpty() {
		return
	}
	c.byIP.Delete(e.ip)
	c.victims.Remove(slot)
	e.reset()
}

// insertStable initializes slot as a fresh stable entry, per the
// empty->stable "learn-with-insert" transition.
func (c *Cache) insertStable(slot int, ip [IPv4AddrLen]byte, mac net.HardwareAddr) {
	e := &c.entries[slot]
	*e = entry{
		ip:    ip,
		mac:   append(net.HardwareAddr(nil), mac...),
		state: stateStable,
		age:   0,
	}
	c.byIP.Put(ip, slot)
	c.victims.Touch(slot)
}

// insertPending initializes slot as a fresh pending entry, per query's
// locate/create step.
func (c *Cache) insertPending(slot int, ip [IPv4AddrLen]byte) {
	e := &c.entries[slot]
	*e = entry{
		ip:    ip,
		state: statePending,
		age:   0,
	}
	c.byIP.Put(ip, slot)
}

// updateEntry implements spec §4.2's learn path. ip==0.0.0.0 is a silent
// no-op per invariant I6. Resource exhaustion on insert is silent, matching
// §7's "snoop is a pure optimization" rule - callers of updateEntry never
// see an error and must not expect one to propagate.
func (c *Cache) updateEntry(ip net.IP, mac net.HardwareAddr, allowInsert bool) {
	ip4, ok := toIP4(ip)
	if !ok || ip4 == [IPv4AddrLen]byte{} {
		return
	}

	slot, found := c.findByIP(ip4)
	if found {
		e := &c.entries[slot]
		switch e.state {
		case statePending:
			e.state = stateStable
			e.mac = append(net.HardwareAddr(nil), mac...)
			e.age = 0
			c.victims.Touch(slot)
			c.flushQueue(e, mac)
		case stateStable:
			e.mac = append(net.HardwareAddr(nil), mac...)
			e.age = 0
			c.victims.Touch(slot)
		}
		return
	}

	if !allowInsert {
		return
	}

	slot, err := c.findSlot()
	if err != nil {
		c.log.Debug().Str("iface", c.iface.Name).Msg("etharp: cache full, dropping learn-with-insert")
		return
	}
	c.insertStable(slot, ip4, mac)
}

// flushQueue drains e's queued buffer(s) in FIFO order to link_output,
// filling in the Ethernet header of each in place, per invariant I3. It is
// called exactly once, at the moment of the pending->stable transition.
func (c *Cache) flushQueue(e *entry, mac net.HardwareAddr) {
	buf := e.queued
	e.queued = nil

	for buf != nil {
		next, hasNext := buf.TailDequeue()

		payload := buf.Payload()
		if len(payload) >= EthernetHeaderLen {
			copy(payload[0:6], mac)
			copy(payload[6:12], c.iface.HardwareAddr)
			payload[12] = byte(EtherTypeIPv4 >> 8)
			payload[13] = byte(EtherTypeIPv4 & 0xff)

			if err := c.iface.LinkOutput.LinkOutput(c.iface, payload); err != nil {
				c.log.Debug().Err(err).Str("iface", c.iface.Name).Msg("etharp: link output failed while flushing queue")
			}
		}
		buf.Release()

		buf = nil
		if hasNext {
			buf = next
		}
	}
}

// Tick implements spec §4.3, the periodic aging call. It ages every slot by
// one, then expires stable entries at ARPMaxAge and pending entries at
// ARPMaxPending, releasing any queued buffers silently.
func (c *Cache) Tick() {
	for i := range c.entries {
		e := &c.entries[i]
		if e.isEmpty() {
			continue
		}

		if e.age < 255 {
			e.age++
		}

		switch {
		case e.state == stateStable && e.age >= ARPMaxAge:
			e.state = stateExpired
		case e.state == statePending && e.age >= ARPMaxPending:
			e.state = stateExpired
		}

		if e.state == stateExpired {
			c.evict(i)
		}
	}
}
