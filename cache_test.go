package etharp_test

import (
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilroute/etharp"
)

// Scenario 1: stable resolution - preload cache with a stable entry, output
// to that address should send one frame straight to the learned MAC.
func TestResolver_StableResolution(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 8, mockOut)
	peerMAC := net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x05}

	r.OnIPInput(net.IPv4(10, 0, 0, 5), peerMAC)

	var captured []byte
	mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).DoAndReturn(func(_ *etharp.Interface, frame []byte) error {
		captured = append([]byte(nil), frame...)
		return nil
	})

	err := r.Output(net.IPv4(10, 0, 0, 5), etharp.NewBuffer([]byte{0xaa, 0xbb}))
	require.NoError(t, err)

	require.Len(t, captured, etharp.EthernetHeaderLen+2)
	assert.EqualValues(t, peerMAC, net.HardwareAddr(captured[0:6]))
	assert.EqualValues(t, r.Interface().HardwareAddr, net.HardwareAddr(captured[6:12]))
	assert.EqualValues(t, []byte{0x08, 0x00}, captured[12:14])
}

// Scenario 2: an on-link but unresolved destination goes pending, queues
// the datagram, and flushes it once a reply arrives.
func TestResolver_PendingThenResolved(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 8, mockOut)

	var reqFrame, flushFrame []byte
	gomock.InOrder(
		mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).DoAndReturn(func(_ *etharp.Interface, frame []byte) error {
			reqFrame = append([]byte(nil), frame...)
			return nil
		}),
		mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).DoAndReturn(func(_ *etharp.Interface, frame []byte) error {
			flushFrame = append([]byte(nil), frame...)
			return nil
		}),
	)

	ipPayload := []byte{0x45, 0x00, 0xaa, 0xbb}
	err := r.Output(net.IPv4(10, 0, 0, 6), etharp.NewBuffer(ipPayload))
	require.NoError(t, err)

	require.Len(t, reqFrame, etharp.EthernetHeaderLen+etharp.HeaderLen)
	assert.EqualValues(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, reqFrame[0:6])

	var reqHdr etharp.Header
	require.NoError(t, reqHdr.UnmarshalBinary(reqFrame[etharp.EthernetHeaderLen:]))
	assert.Equal(t, etharp.OpRequest, reqHdr.Op)
	assert.True(t, reqHdr.TargetIP.Equal(net.IPv4(10, 0, 0, 6)))

	snap := r.Cache().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "pending", snap[0].State)

	peerMAC := net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x06}
	reply := arpReplyPayload(t, net.IPv4(10, 0, 0, 6), peerMAC, net.IPv4(10, 0, 0, 2), r.Interface().HardwareAddr)
	require.NoError(t, r.OnARPInput(etharp.NewBuffer(reply)))

	snap = r.Cache().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "stable", snap[0].State)

	require.NotNil(t, flushFrame)
	assert.EqualValues(t, peerMAC, net.HardwareAddr(flushFrame[0:6]))
	assert.Equal(t, ipPayload, flushFrame[etharp.EthernetHeaderLen:])
}

// Scenario 3: gateway indirection - an off-link destination is queried via
// the configured gateway, not the destination itself.
func TestResolver_GatewayIndirection(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 8, mockOut)

	mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).DoAndReturn(func(_ *etharp.Interface, frame []byte) error {
		var hdr etharp.Header
		require.NoError(t, hdr.UnmarshalBinary(frame[etharp.EthernetHeaderLen:]))
		assert.True(t, hdr.TargetIP.Equal(net.IPv4(10, 0, 0, 1)))
		return nil
	})

	err := r.Output(net.IPv4(203, 0, 113, 9), etharp.NewBuffer([]byte{1, 2, 3}))
	require.NoError(t, err)

	snap := r.Cache().Snapshot()
	require.Len(t, snap, 1)
	assert.True(t, snap[0].IP.Equal(net.IPv4(10, 0, 0, 1)))
	assert.Equal(t, "pending", snap[0].State)
}

// Scenario 4: no route - a zero gateway makes an off-link destination
// unreachable; the buffer is released and no frame is sent.
func TestResolver_NoRoute(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	iface := newSeedInterface(t, mockOut)
	iface.Gateway = net.IPv4zero.To4()
	cache, err := etharp.NewCache(8, iface)
	require.NoError(t, err)
	r := etharp.NewResolver(iface, cache)

	// LinkOutput must never be called.
	err = r.Output(net.IPv4(8, 8, 8, 8), etharp.NewBuffer([]byte{1}))
	assert.ErrorIs(t, err, etharp.ErrNoRoute)
	assert.Empty(t, r.Cache().Snapshot())
}

// Scenario 6: aging - a stable entry at age ARPMaxAge-1 is removed by the
// very next tick.
func TestCache_AgingExpiresStableEntry(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 8, mockOut)
	r.OnIPInput(net.IPv4(10, 0, 0, 9), net.HardwareAddr{2, 0, 0, 0, 0, 9})

	for i := uint8(0); i < etharp.ARPMaxAge-1; i++ {
		r.Tick()
	}
	require.Len(t, r.Cache().Snapshot(), 1)

	r.Tick()
	assert.Empty(t, r.Cache().Snapshot())
}

// P1: after Tick, no entry is left in the internal "expired" transitional
// state - it always either survives with a bumped age or is gone.
func TestCache_TickNeverLeavesExpiredState(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 4, mockOut)
	r.OnIPInput(net.IPv4(10, 0, 0, 10), net.HardwareAddr{2, 0, 0, 0, 0, 10})

	for i := 0; i < 300; i++ {
		r.Tick()
		for _, e := range r.Cache().Snapshot() {
			assert.NotEqual(t, "expired", e.State)
		}
	}
}

// P2: at most one entry exists per non-zero IP even under replacement
// pressure in a tiny cache.
func TestCache_AtMostOneEntryPerIP(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 2, mockOut)

	r.OnIPInput(net.IPv4(10, 0, 0, 20), net.HardwareAddr{2, 0, 0, 0, 0, 20})
	r.OnIPInput(net.IPv4(10, 0, 0, 20), net.HardwareAddr{2, 0, 0, 0, 0, 21})

	seen := map[string]int{}
	for _, e := range r.Cache().Snapshot() {
		seen[e.IP.String()]++
	}
	for ip, count := range seen {
		assert.Equalf(t, 1, count, "ip %s appeared %d times", ip, count)
	}
	// the second learn should have refreshed the MAC in place, not
	// inserted a duplicate slot.
	assert.Len(t, r.Cache().Snapshot(), 1)
}

// P4: updateEntry (reached here via OnIPInput) is a no-op for 0.0.0.0.
func TestCache_ZeroAddressIsNoOp(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 4, mockOut)
	r.OnIPInput(net.IPv4zero, net.HardwareAddr{1, 2, 3, 4, 5, 6})
	assert.Empty(t, r.Cache().Snapshot())
}

// P6: the number of non-empty entries never exceeds the table size.
func TestCache_NeverExceedsTableSize(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	const size = 3
	r := newSeedResolver(t, size, mockOut)

	for i := 0; i < 10; i++ {
		ip := net.IPv4(10, 0, 0, byte(30+i))
		mac := net.HardwareAddr{2, 0, 0, 0, 0, byte(30 + i)}
		r.OnIPInput(ip, mac)
		assert.LessOrEqual(t, len(r.Cache().Snapshot()), size)
	}
}

// Boundary (a): querying when every slot is pending returns out-of-memory.
func TestResolver_QueryOutOfMemoryWhenAllPending(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	const size = 2
	r := newSeedResolver(t, size, mockOut)

	// every emitted request is allowed to "succeed" - we only care about
	// cache admission here.
	mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, r.Query(net.IPv4(10, 0, 0, 40), nil))
	require.NoError(t, r.Query(net.IPv4(10, 0, 0, 41), nil))

	err := r.Query(net.IPv4(10, 0, 0, 42), nil)
	assert.ErrorIs(t, err, etharp.ErrOutOfMemory)
}

// Cache eviction prefers the oldest stable slot over any pending one.
func TestCache_ReplacementNeverEvictsPending(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	const size = 2
	r := newSeedResolver(t, size, mockOut)

	mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).Return(nil).AnyTimes()

	// one stable, one pending.
	r.OnIPInput(net.IPv4(10, 0, 0, 50), net.HardwareAddr{2, 0, 0, 0, 0, 50})
	require.NoError(t, r.Query(net.IPv4(10, 0, 0, 51), nil))

	// third insert must evict the stable slot, not the pending one.
	r.OnIPInput(net.IPv4(10, 0, 0, 52), net.HardwareAddr{2, 0, 0, 0, 0, 52})

	var sawPendingSurvive, sawNewStable bool
	for _, e := range r.Cache().Snapshot() {
		if e.IP.Equal(net.IPv4(10, 0, 0, 51)) && e.State == "pending" {
			sawPendingSurvive = true
		}
		if e.IP.Equal(net.IPv4(10, 0, 0, 52)) && e.State == "stable" {
			sawNewStable = true
		}
	}
	assert.True(t, sawPendingSurvive)
	assert.True(t, sawNewStable)
}

// LookupByMAC is a reverse lookup with no original-C counterpart - only
// stable entries are returned.
func TestCache_LookupByMAC(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 4, mockOut)
	mockOut.EXPECT().LinkOutput(r.Interface(), gomock.Any()).Return(nil).AnyTimes()

	peerMAC := net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x60}
	r.OnIPInput(net.IPv4(10, 0, 0, 60), peerMAC)

	ip, ok := r.Cache().LookupByMAC(peerMAC)
	require.True(t, ok)
	assert.True(t, ip.Equal(net.IPv4(10, 0, 0, 60)))

	require.NoError(t, r.Query(net.IPv4(10, 0, 0, 61), nil))
	_, ok = r.Cache().LookupByMAC(net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x61})
	assert.False(t, ok)
}

func TestCache_Size(t *testing.T) {
	mockOut, ctrl := newMockLinkOutputter(t)
	defer ctrl.Finish()

	r := newSeedResolver(t, 5, mockOut)
	assert.Equal(t, 5, r.Cache().Size())
}
