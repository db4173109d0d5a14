package etharp_test

import (
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/nilroute/etharp"
	"github.com/nilroute/etharp/internal/mocks"
)

// newSeedInterface builds the interface used across spec.md §8's seed
// scenarios: 10.0.0.2/24, hwaddr 02:00:00:00:00:02, gateway 10.0.0.1.
func newSeedInterface(t *testing.T, out etharp.LinkOutputter) *etharp.Interface {
	t.Helper()

	iface, err := etharp.NewInterface(
		"veth0",
		&net.IPNet{IP: net.IPv4(10, 0, 0, 2), Mask: net.CIDRMask(24, 32)},
		net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		net.IPv4(10, 0, 0, 1),
	)
	require.NoError(t, err)
	iface.LinkOutput = out
	return iface
}

func newSeedResolver(t *testing.T, size int, out etharp.LinkOutputter) *etharp.Resolver {
	t.Helper()

	iface := newSeedInterface(t, out)
	cache, err := etharp.NewCache(size, iface)
	require.NoError(t, err)
	return etharp.NewResolver(iface, cache)
}

func newMockLinkOutputter(t *testing.T) (*mocks.MockLinkOutputter, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockLinkOutputter(ctrl), ctrl
}

func newMockBuffer(t *testing.T) (*mocks.MockBuffer, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockBuffer(ctrl), ctrl
}

func newMockDHCPNotifier(t *testing.T) (*mocks.MockDHCPNotifier, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockDHCPNotifier(ctrl), ctrl
}

// arpRequestPayload builds a minimal ARP-over-Ethernet request payload
// (post Ethernet-header) for feeding into Resolver.OnARPInput.
func arpRequestPayload(t *testing.T, senderIP net.IP, senderMAC net.HardwareAddr, targetIP net.IP) []byte {
	t.Helper()
	h := etharp.Header{
		HType:    etharp.HTypeEthernet,
		PType:    etharp.EtherTypeIPv4,
		HLen:     etharp.HardwareAddrLen,
		PLen:     etharp.IPv4AddrLen,
		Op:       etharp.OpRequest,
		SenderHW: senderMAC,
		SenderIP: senderIP,
		TargetHW: net.HardwareAddr{0, 0, 0, 0, 0, 0},
		TargetIP: targetIP,
	}
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	return b
}

func arpReplyPayload(t *testing.T, senderIP net.IP, senderMAC net.HardwareAddr, targetIP net.IP, targetMAC net.HardwareAddr) []byte {
	t.Helper()
	h := etharp.Header{
		HType:    etharp.HTypeEthernet,
		PType:    etharp.EtherTypeIPv4,
		HLen:     etharp.HardwareAddrLen,
		PLen:     etharp.IPv4AddrLen,
		Op:       etharp.OpReply,
		SenderHW: senderMAC,
		SenderIP: senderIP,
		TargetHW: targetMAC,
		TargetIP: targetIP,
	}
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	return b
}
