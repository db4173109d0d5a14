package etharp_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilroute/etharp"
)

func TestHeader_RoundTrip(t *testing.T) {
	in := etharp.Header{
		HType:    etharp.HTypeEthernet,
		PType:    etharp.EtherTypeIPv4,
		HLen:     etharp.HardwareAddrLen,
		PLen:     etharp.IPv4AddrLen,
		Op:       etharp.OpRequest,
		SenderHW: net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		SenderIP: net.IPv4(10, 0, 0, 2),
		TargetHW: net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		TargetIP: net.IPv4(10, 0, 0, 6),
	}

	bin, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bin, etharp.HeaderLen)

	var out etharp.Header
	require.NoError(t, out.UnmarshalBinary(bin))

	assert.Equal(t, in.HType, out.HType)
	assert.Equal(t, in.PType, out.PType)
	assert.Equal(t, in.HLen, out.HLen)
	assert.Equal(t, in.PLen, out.PLen)
	assert.Equal(t, in.Op, out.Op)
	assert.EqualValues(t, in.SenderHW, out.SenderHW)
	assert.True(t, in.SenderIP.Equal(out.SenderIP))
	assert.EqualValues(t, in.TargetHW, out.TargetHW)
	assert.True(t, in.TargetIP.Equal(out.TargetIP))
	assert.True(t, out.IsEthernetIPv4())
}

func TestHeader_UnmarshalTooShort(t *testing.T) {
	var h etharp.Header
	err := h.UnmarshalBinary(make([]byte, etharp.HeaderLen-1))
	assert.ErrorIs(t, err, etharp.ErrMalformedFrame)
}

func TestHeader_IsEthernetIPv4Rejects(t *testing.T) {
	h := etharp.Header{HType: 2, PType: etharp.EtherTypeIPv4, HLen: etharp.HardwareAddrLen, PLen: etharp.IPv4AddrLen}
	assert.False(t, h.IsEthernetIPv4())
}
