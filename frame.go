package etharp

import (
	"encoding/binary"
	"net"
)

// Header is the ARP-over-Ethernet wire header (spec §6, RFC 826), 28 octets
// wide, generalized from the teacher's ARPv4Pdu with net.IP/net.HardwareAddr
// in place of raw byte slices.
type Header struct {
	HType    uint16
	PType    uint16
	HLen     uint8
	PLen     uint8
	Op       OpCode
	SenderHW net.HardwareAddr
	SenderIP net.IP
	TargetHW net.HardwareAddr
	TargetIP net.IP
}

// IsEthernetIPv4 reports whether this header describes an Ethernet+IPv4 ARP
// exchange, the only variant this resolver understands.
func (h *Header) IsEthernetIPv4() bool {
	return h.HType == HTypeEthernet &&
		h.PType == EtherTypeIPv4 &&
		h.HLen == HardwareAddrLen &&
		h.PLen == IPv4AddrLen
}

// MarshalBinary encodes the header into its 28-byte wire representation.
func (h *Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderLen)

	binary.BigEndian.PutUint16(b[0:2], h.HType)
	binary.BigEndian.PutUint16(b[2:4], h.PType)
	b[4] = h.HLen
	b[5] = h.PLen
	binary.BigEndian.PutUint16(b[6:8], uint16(h.Op))

	copy(b[8:14], h.SenderHW)
	copy(b[14:18], h.SenderIP.To4())
	copy(b[18:24], h.TargetHW)
	copy(b[24:28], h.TargetIP.To4())

	return b, nil
}

// UnmarshalBinary decodes a 28-byte ARP-over-Ethernet header. It copies out
// of payload rather than aliasing it, so the caller may release or reuse the
// backing buffer immediately afterwards.
func (h *Header) UnmarshalBinary(payload []byte) error {
	if len(payload) < HeaderLen {
		return ErrMalformedFrame
	}

	h.HType = binary.BigEndian.Uint16(payload[0:2])
	h.PType = binary.BigEndian.Uint16(payload[2:4])
	h.HLen = payload[4]
	h.PLen = payload[5]
	h.Op = OpCode(binary.BigEndian.Uint16(payload[6:8]))

	h.SenderHW = append(net.HardwareAddr(nil), payload[8:14]...)
	h.SenderIP = append(net.IP(nil), payload[14:18]...)
	h.TargetHW = append(net.HardwareAddr(nil), payload[18:24]...)
	h.TargetIP = append(net.IP(nil), payload[24:28]...)

	return nil
}

// buildEthernetFrame prepends a 14-byte Ethernet II header to payload,
// producing the "fully-formed Ethernet frame" LinkOutputter expects.
func buildEthernetFrame(dest, src net.HardwareAddr, etherType uint16, payload []byte) []byte {
	frame := make([]byte, EthernetHeaderLen+len(payload))
	copy(frame[0:6], dest)
	copy(frame[6:12], src)
	binary.BigEndian.PutUint16(frame[12:14], etherType)
	copy(frame[14:], payload)
	return frame
}

// multicastMAC synthesizes the RFC 1112 Ethernet multicast address for an
// IPv4 multicast destination: 01:00:5e:(b2&0x7f):b3:b4.
func multicastMAC(ip net.IP) net.HardwareAddr {
	ip4 := ip.To4()
	return net.HardwareAddr{0x01, 0x00, 0x5e, ip4[1] & 0x7f, ip4[2], ip4[3]}
}

func isMulticast(ip net.IP) bool {
	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}
	return ip4[0]&0xf0 == 0xe0
}
