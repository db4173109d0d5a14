package etharp

import "net"

var limitedBroadcastIP = net.IPv4(255, 255, 255, 255).To4()

// Output implements spec §4.4, the resolver's public face for outbound IPv4
// traffic. It grows buf's head for an Ethernet header, then picks a
// destination MAC: broadcast, multicast, or - for unicast - delegates to
// Query after resolving off-link destinations to the configured gateway.
func (r *Resolver) Output(destIP net.IP, buf Buffer) error {
	if err := buf.GrowHead(EthernetHeaderLen); err != nil {
		buf.Release()
		return ErrBufferError
	}

	iface := r.iface
	dest4 := destIP.To4()

	if dest4 == nil || dest4.Equal(net.IPv4zero) || dest4.Equal(limitedBroadcastIP) || dest4.Equal(iface.broadcastIP()) {
		return r.sendImmediate(buf, broadcastHardwareAddr)
	}

	if isMulticast(dest4) {
		return r.sendImmediate(buf, multicastMAC(dest4))
	}

	key := dest4
	if !iface.onLink(dest4) {
		if iface.isZeroGateway() {
			buf.Release()
			return ErrNoRoute
		}
		key = iface.Gateway
	}

	return r.Query(key, buf)
}

// sendImmediate fills in the Ethernet header of an already-grown buffer and
// hands it straight to the link layer, without consulting the cache.
func (r *Resolver) sendImmediate(buf Buffer, destMAC net.HardwareAddr) error {
	payload := buf.Payload()
	if len(payload) < EthernetHeaderLen {
		buf.Release()
		return ErrBufferError
	}

	copy(payload[0:6], destMAC)
	copy(payload[6:12], r.iface.HardwareAddr)
	payload[12] = byte(EtherTypeIPv4 >> 8)
	payload[13] = byte(EtherTypeIPv4 & 0xff)

	err := r.iface.LinkOutput.LinkOutput(r.iface, payload)
	buf.Release()
	return err
}
