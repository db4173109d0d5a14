package etharp

import "net"

// OnIPInput is the IP-packet snoop: called by the IP layer above before it
// processes an inbound frame, letting the resolver opportunistically learn
// the sender's mapping from passing traffic. It never fails visibly and
// never touches buf - callers pass just the two fields this needs.
//
// The hardware-address-length check is an original guard, not present in
// the original C's etharp_ip_input (which trusts its caller's address
// length implicitly); added here because this entry point takes a bare
// net.HardwareAddr from an arbitrary caller rather than a length-checked C
// struct field.
func (r *Resolver) OnIPInput(srcIP net.IP, srcMAC net.HardwareAddr) {
	if len(srcMAC) != HardwareAddrLen {
		return
	}
	if !r.cache.trustIPMAC {
		return
	}
	if !r.iface.onLink(srcIP) {
		return
	}
	r.cache.updateEntry(srcIP, srcMAC, true)
}

// OnARPInput implements spec §4.5's ARP frame input. buf is owned by this
// call and is released before it returns, regardless of outcome. buf's
// payload is the ARP-over-Ethernet header alone (28 bytes); the caller is
// expected to have already stripped the 14-byte Ethernet header, mirroring
// how link-layer demultiplexing hands ARP payloads to this resolver.
func (r *Resolver) OnARPInput(buf Buffer) error {
	defer buf.Release()

	iface := r.iface
	payload := buf.Payload()

	if len(payload) < HeaderLen {
		r.cache.log.Debug().Str("iface", iface.Name).Msg("etharp: dropping short arp frame")
		return ErrMalformedFrame
	}

	var hdr Header
	if err := hdr.UnmarshalBinary(payload); err != nil {
		r.cache.log.Debug().Err(err).Str("iface", iface.Name).Msg("etharp: failed to parse arp header")
		return err
	}

	if !hdr.IsEthernetIPv4() {
		r.cache.log.Debug().Str("iface", iface.Name).Msg("etharp: dropping unsupported hardware/protocol arp frame")
		return ErrUnsupportedProtocol
	}

	forUs := !iface.LocalIP.Equal(net.IPv4zero) && iface.LocalIP.Equal(hdr.TargetIP)

	r.cache.updateEntry(hdr.SenderIP, hdr.SenderHW, forUs)

	switch hdr.Op {
	case OpRequest:
		if forUs {
			return r.replyTo(&hdr)
		}
		if iface.LocalIP.Equal(net.IPv4zero) {
			// unconfigured interface: silently ignore requests for anyone
			return nil
		}
		return ErrDropPdu

	case OpReply:
		if forUs && iface.DHCP != nil {
			iface.DHCP.DHCPOnReply(iface, hdr.SenderIP)
		}
		return nil

	default:
		return ErrDropPdu
	}
}

// replyTo builds and transmits an ARP reply to req, which must be a request
// targeting this interface's address.
func (r *Resolver) replyTo(req *Header) error {
	iface := r.iface

	reply := Header{
		HType:    HTypeEthernet,
		PType:    EtherTypeIPv4,
		HLen:     HardwareAddrLen,
		PLen:     IPv4AddrLen,
		Op:       OpReply,
		SenderHW: iface.HardwareAddr,
		SenderIP: iface.LocalIP,
		TargetHW: req.SenderHW,
		TargetIP: req.SenderIP,
	}

	bin, err := reply.MarshalBinary()
	if err != nil {
		return err
	}

	frame := buildEthernetFrame(req.SenderHW, iface.HardwareAddr, EtherTypeARP, bin)
	return iface.LinkOutput.LinkOutput(iface, frame)
}
