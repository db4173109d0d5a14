package etharp

import "net"

// Query implements spec §4.6. It always emits exactly one ARP request for
// targetIP, then locates or creates a cache entry for it, then - if buf is
// non-nil - either transmits buf immediately (entry already stable) or
// queues it (entry pending), per the fixed operation order the spec
// prescribes.
//
// buf, if provided, must already have EthernetHeaderLen bytes of headroom
// reserved via Buffer.GrowHead - Output does this before delegating here;
// callers invoking Query directly (e.g. AnnounceGratuitous) pass nil.
func (r *Resolver) Query(targetIP net.IP, buf Buffer) error {
	iface := r.iface

	if err := r.emitRequest(targetIP); err != nil {
		r.cache.log.Debug().Err(err).Str("iface", iface.Name).Msg("etharp: failed to emit arp request")
	}

	ip4, ok := toIP4(targetIP)
	if !ok {
		if buf != nil {
			buf.Release()
		}
		return ErrNotIPv4
	}

	slot, found := r.cache.findByIP(ip4)
	if !found {
		var err error
		slot, err = r.cache.findSlot()
		if err != nil {
			if buf != nil {
				buf.Release()
			}
			return ErrOutOfMemory
		}
		r.cache.insertPending(slot, ip4)
	}

	if buf == nil {
		return nil
	}

	e := &r.cache.entries[slot]

	switch e.state {
	case stateStable:
		payload := buf.Payload()
		if len(payload) < EthernetHeaderLen {
			buf.Release()
			return ErrBufferError
		}
		copy(payload[0:6], e.mac)
		copy(payload[6:12], iface.HardwareAddr)
		payload[12] = byte(EtherTypeIPv4 >> 8)
		payload[13] = byte(EtherTypeIPv4 & 0xff)

		err := iface.LinkOutput.LinkOutput(iface, payload)
		buf.Release()
		return err

	case statePending:
		owned, err := buf.Take()
		if err != nil {
			buf.Release()
			return ErrOutOfMemory
		}
		if e.queued == nil {
			e.queued = owned
		} else {
			e.queued.TailEnqueue(owned)
		}
		buf.Release()
		return nil

	default:
		// unreachable: the slot was just created or found in pending/stable
		// state above.
		buf.Release()
		return nil
	}
}

// AnnounceGratuitous implements spec §4.5's gratuitous ARP: a request with
// sender and target IPv4 both set to the local address, informing peers of
// this interface's mapping or of an address change (RFC 3220 §4.6).
func (r *Resolver) AnnounceGratuitous() error {
	return r.Query(r.iface.LocalIP, nil)
}

// emitRequest builds and transmits the single ARP request every Query call
// makes, independent of cache state (spec §4.6 step 1).
func (r *Resolver) emitRequest(targetIP net.IP) error {
	iface := r.iface

	hdr := Header{
		HType:    HTypeEthernet,
		PType:    EtherTypeIPv4,
		HLen:     HardwareAddrLen,
		PLen:     IPv4AddrLen,
		Op:       OpRequest,
		SenderHW: iface.HardwareAddr,
		SenderIP: iface.LocalIP,
		TargetHW: emptyHardwareAddr,
		TargetIP: targetIP,
	}

	bin, err := hdr.MarshalBinary()
	if err != nil {
		return err
	}

	frame := buildEthernetFrame(broadcastHardwareAddr, iface.HardwareAddr, EtherTypeARP, bin)
	return iface.LinkOutput.LinkOutput(iface, frame)
}
