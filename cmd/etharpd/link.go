package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"

	"github.com/mdlayher/ethernet"
	"github.com/mdlayher/raw"
	"github.com/rs/zerolog/log"

	"github.com/nilroute/etharp"
)

// rawLink is a LinkOutputter backed by AF_PACKET sockets, one per Ethernet
// protocol this daemon cares about, generalized from the teacher's
// InterfaceConfig.SetupAndListen/WriteFrame.
type rawLink struct {
	ifi   *net.Interface
	conns map[ethernet.EtherType]net.PacketConn
}

func newRawLink(ifaceName string) (*rawLink, error) {
	ifi, err := net.InterfaceByName(ifaceName)
	if err != nil {
		return nil, fmt.Errorf("etharpd: resolving interface %q: %w", ifaceName, err)
	}

	conns := make(map[ethernet.EtherType]net.PacketConn, 2)
	for _, et := range []ethernet.EtherType{ethernet.EtherTypeARP, ethernet.EtherTypeIPv4} {
		conn, err := raw.ListenPacket(ifi, uint16(et), nil)
		if err != nil {
			for _, c := range conns {
				_ = c.Close()
			}
			return nil, fmt.Errorf("etharpd: opening raw socket for %v: %w", et, err)
		}
		conns[et] = conn
	}

	return &rawLink{ifi: ifi, conns: conns}, nil
}

// LinkOutput implements etharp.LinkOutputter. frame is a complete Ethernet
// II frame; the destination conn is picked by the EtherType already encoded
// in it at bytes [12:14].
func (l *rawLink) LinkOutput(_ *etharp.Interface, frame []byte) error {
	if len(frame) < etharp.EthernetHeaderLen {
		return etharp.ErrMalformedFrame
	}

	et := ethernet.EtherType(binary.BigEndian.Uint16(frame[12:14]))
	conn, ok := l.conns[et]
	if !ok {
		return fmt.Errorf("etharpd: no raw socket open for ethertype %v", et)
	}

	_, err := conn.WriteTo(frame, &raw.Addr{HardwareAddr: net.HardwareAddr(frame[0:6])})
	return err
}

func (l *rawLink) Close() error {
	var first error
	for _, c := range l.conns {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// inboundFrame is a decoded Ethernet frame handed from a readLoop to the one
// goroutine that owns the Resolver. payload is a copy, safe to read after
// readLoop has moved on to its next iteration.
type inboundFrame struct {
	source  net.HardwareAddr
	payload []byte
}

// readLoop reads and decodes frames of one EtherType off the wire and pushes
// them onto out until ctx is canceled. It never touches a *etharp.Resolver
// itself - decoding is the only work done on this goroutine, so every call
// into the Resolver can be serialized through a single consumer draining
// out, satisfying the resolver's single-producer/single-consumer contract
// without adding locking inside the library. Generalized from the teacher's
// readFramesFromConn, split from the per-protocol serve loops it used to
// feed directly.
func (l *rawLink) readLoop(ctx context.Context, et ethernet.EtherType, out chan<- inboundFrame) {
	conn := l.conns[et]
	buf := make([]byte, l.ifi.MTU+etharp.EthernetHeaderLen)
	var f ethernet.Frame

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("etharpd: failed to read frame")
			continue
		}

		if err := f.UnmarshalBinary(buf[:n]); err != nil {
			log.Debug().Err(err).Msg("etharpd: failed to unmarshal ethernet frame")
			continue
		}

		payload := append([]byte(nil), f.Payload...)

		select {
		case out <- inboundFrame{source: f.Source, payload: payload}:
		case <-ctx.Done():
			return
		}
	}
}
