package etharp

import "errors"

var (
	// ErrOutOfMemory is returned when no buffer could be allocated, or the
	// cache is full and every slot is pending (none can be evicted).
	ErrOutOfMemory = errors.New("etharp: out of memory")

	// ErrBufferError is returned when the Ethernet header could not be
	// reserved in front of an outbound payload.
	ErrBufferError = errors.New("etharp: unable to reserve header space in buffer")

	// ErrNoRoute is returned when an off-link destination has no configured
	// gateway to fall back to.
	ErrNoRoute = errors.New("etharp: no route to host")

	// ErrDropPdu signals that an inbound frame was well-formed but called
	// for no action; OnARPInput returns it for a request not addressed to
	// this interface and for an unknown opcode.
	ErrDropPdu = errors.New("etharp: no action for given pdu, dropping")

	// ErrMalformedFrame is returned by the codec when a frame is too short
	// or otherwise fails to parse; ARP input handling drops such frames.
	ErrMalformedFrame = errors.New("etharp: malformed arp frame")

	// ErrUnsupportedProtocol is returned by OnARPInput for frames that are
	// not Ethernet+IPv4 ARP, and by the Interface constructors for a
	// hardware address that is not 6 bytes long.
	ErrUnsupportedProtocol = errors.New("etharp: unsupported hardware or protocol type, requires ethernet+ipv4")

	// ErrNotIPv4 is returned by constructors given a non-IPv4 net.IP.
	ErrNotIPv4 = errors.New("etharp: address is not an ipv4 address")

	// ErrNoLinkOutput names the condition of an Interface with no
	// LinkOutputter attached. No function in this package returns it: the
	// Resolver calls Interface.LinkOutput without a nil check, so using a
	// Resolver before a LinkOutputter is attached panics.
	ErrNoLinkOutput = errors.New("etharp: interface has no link output capability configured")

	// ErrInvalidTableSize is returned by NewCache for a non-positive size.
	ErrInvalidTableSize = errors.New("etharp: cache table size must be positive")
)
