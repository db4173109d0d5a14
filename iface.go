package etharp

import (
	"net"
)

//go:generate mockgen -destination ./internal/mocks/mock_link_outputter.go -package mocks github.com/nilroute/etharp LinkOutputter

// LinkOutputter is the link-layer driver capability the resolver depends on
// to actually transmit a fully-formed Ethernet frame (spec §6). It is
// assumed non-blocking, and must not re-enter the Resolver synchronously.
type LinkOutputter interface {
	LinkOutput(iface *Interface, frame []byte) error
}

// LinkOutputFunc adapts a plain function to a LinkOutputter, mirroring the
// "a function value... suffices" guidance for this single-method capability.
type LinkOutputFunc func(iface *Interface, frame []byte) error

func (f LinkOutputFunc) LinkOutput(iface *Interface, frame []byte) error {
	return f(iface, frame)
}

//go:generate mockgen -destination ./internal/mocks/mock_dhcp_notifier.go -package mocks github.com/nilroute/etharp DHCPNotifier

// DHCPNotifier is the optional hook notified when an ARP reply resolves an
// address DHCP is probing (spec §4.5, "Reply" case).
type DHCPNotifier interface {
	DHCPOnReply(iface *Interface, senderIP net.IP)
}

// Interface carries everything the resolver needs to know about the single
// network interface it serves: its own address, the on-link mask, an
// optional gateway for off-link traffic, its hardware address, and the
// capability to actually put a frame on the wire. It intentionally does not
// own a socket or file descriptor - that belongs to whatever wires a
// LinkOutputter up, e.g. cmd/etharpd's raw-socket implementation.
type Interface struct {
	Name string

	// LocalIP is this interface's IPv4 address, or the zero address if
	// unconfigured (e.g. before DHCP completes).
	LocalIP net.IP

	// Netmask defines this interface's on-link network together with
	// LocalIP.
	Netmask net.IPMask

	// Gateway is the next hop for off-link destinations, or the zero
	// address if none is configured.
	Gateway net.IP

	// HardwareAddr is this interface's own Ethernet address.
	HardwareAddr net.HardwareAddr

	LinkOutput LinkOutputter
	DHCP       DHCPNotifier
}

// NewInterface validates and constructs an Interface. gateway may be nil to
// mean "no gateway configured".
func NewInterface(name string, addr *net.IPNet, hwAddr net.HardwareAddr, gateway net.IP) (*Interface, error) {
	ip4 := addr.IP.To4()
	if ip4 == nil {
		return nil, ErrNotIPv4
	}
	if len(hwAddr) != HardwareAddrLen {
		return nil, ErrUnsupportedProtocol
	}

	var gw net.IP
	if gateway != nil {
		gw4 := gateway.To4()
		if gw4 == nil {
			return nil, ErrNotIPv4
		}
		gw = gw4
	} else {
		gw = net.IPv4zero.To4()
	}

	return &Interface{
		Name:         name,
		LocalIP:      ip4,
		Netmask:      addr.Mask,
		Gateway:      gw,
		HardwareAddr: hwAddr,
	}, nil
}

// NewUnconfiguredInterface builds an Interface with no IPv4 address yet,
// for the pre-DHCP state spec §4.5 accounts for ("iface.ip = 0"). Configure
// SetLocalIP once an address becomes available.
func NewUnconfiguredInterface(name string, hwAddr net.HardwareAddr) (*Interface, error) {
	if len(hwAddr) != HardwareAddrLen {
		return nil, ErrUnsupportedProtocol
	}
	return &Interface{
		Name:         name,
		LocalIP:      net.IPv4zero.To4(),
		Netmask:      net.CIDRMask(0, 32),
		Gateway:      net.IPv4zero.To4(),
		HardwareAddr: hwAddr,
	}, nil
}

// SetLocalIP configures this interface's address and netmask after the
// fact, e.g. once DHCP completes.
func (i *Interface) SetLocalIP(addr *net.IPNet) error {
	ip4 := addr.IP.To4()
	if ip4 == nil {
		return ErrNotIPv4
	}
	i.LocalIP = ip4
	i.Netmask = addr.Mask
	return nil
}

// broadcastIP returns this interface's subnet-directed broadcast address.
func (i *Interface) broadcastIP() net.IP {
	bc := make(net.IP, net.IPv4len)
	local := i.LocalIP.To4()
	for idx := range bc {
		bc[idx] = local[idx] | ^i.Netmask[idx]
	}
	return bc
}

// onLink reports whether ip shares this interface's network per
// (ip & netmask) == (LocalIP & netmask).
func (i *Interface) onLink(ip net.IP) bool {
	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}
	local := i.LocalIP.To4()
	for idx := range ip4 {
		if ip4[idx]&i.Netmask[idx] != local[idx]&i.Netmask[idx] {
			return false
		}
	}
	return true
}

func (i *Interface) isZeroGateway() bool {
	return i.Gateway == nil || i.Gateway.Equal(net.IPv4zero)
}
