package main

import (
	"errors"
	"net"
	"strings"

	"github.com/nilroute/etharp"
)

const ifaceConfigFormatString = "interfaceName:ipv4/mask[,gateway]"

var errInvalidIfaceConfig = errors.New("etharpd: interface config must be " + ifaceConfigFormatString)

// parseIfaceSpec parses the --iface flag, generalized from the teacher's
// InterfaceConfig.ParseInterfaceConfig to also carry an optional gateway.
func parseIfaceSpec(spec string) (name string, addr *net.IPNet, gateway net.IP, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return "", nil, nil, errInvalidIfaceConfig
	}
	name = parts[0]

	rest := strings.SplitN(parts[1], ",", 2)

	ip, ipNet, err := net.ParseCIDR(rest[0])
	if err != nil {
		return "", nil, nil, err
	}
	ipNet.IP = ip

	if len(rest) == 2 && rest[1] != "" {
		gateway = net.ParseIP(rest[1])
		if gateway == nil || gateway.To4() == nil {
			return "", nil, nil, etharp.ErrNotIPv4
		}
	}

	return name, ipNet, gateway, nil
}
