package main

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/nilroute/etharp"
)

var (
	ifaceSpec     string
	traceEnabled  bool
	tableSize     int
)

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "etharpd",
		Short:             "a single-interface ARP resolver daemon",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.PersistentFlags().StringVarP(&ifaceSpec, "iface", "i", "",
		"interface config, "+ifaceConfigFormatString)
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false, "log every outbound frame")
	rootCmd.PersistentFlags().IntVar(&tableSize, "table-size", etharp.DefaultTableSize, "ARP cache slot count")

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(runCommand())
	rootCmd.AddCommand(announceCommand())
	rootCmd.AddCommand(resolveCommand())
	rootCmd.AddCommand(tableCommand())

	return rootCmd
}

// buildResolver wires an Interface, Cache, Resolver and rawLink together
// from the --iface/--table-size/--trace flags shared by every subcommand.
func buildResolver() (*etharp.Resolver, *rawLink, error) {
	name, addr, gateway, err := parseIfaceSpec(ifaceSpec)
	if err != nil {
		return nil, nil, err
	}

	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return nil, nil, err
	}

	iface, err := etharp.NewInterface(name, addr, ifi.HardwareAddr, gateway)
	if err != nil {
		return nil, nil, err
	}

	link, err := newRawLink(name)
	if err != nil {
		return nil, nil, err
	}

	var out etharp.LinkOutputter = link
	if traceEnabled {
		out = newTracingLink(link)
	}
	iface.LinkOutput = out

	cache, err := etharp.NewCache(tableSize, iface)
	if err != nil {
		_ = link.Close()
		return nil, nil, err
	}

	return etharp.NewResolver(iface, cache), link, nil
}
