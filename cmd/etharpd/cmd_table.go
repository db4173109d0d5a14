package main

import (
	"context"
	"fmt"
	"net"
	"text/tabwriter"
	"time"

	"github.com/mdlayher/ethernet"
	"github.com/spf13/cobra"

	"github.com/nilroute/etharp"
)

// tableCommand is generalized from the teacher's cmd_interfaces.go listCmd,
// which dumps interface state through the same tabwriter pattern.
func tableCommand() *cobra.Command {
	var settle time.Duration
	var byMAC string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "listen briefly, then dump the ARP cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, link, err := buildResolver()
			if err != nil {
				return err
			}
			defer link.Close()

			ctx, cancel := context.WithTimeout(context.Background(), settle)
			defer cancel()

			arpCh := make(chan inboundFrame, frameBacklog)
			ipCh := make(chan inboundFrame, frameBacklog)
			go link.readLoop(ctx, ethernet.EtherTypeARP, arpCh)
			go link.readLoop(ctx, ethernet.EtherTypeIPv4, ipCh)

			// This loop is the only place touching r or r.Cache(); the two
			// readLoop goroutines above only decode frames onto their
			// channels.
		drain:
			for {
				select {
				case <-ctx.Done():
					break drain
				case f := <-arpCh:
					_ = r.OnARPInput(etharp.NewBuffer(f.payload))
				case f := <-ipCh:
					if len(f.payload) < 20 {
						continue
					}
					r.OnIPInput(net.IP(f.payload[12:16]), f.source)
				}
			}

			if byMAC != "" {
				mac, err := net.ParseMAC(byMAC)
				if err != nil {
					return fmt.Errorf("etharpd: %q is not a MAC address: %w", byMAC, err)
				}
				ip, ok := r.Cache().LookupByMAC(mac)
				if !ok {
					return fmt.Errorf("etharpd: no stable entry for %s", mac)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ip)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 2, 4, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "IP", "MAC", "STATE", "AGE")
			for _, e := range r.Cache().Snapshot() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.IP, e.MAC, e.State, e.Age)
			}
			return w.Flush()
		},
	}

	cmd.Flags().DurationVar(&settle, "settle", 3*time.Second, "how long to listen before dumping")
	cmd.Flags().StringVar(&byMAC, "by-mac", "", "print only the IP stably bound to this MAC address")
	return cmd
}
