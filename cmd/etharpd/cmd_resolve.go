package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/mdlayher/ethernet"
	"github.com/spf13/cobra"

	"github.com/nilroute/etharp"
)

var errResolveTimeout = errors.New("etharpd: no reply within timeout")

func resolveCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "resolve <ipv4>",
		Short: "resolve one address and print its MAC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := net.ParseIP(args[0]).To4()
			if target == nil {
				return fmt.Errorf("etharpd: %q is not an ipv4 address", args[0])
			}

			r, link, err := buildResolver()
			if err != nil {
				return err
			}
			defer link.Close()

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			arpCh := make(chan inboundFrame, frameBacklog)
			go link.readLoop(ctx, ethernet.EtherTypeARP, arpCh)

			// Everything from here on - Query, OnARPInput, Cache().Snapshot()
			// - runs on this one goroutine; readLoop above only decodes
			// frames and hands them over arpCh.
			if err := r.Query(target, nil); err != nil {
				return err
			}

			ticker := time.NewTicker(50 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return errResolveTimeout
				case f := <-arpCh:
					if err := r.OnARPInput(etharp.NewBuffer(f.payload)); err != nil {
						continue
					}
				case <-ticker.C:
				}

				for _, e := range r.Cache().Snapshot() {
					if e.IP.Equal(target) && e.State == "stable" {
						fmt.Fprintln(cmd.OutOrStdout(), e.MAC)
						return nil
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "how long to wait for a reply")
	return cmd
}
