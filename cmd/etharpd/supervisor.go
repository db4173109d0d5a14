package main

import (
	"context"
	"net"
	"time"

	"github.com/mdlayher/ethernet"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nilroute/etharp"
)

// tickInterval mirrors the original's documented ~10 second aging period
// (ARPMaxAge ticks at 10s intervals gives the 20 minute stable-entry
// lifetime the constant's doc comment describes).
const tickInterval = 10 * time.Second

// frameBacklog bounds how many decoded frames a readLoop may queue ahead of
// the owning goroutine before it starts blocking the socket read.
const frameBacklog = 64

// runSupervisor starts the ARP and IPv4-snoop read loops and the aging
// ticker, and blocks until ctx is canceled or one of them fails. Apart from
// the gratuitous announce sent before that loop starts, only the select
// loop below ever calls into r or r.Cache(); the two readLoop
// goroutines started first only decode frames and hand them over a channel,
// so the Resolver's single-producer/single-consumer contract holds without
// any locking inside the library itself. Generalized from the teacher's
// LinkLayerListener.ListenAndServe.
func runSupervisor(ctx context.Context, r *etharp.Resolver, link *rawLink) error {
	g, ctx := errgroup.WithContext(ctx)

	arpCh := make(chan inboundFrame, frameBacklog)
	ipCh := make(chan inboundFrame, frameBacklog)

	g.Go(func() error {
		link.readLoop(ctx, ethernet.EtherTypeARP, arpCh)
		return ctx.Err()
	})

	g.Go(func() error {
		link.readLoop(ctx, ethernet.EtherTypeIPv4, ipCh)
		return ctx.Err()
	})

	if err := r.AnnounceGratuitous(); err != nil {
		log.Warn().Err(err).Msg("etharpd: gratuitous announce failed")
	}

	g.Go(func() error {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case f := <-arpCh:
				if err := r.OnARPInput(etharp.NewBuffer(f.payload)); err != nil {
					log.Debug().Err(err).Msg("etharpd: dropped inbound arp frame")
				}
			case f := <-ipCh:
				if len(f.payload) < 20 {
					continue
				}
				r.OnIPInput(net.IP(f.payload[12:16]), f.source)
			case <-ticker.C:
				r.Tick()
				log.Debug().Int("entries", len(r.Cache().Snapshot())).Msg("etharpd: aged cache")
			}
		}
	})

	return g.Wait()
}
