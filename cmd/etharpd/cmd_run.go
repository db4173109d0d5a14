package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "resolve addresses on the configured interface until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, link, err := buildResolver()
			if err != nil {
				return err
			}
			defer link.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				log.Info().Msg("etharpd: shutdown requested")
				cancel()
			}()

			log.Info().Str("iface", r.Interface().Name).Msg("etharpd: serving")
			err = runSupervisor(ctx, r, link)
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}
