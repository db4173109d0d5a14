package main

import (
	"github.com/spf13/cobra"
)

func announceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "announce",
		Short: "send a gratuitous ARP announcing this interface's address",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, link, err := buildResolver()
			if err != nil {
				return err
			}
			defer link.Close()

			return r.AnnounceGratuitous()
		},
	}
}
