package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilroute/etharp"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), etharp.Version())
		},
	}
}
