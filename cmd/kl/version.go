// File: cmd/kl/version.go
// Brief: kl version subcommand.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/kl/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
