// File: cmd/kl/ui.go
// Brief: kl ui subcommand, the interactive pod browser.

package main

import (
	"github.com/spf13/cobra"

	"github.com/example/kl/internal/kube"
	"github.com/example/kl/internal/ui"
)

func newUICommand(kubeconfigPath, kubeContext, logLevel *string) *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:           "ui",
		Aliases:       []string{"browse"},
		Short:         "Browse pods interactively",
		Long:          "Open a full-screen pod browser with live status refresh and a per-pod detail view.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := kube.New(*kubeconfigPath, *kubeContext)
			if err != nil {
				return err
			}
			ns := resolveNamespace(namespace, client.Namespace)
			return ui.Run(cmd.Context(), client, ns)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace to browse (defaults to the kubeconfig context namespace)")
	return cmd
}
