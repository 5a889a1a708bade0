// File: cmd/kl/main.go
// Brief: kl entrypoint and root command wiring.

// main.go bootstraps kl: it builds the root Cobra command and executes it
// with a signal-aware context so an interrupt tears down every log stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/example/kl/internal/config"
	"github.com/example/kl/internal/ui"
)

func main() {
	initKlogFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()
	var kubeconfigPath string
	var kubeContext string
	logLevel := "info"

	viper.SetEnvPrefix("KL")
	viper.AutomaticEnv()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/kl")
	// The config file is optional; flags and env always win.
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:           "kl",
		Short:         "Tail and browse Kubernetes pod logs",
		Long:          "kl streams logs from many pods at once with per-pod colors and regex highlighting, and ships an interactive pod browser.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("NO_COLOR") != "" {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&kubeconfigPath, "kubeconfig", "k", "", "Path to the kubeconfig file to use for requests")
	cmd.PersistentFlags().StringVarP(&kubeContext, "context", "K", "", "Name of the kubeconfig context to use")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for kl diagnostics (debug, info, warn, error)")

	cmd.AddCommand(newLogsCommand(opts, &kubeconfigPath, &kubeContext, &logLevel))
	cmd.AddCommand(newUICommand(&kubeconfigPath, &kubeContext, &logLevel))
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// initKlogFlags keeps client-go's klog output quiet unless explicitly raised
// via KL_KUBE_LOG_LEVEL.
func initKlogFlags() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")
	_ = fs.Set("stderrthreshold", "ERROR")
	if val := os.Getenv("KL_KUBE_LOG_LEVEL"); val != "" {
		_ = fs.Set("v", val)
	}
}

// resolveNamespace picks the namespace in precedence order: explicit flag,
// kubeconfig context namespace, KL_NAMESPACE, then "default".
func resolveNamespace(flagValue, contextValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if contextValue != "" {
		return contextValue
	}
	if env := viper.GetString("namespace"); env != "" {
		return env
	}
	return "default"
}

// applyColorMode maps the --color flag onto fatih/color's global switch.
// Auto colorizes only when out is a terminal.
func applyColorMode(mode string, out io.Writer) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !ui.IsTerminal(out)
	}
}
