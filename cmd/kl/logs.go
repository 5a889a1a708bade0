// File: cmd/kl/logs.go
// Brief: kl logs subcommand, fan-out and single-pod tailing plus the picker.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/kl/internal/config"
	"github.com/example/kl/internal/kube"
	"github.com/example/kl/internal/logging"
	"github.com/example/kl/internal/tailer"
	"github.com/example/kl/internal/ui"
)

func newLogsCommand(opts *config.Options, kubeconfigPath, kubeContext, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs [PATTERN]",
		Aliases: []string{"tail"},
		Short:   "Tail logs from pods matching a name pattern",
		Long: `Tail logs from every pod whose name matches PATTERN, each prefixed with
the pod name in its own color. With --pod a single pod is tailed without a
prefix. With neither, kl lists the pods in the namespace and asks which one
to tail.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.PodQuery = args[0]
			}
			opts.KubeConfigPath = *kubeconfigPath
			opts.Context = *kubeContext
			return runLogs(cmd, opts, *logLevel)
		},
	}
	opts.AddFlags(cmd)
	return cmd
}

func runLogs(cmd *cobra.Command, opts *config.Options, logLevel string) error {
	if !cmd.Flags().Changed("tail") {
		if raw := viper.GetString("tail"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid tail default %q: %w", raw, err)
			}
			opts.TailLines = n
		}
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	applyColorMode(opts.ColorMode, cmd.OutOrStdout())

	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}

	client, err := kube.New(opts.KubeConfigPath, opts.Context)
	if err != nil {
		return err
	}
	namespace := resolveNamespace(opts.Namespace, client.Namespace)

	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	var pods []string
	fanOut := false
	switch {
	case opts.PodName != "":
		pods = []string{opts.PodName}
	case opts.PodRegex != nil:
		pods, err = tailer.Select(ctx, client, namespace, opts.PodRegex)
		if err != nil {
			return err
		}
		if len(pods) == 0 {
			fmt.Fprintf(stderr, "No pods matched %q in namespace %s\n", opts.PodQuery, namespace)
			return nil
		}
		fmt.Fprintf(stderr, "Tailing %d pods in %s: %s\n", len(pods), namespace, podListSummary(pods, stderr))
		fanOut = true
	default:
		pod, pickErr := pickPod(ctx, cmd.InOrStdin(), stderr, client, namespace)
		if pickErr != nil {
			return pickErr
		}
		if pod == "" {
			return nil
		}
		pods = []string{pod}
	}

	renderer := tailer.NewRenderer(cmd.OutOrStdout(), logger, fanOut, fanOut)
	assigner := tailer.NewAssigner(tailer.DefaultColorPalette(), rand.New(rand.NewSource(time.Now().UnixNano())))
	t := tailer.New(client, tailer.Config{
		Namespace:  namespace,
		Pods:       pods,
		TailLines:  opts.TailLines,
		Follow:     opts.Follow,
		Highlight:  tailer.HighlightFromRegexp(opts.HighlightRegex),
		FilterOnly: opts.FilterOnly,
	}, renderer, assigner, logger)

	results, runErr := t.Run(ctx)
	for _, res := range results {
		if res.State == tailer.StateFailed && res.Err != nil {
			fmt.Fprintf(stderr, "Warning: %s: %v\n", res.Pod, res.Err)
		}
	}
	if runErr != nil {
		logger.V(1).Info("tail finished with failures", "error", runErr.Error())
	}
	stats := client.RequestStats()
	logger.V(1).Info("api requests", "count", stats.Count, "avg", stats.Avg().String(), "max", stats.Max.String())
	return nil
}

// pickPod lists the pods in namespace, prints a numbered menu, and reads the
// chosen index from in. An empty namespace yields no pod and no error.
func pickPod(ctx context.Context, in io.Reader, out io.Writer, lister tailer.PodLister, namespace string) (string, error) {
	names, err := tailer.Select(ctx, lister, namespace, nil)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "No pods found in namespace %s\n", namespace)
		return "", nil
	}
	fmt.Fprintf(out, "Pods in %s:\n", namespace)
	for i, name := range names {
		fmt.Fprintf(out, "  %d) %s\n", i+1, name)
	}
	fmt.Fprint(out, "Select a pod: ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}
	choice, err := parseSelection(line, len(names))
	if err != nil {
		return "", err
	}
	return names[choice-1], nil
}

// podListSummary joins pod names for the tailing announcement, eliding the
// tail of the list when it would wrap a narrow terminal.
func podListSummary(pods []string, out io.Writer) string {
	joined := strings.Join(pods, ", ")
	width, ok := ui.TerminalWidth(out)
	if !ok || len(joined) <= width {
		return joined
	}
	for i := len(pods) - 1; i > 0; i-- {
		joined = strings.Join(pods[:i], ", ") + fmt.Sprintf(" and %d more", len(pods)-i)
		if len(joined) <= width {
			return joined
		}
	}
	return fmt.Sprintf("%d pods", len(pods))
}

// parseSelection validates a 1-based menu index against the menu size.
func parseSelection(line string, count int) (int, error) {
	trimmed := strings.TrimSpace(line)
	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q: expected a number between 1 and %d", trimmed, count)
	}
	if choice < 1 || choice > count {
		return 0, fmt.Errorf("selection %d out of range: expected a number between 1 and %d", choice, count)
	}
	return choice, nil
}
