// File: internal/config/config.go
// Brief: CLI options for the log tailing command.

// Package config defines the flag plumbing and runtime options for kl's
// logging command, translating Cobra flag values into a strongly typed
// struct the tailer consumes. All regex inputs are compiled once in
// Validate, so a malformed pattern fails the run before any tailer spawns.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds all CLI configuration used by the logs command.
type Options struct {
	// PodQuery is the positional name pattern; empty means no fan-out.
	PodQuery string
	// PodName selects a single pod explicitly and bypasses selection.
	PodName          string
	Namespace        string
	TailLines        int64
	Follow           bool
	HighlightPattern string
	FilterOnly       bool
	ColorMode        string
	KubeConfigPath   string
	Context          string

	// Compiled in Validate.
	PodRegex       *regexp.Regexp
	HighlightRegex *regexp.Regexp
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		TailLines: 100,
		Follow:    true,
		ColorMode: "auto",
	}
}

// AddFlags binds configuration flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches log flags to an arbitrary FlagSet.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.PodName, "pod", "", "Tail a single pod by exact name (bypasses pattern matching)")
	fs.StringVarP(&o.Namespace, "namespace", "n", "", "Kubernetes namespace to use. Defaults to the context namespace.")
	fs.Int64VarP(&o.TailLines, "tail", "t", 100, "Number of historic log lines to show, -1 for all available")
	fs.BoolVarP(&o.Follow, "follow", "f", true, "Follow log output")
	fs.StringVarP(&o.HighlightPattern, "highlight", "H", "", "Regular expression; matching lines are highlighted")
	fs.BoolVar(&o.FilterOnly, "filter-only", false, "Show only lines matching --highlight; everything else is suppressed")
	fs.StringVarP(&o.ColorMode, "color", "m", "auto", "Color output: 'auto' colorizes when a tty is attached, 'always', 'never'")
}

// Validate ensures the provided options are coherent and compiles regex
// inputs. It is the single surface for configuration errors.
func (o *Options) Validate() error {
	o.PodQuery = strings.TrimSpace(o.PodQuery)
	o.PodName = strings.TrimSpace(o.PodName)
	if o.PodQuery != "" && o.PodName != "" {
		return fmt.Errorf("a pod name pattern and --pod are mutually exclusive")
	}
	if o.PodQuery != "" {
		re, err := regexp.Compile(o.PodQuery)
		if err != nil {
			return fmt.Errorf("invalid pod pattern %q: %w", o.PodQuery, err)
		}
		o.PodRegex = re
	}
	if o.HighlightPattern != "" {
		re, err := regexp.Compile(o.HighlightPattern)
		if err != nil {
			return fmt.Errorf("invalid highlight regex %q: %w", o.HighlightPattern, err)
		}
		o.HighlightRegex = re
	}
	if o.FilterOnly && o.HighlightPattern == "" {
		return fmt.Errorf("--filter-only requires --highlight")
	}
	if o.TailLines < -1 {
		return fmt.Errorf("--tail cannot be less than -1")
	}
	switch strings.ToLower(strings.TrimSpace(o.ColorMode)) {
	case "", "auto":
		o.ColorMode = "auto"
	case "always":
		o.ColorMode = "always"
	case "never":
		o.ColorMode = "never"
	default:
		return fmt.Errorf("invalid --color value %q (allowed: auto, always, never)", o.ColorMode)
	}
	return nil
}
