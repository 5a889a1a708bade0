// config_test.go covers option validation and regex compilation.
package config

import (
	"strings"
	"testing"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	if opts.TailLines != 100 {
		t.Fatalf("expected tail default 100, got %d", opts.TailLines)
	}
	if !opts.Follow {
		t.Fatalf("expected follow by default")
	}
	if opts.ColorMode != "auto" {
		t.Fatalf("expected auto color mode, got %q", opts.ColorMode)
	}
}

func TestValidateCompilesPatterns(t *testing.T) {
	opts := NewOptions()
	opts.PodQuery = "checkout-.*"
	opts.HighlightPattern = "boot"
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if opts.PodRegex == nil || !opts.PodRegex.MatchString("checkout-abc") {
		t.Fatalf("pod regex not compiled")
	}
	if opts.HighlightRegex == nil || !opts.HighlightRegex.MatchString("boot sequence") {
		t.Fatalf("highlight regex not compiled")
	}
}

func TestValidateRejectsMalformedPatterns(t *testing.T) {
	opts := NewOptions()
	opts.PodQuery = "checkout-["
	if err := opts.Validate(); err == nil || !strings.Contains(err.Error(), "invalid pod pattern") {
		t.Fatalf("expected pod pattern error, got %v", err)
	}

	opts = NewOptions()
	opts.HighlightPattern = "boot["
	if err := opts.Validate(); err == nil || !strings.Contains(err.Error(), "invalid highlight regex") {
		t.Fatalf("expected highlight regex error, got %v", err)
	}
}

func TestValidatePatternAndPodAreExclusive(t *testing.T) {
	opts := NewOptions()
	opts.PodQuery = "checkout"
	opts.PodName = "checkout-0"
	if err := opts.Validate(); err == nil {
		t.Fatalf("expected mutual exclusion error")
	}
}

func TestValidateFilterOnlyRequiresHighlight(t *testing.T) {
	opts := NewOptions()
	opts.FilterOnly = true
	if err := opts.Validate(); err == nil {
		t.Fatalf("expected error when --filter-only is set without --highlight")
	}
	opts.HighlightPattern = "boot"
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidateColorMode(t *testing.T) {
	for _, mode := range []string{"auto", "Always", "NEVER", ""} {
		opts := NewOptions()
		opts.ColorMode = mode
		if err := opts.Validate(); err != nil {
			t.Fatalf("mode %q rejected: %v", mode, err)
		}
	}
	opts := NewOptions()
	opts.ColorMode = "sometimes"
	if err := opts.Validate(); err == nil {
		t.Fatalf("expected invalid color mode error")
	}
}

func TestValidateTailBound(t *testing.T) {
	opts := NewOptions()
	opts.TailLines = -2
	if err := opts.Validate(); err == nil {
		t.Fatalf("expected tail bound error")
	}
	opts.TailLines = -1
	if err := opts.Validate(); err != nil {
		t.Fatalf("tail -1 must be allowed: %v", err)
	}
}
