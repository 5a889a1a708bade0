// File: internal/tailer/tailer.go
// Brief: Concurrent multi-pod log streaming engine.

// Package tailer implements kl's color-aware log streamer: it fans out one
// tailer per selected pod, classifies every line, and funnels the output
// through a single serialized renderer.
package tailer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

const (
	logScannerInitial = 64 * 1024
	logScannerMax     = 1024 * 1024
)

// LogStreamer opens a pod's log stream. The returned stream yields raw log
// lines and terminates when the pod stops or the connection drops. Retry and
// reconnect policy belong to the caller's cluster client, not to the tailer.
type LogStreamer interface {
	OpenLogStream(ctx context.Context, namespace, pod string, tailLines int64, follow bool) (io.ReadCloser, error)
}

// TailState is the terminal state of a single pod tailer.
type TailState int

const (
	StateEnded TailState = iota
	StateFailed
)

func (s TailState) String() string {
	if s == StateFailed {
		return "failed"
	}
	return "ended"
}

// TailResult reports how one pod's tailer finished.
type TailResult struct {
	Pod   string
	State TailState
	Err   error
}

// Config carries the immutable per-run settings shared by all tailers.
type Config struct {
	Namespace  string
	Pods       []string
	TailLines  int64
	Follow     bool
	Highlight  HighlightRule
	FilterOnly bool
}

// Tailer coordinates the fan-out: one goroutine per pod, all joined before
// the run completes. A failing pod never cancels its siblings; the only
// cancellation path is the caller's context (process signal), which tears
// down every underlying stream.
type Tailer struct {
	streams  LogStreamer
	cfg      Config
	renderer *Renderer
	assigner *Assigner
	log      logr.Logger
}

// New creates a Tailer. The highlight rule and filter mode are bound once
// here and stay immutable for the lifetime of every spawned tailer.
func New(streams LogStreamer, cfg Config, renderer *Renderer, assigner *Assigner, log logr.Logger) *Tailer {
	return &Tailer{
		streams:  streams,
		cfg:      cfg,
		renderer: renderer,
		assigner: assigner,
		log:      log.WithName("tailer"),
	}
}

// Run spawns one tailer per configured pod and waits for all of them to
// reach a terminal state. The per-pod outcomes are returned in the same
// order as cfg.Pods; the error is the first per-pod failure observed, kept
// only after every tailer has finished. An empty pod set completes
// immediately with no tailers spawned.
func (t *Tailer) Run(ctx context.Context) ([]TailResult, error) {
	if len(t.cfg.Pods) == 0 {
		t.log.V(1).Info("no pods to tail")
		return nil, nil
	}
	t.log.V(1).Info("starting fan-out", "namespace", t.cfg.Namespace, "pods", len(t.cfg.Pods), "follow", t.cfg.Follow)

	results := make([]TailResult, len(t.cfg.Pods))
	var eg errgroup.Group
	for i, pod := range t.cfg.Pods {
		src := SourceIdentity{Pod: pod, Color: t.assigner.Next()}
		eg.Go(func() error {
			results[i] = t.tailPod(ctx, src)
			return results[i].Err
		})
	}
	err := eg.Wait()
	t.log.V(1).Info("fan-out finished", "pods", len(results))
	return results, err
}

// tailPod follows one pod's log stream until it ends or fails. Lines arrive
// in stream order and are rendered synchronously, so output within a pod is
// strictly FIFO with no drops or duplication.
func (t *Tailer) tailPod(ctx context.Context, src SourceIdentity) TailResult {
	stream, err := t.streams.OpenLogStream(ctx, t.cfg.Namespace, src.Pod, t.cfg.TailLines, t.cfg.Follow)
	if err != nil {
		t.log.Error(err, "open log stream", "namespace", t.cfg.Namespace, "pod", src.Pod)
		return TailResult{Pod: src.Pod, State: StateFailed, Err: &ConnectError{Pod: src.Pod, Err: err}}
	}
	defer func() { _ = stream.Close() }()

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, logScannerInitial), logScannerMax)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return TailResult{Pod: src.Pod, State: StateEnded}
		}
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			err := &DecodeError{Pod: src.Pod}
			t.log.Error(err, "decode log line", "namespace", t.cfg.Namespace, "pod", src.Pod)
			return TailResult{Pod: src.Pod, State: StateFailed, Err: err}
		}
		line := string(raw)
		category, ok := Classify(line, t.cfg.Highlight, t.cfg.FilterOnly)
		if !ok {
			continue
		}
		t.renderer.Render(RenderInstruction{Source: src, Category: category, Text: line})
	}

	switch scanErr := scanner.Err(); {
	case scanErr != nil && ctx.Err() == nil && !isContextErr(scanErr):
		t.log.Error(scanErr, "log stream failed", "namespace", t.cfg.Namespace, "pod", src.Pod)
		return TailResult{Pod: src.Pod, State: StateFailed, Err: fmt.Errorf("stream %s: %w", src.Pod, scanErr)}
	default:
		t.log.V(1).Info("log stream ended", "namespace", t.cfg.Namespace, "pod", src.Pod)
		return TailResult{Pod: src.Pod, State: StateEnded}
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
