// File: internal/tailer/render.go
// Brief: Serialized terminal output for classified log lines.

package tailer

import (
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

// SourceIdentity names one log source and carries its assigned color. It is
// created when the coordinator spawns a tailer and never mutated afterwards.
type SourceIdentity struct {
	Pod   string
	Color *color.Color
}

// RenderInstruction is the classified, source-tagged unit of output handed
// to the renderer. Consumed exactly once.
type RenderInstruction struct {
	Source   SourceIdentity
	Category Category
	Text     string
}

// Renderer writes render instructions to the terminal. A mutex serializes
// whole-instruction writes so concurrent tailers never split each other's
// bytes mid-line; each styled segment carries its own reset so colors do not
// bleed into the next line.
type Renderer struct {
	mu         sync.Mutex
	w          io.Writer
	log        logr.Logger
	prefix     bool
	colorPlain bool
	errStyle   *color.Color
	hlStyle    *color.Color
}

// NewRenderer builds a renderer on w. prefix controls whether each line is
// tagged with its pod name; colorPlain renders plain lines in the source's
// color (fan-out mode) instead of unstyled (single-pod mode).
func NewRenderer(w io.Writer, log logr.Logger, prefix, colorPlain bool) *Renderer {
	return &Renderer{
		w:          w,
		log:        log.WithName("render"),
		prefix:     prefix,
		colorPlain: colorPlain,
		errStyle:   color.New(color.Bold, color.FgRed),
		hlStyle:    color.New(color.Bold, color.FgYellow),
	}
}

// Render writes one instruction as a single atomic unit. Write failures are
// logged and swallowed; one bad write must not stop sibling tailers.
func (r *Renderer) Render(in RenderInstruction) {
	var b strings.Builder
	b.Grow(len(in.Source.Pod) + len(in.Text) + 16)
	if r.prefix {
		if in.Source.Color != nil {
			b.WriteString(in.Source.Color.Sprint(in.Source.Pod))
		} else {
			b.WriteString(in.Source.Pod)
		}
		b.WriteByte(' ')
	}
	switch in.Category {
	case CategoryError:
		b.WriteString(r.errStyle.Sprint(in.Text))
	case CategoryHighlighted:
		b.WriteString(r.hlStyle.Sprint(in.Text))
	default:
		if r.colorPlain && in.Source.Color != nil {
			b.WriteString(in.Source.Color.Sprint(in.Text))
		} else {
			b.WriteString(in.Text)
		}
	}
	b.WriteByte('\n')

	r.mu.Lock()
	_, err := io.WriteString(r.w, b.String())
	r.mu.Unlock()
	if err != nil {
		r.log.Error(err, "write log line", "pod", in.Source.Pod)
	}
}
