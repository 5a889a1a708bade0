// File: internal/tailer/palette.go
// Brief: Color palette and per-source color assignment.

package tailer

import (
	"math/rand"
	"sync"

	"github.com/fatih/color"
)

// DefaultColorPalette returns the color rotation used to give each tailed pod
// a visual identity on the terminal.
func DefaultColorPalette() []*color.Color {
	return []*color.Color{
		color.New(color.Bold, color.FgHiCyan),
		color.New(color.Bold, color.FgHiMagenta),
		color.New(color.Bold, color.FgHiGreen),
		color.New(color.Bold, color.FgHiYellow),
		color.New(color.Bold, color.FgHiBlue),
		color.New(color.Bold, color.FgHiRed),
		color.New(color.FgHiMagenta, color.BgBlack),
		color.New(color.FgHiBlue, color.BgBlack),
		color.New(color.FgHiGreen, color.BgBlack),
		color.New(color.FgHiCyan, color.BgBlack),
		color.New(color.FgHiYellow, color.BgBlack),
	}
}

// Assigner hands out colors for new log sources. Each draw is an independent
// uniform pick with replacement, so two pods may share a color; visual
// distinction is best-effort rather than guaranteed.
type Assigner struct {
	mu      sync.Mutex
	rng     *rand.Rand
	palette []*color.Color
}

// NewAssigner builds an Assigner over the given palette using an explicit
// random source. A nil or empty palette falls back to the default one.
func NewAssigner(palette []*color.Color, rng *rand.Rand) *Assigner {
	if len(palette) == 0 {
		palette = DefaultColorPalette()
	}
	return &Assigner{rng: rng, palette: palette}
}

// Next draws the color for the next spawned tailer.
func (a *Assigner) Next() *color.Color {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.palette[a.rng.Intn(len(a.palette))]
}
