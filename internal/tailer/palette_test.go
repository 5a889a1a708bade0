// palette_test.go covers the color palette and the per-source assigner.
package tailer

import (
	"math/rand"
	"testing"
)

func TestDefaultColorPaletteSize(t *testing.T) {
	if got := len(DefaultColorPalette()); got < 8 {
		t.Fatalf("palette too small: %d entries", got)
	}
}

func TestAssignerDrawsFromPalette(t *testing.T) {
	palette := DefaultColorPalette()
	assigner := NewAssigner(palette, rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		c := assigner.Next()
		found := false
		for _, p := range palette {
			if p == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("draw %d returned a color outside the palette", i)
		}
	}
}

func TestAssignerDrawsWithReplacement(t *testing.T) {
	// More draws than palette entries: with replacement this works, without
	// it would exhaust the palette.
	assigner := NewAssigner(nil, rand.New(rand.NewSource(7)))
	seen := make(map[interface{}]int)
	for i := 0; i < 64; i++ {
		seen[assigner.Next()]++
	}
	repeated := false
	for _, n := range seen {
		if n > 1 {
			repeated = true
			break
		}
	}
	if !repeated {
		t.Fatalf("expected at least one repeated color across 64 draws")
	}
}
