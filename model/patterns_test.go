package model

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternNames(t *testing.T) {
	want := []string{"beacon", "blinker", "block", "glider", "toad"}
	if got := PatternNames(); !slices.Equal(got, want) {
		t.Fatalf("PatternNames() = %v, want %v", got, want)
	}
}

func TestLookupPatternUnknown(t *testing.T) {
	if _, err := LookupPattern("gosper"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("error = %v, want ErrUnknownPattern", err)
	}
}

func TestLookupPatternReturnsCopy(t *testing.T) {
	p, _ := LookupPattern("block")
	p.Cells[0] = [2]int{9, 9}
	again, _ := LookupPattern("block")
	if again.Cells[0] != [2]int{0, 0} {
		t.Fatal("mutating a looked-up pattern changed the built-in")
	}
}

func TestPatternSize(t *testing.T) {
	tests := map[string][2]int{
		"block":   {2, 2},
		"blinker": {3, 1},
		"toad":    {4, 2},
		"beacon":  {4, 4},
		"glider":  {3, 3},
	}
	for name, want := range tests {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatal(err)
		}
		if w, h := p.Size(); w != want[0] || h != want[1] {
			t.Errorf("%s size = %dx%d, want %dx%d", name, w, h, want[0], want[1])
		}
	}
}

func TestPatternPeriods(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t, 10, 10)
			p, _ := LookupPattern(tt.name)
			if err := g.Place(p, 3, 3); err != nil {
				t.Fatal(err)
			}
			start := g.Hash()
			for gen := 1; gen <= tt.period; gen++ {
				g.Advance()
				if gen < tt.period && g.Hash() == start {
					t.Fatalf("returned to start after %d generations, want period %d", gen, tt.period)
				}
			}
			if g.Hash() != start {
				t.Fatalf("not back at start after %d generations", tt.period)
			}
		})
	}
}
