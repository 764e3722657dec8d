package model

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named set of live cells given as (dx, dy) offsets from an origin
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Size returns the bounding box of the pattern
func (p Pattern) Size() (width, height int) {
	for _, c := range p.Cells {
		width = max(width, c[0]+1)
		height = max(height, c[1]+1)
	}
	return
}

var patterns = map[string]Pattern{
	"block": {Name: "block", Cells: [][2]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	}},
	"blinker": {Name: "blinker", Cells: [][2]int{
		{0, 0}, {1, 0}, {2, 0},
	}},
	"toad": {Name: "toad", Cells: [][2]int{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}},
	"beacon": {Name: "beacon", Cells: [][2]int{
		{0, 0}, {1, 0},
		{0, 1},
		{3, 2},
		{2, 3}, {3, 3},
	}},
	"glider": {Name: "glider", Cells: [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}},
}

// LookupPattern returns the built-in pattern with the given name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q, known: %v", name, PatternNames())
	}
	return Pattern{Name: p.Name, Cells: slices.Clone(p.Cells)}, nil
}

// PatternNames lists the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
