package main

import (
	"testing"

	"github.com/sheikhrachel/torus-gol/model"
)

func TestFillRGBA(t *testing.T) {
	g, err := model.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 0, model.Alive); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4*4)
	fillRGBA(buf, g)

	want := []byte{
		0, 0, 0, 0xff, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 0xff, 0, 0, 0, 0xff,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py, x, y int
	}{
		{0, 0, 0, 0},
		{19, 19, 0, 0},
		{20, 39, 1, 1},
		{-1, 5, -1, 0},
		{-20, -21, -1, -2},
	}
	for _, tt := range tests {
		if x, y := cellAt(tt.px, tt.py, 20); x != tt.x || y != tt.y {
			t.Errorf("cellAt(%d, %d) = %d, %d, want %d, %d", tt.px, tt.py, x, y, tt.x, tt.y)
		}
	}
}
