package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := newTestGrid(t, 3, 2, [2]int{0, 0}, [2]int{2, 1})
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		gridPosBlock + gridPosEmpty + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("Display output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ansiClear {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
