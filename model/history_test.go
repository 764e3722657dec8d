package model

import "testing"

func TestHistoryNeedsEnoughSamples(t *testing.T) {
	var h History
	h.Record("a")
	h.Record("a")
	if h.IsStagnant("a") {
		t.Fatal("two samples must not be enough to call stagnation")
	}
	h.Record("a")
	if !h.IsStagnant("a") {
		t.Fatal("a repeated state should be stagnant")
	}
}

func TestHistoryDetectsShortCycles(t *testing.T) {
	var h History
	for _, s := range []string{"a", "b", "a", "b"} {
		h.Record(s)
	}
	if !h.IsStagnant("a") {
		t.Fatal("period two cycle not detected")
	}
	if h.IsStagnant("c") {
		t.Fatal("new state reported as stagnant")
	}
}

func TestHistoryForgetsOldStates(t *testing.T) {
	var h History
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		h.Record(s)
	}
	if h.IsStagnant("a") || h.IsStagnant("c") {
		t.Fatal("states older than the cycle window should not count")
	}
	if !h.IsStagnant("d") {
		t.Fatal("state inside the cycle window not detected")
	}
	h.Clear()
	if h.IsStagnant("f") {
		t.Fatal("cleared history still reports stagnation")
	}
}
