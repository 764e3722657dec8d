package utils

import (
	"testing"
	"time"
)

func TestFixedStepPacesSteps(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if fs.ShouldStep() {
		t.Fatal("first call must only start the clock")
	}

	steps := 0
	for range 60 { // one second of 60 FPS frames
		clock = clock.Add(time.Second / 60)
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps < 9 || steps > 10 {
		t.Errorf("got %d steps in one second at rate 10", steps)
	}
}

func TestFixedStepRateIsClamped(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Rate() != MinTickRate {
		t.Errorf("Rate() = %d, want %d", fs.Rate(), MinTickRate)
	}
	fs.SetRate(1000)
	if fs.Rate() != MaxTickRate {
		t.Errorf("Rate() = %d, want %d", fs.Rate(), MaxTickRate)
	}
}
