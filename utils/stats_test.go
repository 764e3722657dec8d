package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first sample should seed the average, got %v", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 0, 0)
	if math.Abs(s.AveragePopulation-90) > 1e-9 {
		t.Errorf("average = %v, want 90", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("zero duration must keep the previous rate, got %v", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 2 || s.Population != 0 {
		t.Errorf("got generations=%d population=%d", s.TotalGenerations, s.Population)
	}
}
