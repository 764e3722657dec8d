package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Errorf("alive with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}

		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Errorf("dead with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}
