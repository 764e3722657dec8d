package model

const (
	historySize = 5
	// cycleWindow is the longest period IsStagnant recognizes
	cycleWindow = 3
)

// History remembers recent board hashes to detect still lifes and short cycles
type History struct {
	hashes []string
}

// Record adds a board hash, keeping only the most recent few
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last few recorded states
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < cycleWindow {
		return false
	}
	for _, prev := range h.hashes[len(h.hashes)-cycleWindow:] {
		if prev == hash {
			return true
		}
	}
	return false
}

// Clear forgets all recorded hashes
func (h *History) Clear() {
	h.hashes = nil
}
