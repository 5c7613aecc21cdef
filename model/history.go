package model

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// History remembers recent grid hashes so a run can stop once the
// universe stops changing or starts repeating itself.
type History struct {
	hashes []string
}

// Update appends hash and drops the oldest entry past historySize
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded
// states: a still life, or an oscillator with period 2 or 3.
func (h *History) IsStagnant(hash string) bool {
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return len(h.hashes)
}
