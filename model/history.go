package model

// historySize is how many recent generation hashes are kept
const historySize = 5

// History keeps recent generation hashes to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Record appends hash, dropping the oldest entry once full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations, which covers still lifes and period 2 and 3 oscillators
func (h *History) IsStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}
