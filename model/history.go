package model

// History remembers the hashes of the most recent generations so the driver
// can tell when a pattern has settled into a still life or a short cycle.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size states. A size below 1 is treated as 1.
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Push records the current state of g, evicting the oldest when full
func (h *History) Push(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether g matches any remembered state
func (h *History) Repeats(g *Grid) bool {
	current := g.GetGridHash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return len(h.hashes)
}
