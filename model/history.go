package model

// historySize is how many generations back a repeated state is looked for
const historySize = 3

// History tracks recent grid hashes to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Record adds the hash of g to the history and reports whether the same state
// was seen within the last historySize generations.
func (h *History) Record(g *Grid) bool {
	hash := g.GetGridHash()

	repeated := false
	for _, seen := range h.hashes {
		if seen == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}

	return repeated
}
