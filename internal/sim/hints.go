package sim

import "math/rand"

// Hint is one environmental observation line, gated on chain variables.
// Higher priority wins; ties are broken by uniform random choice.
type Hint struct {
	Priority int         `json:"priority" yaml:"priority"`
	When     []Condition `json:"when,omitempty" yaml:"when,omitempty"`
	Text     string      `json:"text" yaml:"text"`
}

// SelectHint picks the highest-priority hint whose conditions all hold.
// Returns false when no hint matches.
func SelectHint(hints []Hint, chain *Chain, rng *rand.Rand) (string, bool) {
	best := -1
	var tier []string
	for _, h := range hints {
		if !EvalAll(h.When, chain) {
			continue
		}
		if h.Priority > best {
			best = h.Priority
			tier = tier[:0]
		}
		if h.Priority == best {
			tier = append(tier, h.Text)
		}
	}
	if len(tier) == 0 {
		return "", false
	}
	if len(tier) == 1 {
		return tier[0], true
	}
	return tier[rng.Intn(len(tier))], true
}
