package shop

import "MidnightPledge/internal/sim"

// Milestone is a permanent one-way unlock triggered by crossing a reputation
// threshold on a single axis.
type Milestone struct {
	ID        string  `json:"id" yaml:"id"`
	Axis      RepAxis `json:"axis" yaml:"axis"`
	Op        sim.Op  `json:"op" yaml:"op"` // ">=" or "<="
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Effect    string  `json:"effect" yaml:"effect"`
}

// CheckMilestones compares each not-yet-unlocked milestone against the
// projected (not yet committed) reputation and returns the ids that unlock.
// Unlocks are idempotent: an id already in unlocked never fires again, and a
// later reputation drop never re-locks it.
func CheckMilestones(defs []Milestone, unlocked map[string]bool, projected ReputationProfile) []string {
	var fired []string
	for _, m := range defs {
		if unlocked[m.ID] {
			continue
		}
		if sim.Compare(m.Op, projected.Axis(m.Axis), m.Threshold) {
			fired = append(fired, m.ID)
		}
	}
	return fired
}
