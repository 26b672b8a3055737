package shop

import (
	"testing"

	"MidnightPledge/internal/sim"
)

func milestoneDefs() []Milestone {
	return []Milestone{
		{ID: "pillar_of_the_alley", Axis: AxisHumanity, Op: sim.OpGTE, Threshold: 50},
		{ID: "known_cheat", Axis: AxisCredibility, Op: sim.OpLTE, Threshold: -50},
		{ID: "fence_network", Axis: AxisUnderworld, Op: sim.OpGTE, Threshold: 40},
	}
}

func TestCheckMilestonesFiresOnProjected(t *testing.T) {
	fired := CheckMilestones(milestoneDefs(), map[string]bool{}, ReputationProfile{Humanity: 50, Underworld: 45})
	if len(fired) != 2 || fired[0] != "pillar_of_the_alley" || fired[1] != "fence_network" {
		t.Errorf("fired = %v", fired)
	}
}

func TestCheckMilestonesIdempotent(t *testing.T) {
	unlocked := map[string]bool{"pillar_of_the_alley": true}
	fired := CheckMilestones(milestoneDefs(), unlocked, ReputationProfile{Humanity: 90})
	if len(fired) != 0 {
		t.Errorf("unlocked milestone must not fire again, got %v", fired)
	}
}

func TestCheckMilestonesNegativeThreshold(t *testing.T) {
	fired := CheckMilestones(milestoneDefs(), map[string]bool{}, ReputationProfile{Credibility: -50})
	if len(fired) != 1 || fired[0] != "known_cheat" {
		t.Errorf("fired = %v", fired)
	}
}

func TestCheckMilestonesBelowThreshold(t *testing.T) {
	if fired := CheckMilestones(milestoneDefs(), map[string]bool{}, ReputationProfile{Humanity: 49}); len(fired) != 0 {
		t.Errorf("fired = %v", fired)
	}
}
