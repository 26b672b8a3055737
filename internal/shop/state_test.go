package shop

import (
	"testing"

	"MidnightPledge/internal/sim"
)

func TestNewGameStateClonesContentChains(t *testing.T) {
	content := testContent()
	gs := NewGameState(content, 3000, 3)
	if gs.Day != 1 || gs.Cash != 3000 || gs.ActionPoints != 3 {
		t.Errorf("state = %+v", gs)
	}
	gs.Chains[0].SetVar("funds", 1)
	if content.Chains[0].Var("funds") != 300 {
		t.Error("content chains must not alias live state")
	}
}

func TestLookupPaths(t *testing.T) {
	content := testContent()
	gs := NewGameState(content, 3000, 3)
	gs.Day = 6
	gs.Reputation.Humanity = 25

	cases := []struct {
		path string
		want float64
	}{
		{"day", 6},
		{"cash", 3000},
		{"reputation.humanity", 25},
		{"reputation.underworld", 0},
		{"chain_wen_qiu.hope", 60},
		{"chain_wen_qiu.stage", 0},
		{"chain_nobody.hope", 0},
		{"chain_wen_qiu", 0},
		{"weather", 0},
	}
	for _, c := range cases {
		if got := gs.Lookup(c.path); got != c.want {
			t.Errorf("Lookup(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	content := testContent()
	gs := NewGameState(content, 3000, 3)
	gs.Day = 9
	gs.Items = []Item{{ID: "guitar", ChainID: "wen_qiu", Status: StatusForfeit}}
	gs.RaiseViolation(ViolationBreach)
	gs.Milestones["pillar_of_the_alley"] = true
	gs.PendingMail = []ScheduledMail{{ID: "m1", TemplateID: "despair_note", DeliverDay: 12}}
	gs.Chains[0].AppendLog(3, "a hard day", sim.SeverityCrisis)

	data, err := gs.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	restored, err := LoadSnapshot(data)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if restored.Day != 9 || restored.Cash != 3000 {
		t.Errorf("restored = day %d cash %v", restored.Day, restored.Cash)
	}
	if len(restored.Items) != 1 || restored.Items[0].Status != StatusForfeit {
		t.Errorf("items = %+v", restored.Items)
	}
	if !restored.Violations[ViolationBreach] || !restored.Milestones["pillar_of_the_alley"] {
		t.Error("flags lost in round trip")
	}
	if len(restored.PendingMail) != 1 || restored.PendingMail[0].DeliverDay != 12 {
		t.Errorf("pending mail = %+v", restored.PendingMail)
	}
	chain := restored.Chain("wen_qiu")
	if chain == nil || chain.Var("hope") != 60 || len(chain.Log) != 1 {
		t.Errorf("chain = %+v", chain)
	}
}

func TestLoadSnapshotInitializesMaps(t *testing.T) {
	restored, err := LoadSnapshot([]byte(`{"day":1,"cash":100}`))
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	restored.Milestones["x"] = true
	restored.RaiseViolation("y")
}
