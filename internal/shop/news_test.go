package shop

import (
	"testing"

	"MidnightPledge/internal/sim"
)

type fakeView map[string]float64

func (v fakeView) Lookup(path string) float64 { return v[path] }

func narrativeDefs(n int) []NewsDef {
	defs := make([]NewsDef, 0, n)
	for i := 0; i < n; i++ {
		defs = append(defs, NewsDef{
			ID:       "narrative_" + string(rune('a'+i)),
			Category: NewsNarrative,
			Priority: n - i,
			Duration: 2,
		})
	}
	return defs
}

func TestAdvanceNewsSlotPolicy(t *testing.T) {
	catalog := append(narrativeDefs(3),
		NewsDef{ID: "market_1", Category: NewsMarket, Priority: 5, Duration: 3},
		NewsDef{ID: "market_2", Category: NewsMarket, Priority: 1, Duration: 3},
		NewsDef{ID: "flavor_1", Category: NewsFlavor, Priority: 1, Duration: 1},
	)
	active, added := AdvanceNews(nil, catalog, fakeView{}, nil)
	if len(added) != 4 {
		t.Fatalf("added %d items, want 4: %v", len(added), added)
	}
	want := []string{"narrative_a", "narrative_b", "market_1", "market_2"}
	for i, id := range want {
		if added[i] != id {
			t.Errorf("slot %d = %s, want %s", i, added[i], id)
		}
	}
	if len(active) != 4 {
		t.Errorf("active = %+v", active)
	}
}

func TestAdvanceNewsThirdNarrativeWhenNoMarket(t *testing.T) {
	catalog := narrativeDefs(4)
	_, added := AdvanceNews(nil, catalog, fakeView{}, nil)
	if len(added) != 3 {
		t.Fatalf("added %v, want exactly three narrative items", added)
	}
}

func TestAdvanceNewsFlavorFillsLastSlot(t *testing.T) {
	catalog := append(narrativeDefs(2),
		NewsDef{ID: "market_1", Category: NewsMarket, Priority: 1, Duration: 3},
		NewsDef{ID: "flavor_1", Category: NewsFlavor, Priority: 1, Duration: 1},
	)
	_, added := AdvanceNews(nil, catalog, fakeView{}, nil)
	if len(added) != 4 || added[3] != "flavor_1" {
		t.Errorf("added = %v, want flavor in the final slot", added)
	}
}

func TestAdvanceNewsTriggersGate(t *testing.T) {
	catalog := []NewsDef{
		{
			ID: "recital", Category: NewsNarrative, Duration: 2,
			Triggers: []NewsTrigger{{Path: "chain_wen_qiu.hope", Op: sim.OpGT, Value: 50}},
		},
	}
	_, added := AdvanceNews(nil, catalog, fakeView{"chain_wen_qiu.hope": 30}, nil)
	if len(added) != 0 {
		t.Errorf("gated item should not run at hope=30: %v", added)
	}
	_, added = AdvanceNews(nil, catalog, fakeView{"chain_wen_qiu.hope": 60}, nil)
	if len(added) != 1 || added[0] != "recital" {
		t.Errorf("added = %v", added)
	}
}

func TestAdvanceNewsExpiry(t *testing.T) {
	active := []ActiveNews{
		{ID: "ending", Remaining: 1},
		{ID: "ongoing", Remaining: 3},
	}
	next, _ := AdvanceNews(active, nil, fakeView{}, nil)
	if len(next) != 1 || next[0].ID != "ongoing" || next[0].Remaining != 2 {
		t.Errorf("next = %+v", next)
	}
}

func TestAdvanceNewsRunningItemNotRestarted(t *testing.T) {
	catalog := []NewsDef{{ID: "story", Category: NewsNarrative, Duration: 5}}
	active := []ActiveNews{{ID: "story", Remaining: 3}}
	next, added := AdvanceNews(active, catalog, fakeView{}, nil)
	if len(added) != 0 {
		t.Errorf("running item restarted: %v", added)
	}
	if len(next) != 1 || next[0].Remaining != 2 {
		t.Errorf("next = %+v", next)
	}
}

func TestAdvanceNewsForcedInvestigation(t *testing.T) {
	catalog := append(narrativeDefs(4),
		NewsDef{ID: "market_1", Category: NewsMarket, Priority: 1, Duration: 3},
		NewsDef{ID: "flavor_1", Category: NewsFlavor, Priority: 1, Duration: 1},
		NewsDef{ID: "investigation", Category: NewsMarket, Priority: 10, Duration: 5, RequiresViolation: "breach_of_trust"},
	)
	// Without the flag the investigation never runs, priority regardless.
	_, added := AdvanceNews(nil, catalog, fakeView{}, nil)
	for _, id := range added {
		if id == "investigation" {
			t.Fatal("investigation ran without its violation flag")
		}
	}
	// With the flag it is forced in on top of a full slate.
	_, added = AdvanceNews(nil, catalog, fakeView{}, map[string]bool{"breach_of_trust": true})
	if len(added) != 5 || added[0] != "investigation" {
		t.Errorf("added = %v, want forced investigation outside the four slots", added)
	}
}

func TestAggregateModifiers(t *testing.T) {
	catalog := []NewsDef{
		{ID: "gold", Modifiers: MarketModifiers{CategoryPrice: map[string]float64{"jewelry": 1.3}, Risk: 1}},
		{ID: "glut", Modifiers: MarketModifiers{CategoryPrice: map[string]float64{"jewelry": 0.8}, ActionPoints: -1}},
		{ID: "curfew", Modifiers: MarketModifiers{ActionPoints: -1}},
	}
	active := []ActiveNews{{ID: "gold", Remaining: 2}, {ID: "glut", Remaining: 1}, {ID: "curfew", Remaining: 1}}
	agg := AggregateModifiers(active, catalog)
	if got := agg.PriceMultiplier("jewelry"); got < 1.03 || got > 1.05 {
		t.Errorf("jewelry multiplier = %v, want 1.3*0.8", got)
	}
	if got := agg.PriceMultiplier("instrument"); got != 1 {
		t.Errorf("unlisted category multiplier = %v, want 1", got)
	}
	if agg.Risk != 1 || !agg.RiskActive() {
		t.Errorf("risk = %v", agg.Risk)
	}
	if agg.ActionPoints != -2 {
		t.Errorf("action points = %d, want -2", agg.ActionPoints)
	}
}
