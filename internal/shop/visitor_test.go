package shop

import (
	"math/rand"
	"testing"

	"MidnightPledge/internal/sim"
)

func visitorChain() *sim.Chain {
	return &sim.Chain{
		ID:     "wen_qiu",
		Name:   "Wen Qiu",
		Active: true,
		Vars:   map[string]float64{"funds": 300, "hope": 60},
		Log: []sim.LogEntry{
			{Day: 1, Text: "one"}, {Day: 2, Text: "two"}, {Day: 3, Text: "three"},
			{Day: 4, Text: "four"}, {Day: 5, Text: "five"}, {Day: 6, Text: "six"},
		},
		Hints: []sim.Hint{{Priority: 1, Text: "her shoes are soaked through"}},
	}
}

func negotiationEvent() *Event {
	return &Event{
		ID:       "wen_qiu_guitar",
		ChainID:  "wen_qiu",
		Category: EventNegotiation,
		Customer: CustomerTemplate{
			Name:          "Wen Qiu",
			Style:         StyleDesperate,
			Resolve:       40,
			DesiredAmount: 1000,
			MinimumAmount: 600,
			Greeting:      sim.Line("Please. I need help."),
			Pitch: sim.Dialogue{Variants: []sim.Variant{
				{When: &sim.Condition{Var: "hope", Op: sim.OpGT, Value: 50}, Text: "It still plays beautifully."},
				{Text: "Just take it."},
			}},
		},
		Item: &ItemTemplate{
			ID: "wen_qiu_guitar_item", Name: "Worn Acoustic Guitar",
			Category: "instrument", RealValue: 1200, Perceived: 1000,
			Range: ValuationRange{Low: 800, High: 1300},
		},
	}
}

func TestBuildCustomerNegotiation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := visitorChain()
	cust, err := BuildCustomer(negotiationEvent(), chain, nil, 3, rng)
	if err != nil {
		t.Fatalf("BuildCustomer: %v", err)
	}
	if cust.VisitID == "" {
		t.Error("visit id missing")
	}
	if cust.Interaction != InteractPawn {
		t.Errorf("interaction = %s", cust.Interaction)
	}
	if cust.Lines.Pitch != "It still plays beautifully." {
		t.Errorf("pitch should resolve against chain state, got %q", cust.Lines.Pitch)
	}
	if cust.Wallet != 300 {
		t.Errorf("wallet = %v, want chain funds", cust.Wallet)
	}
	if len(cust.Recap) != 5 || cust.Recap[0].Text != "two" {
		t.Errorf("recap should be the last five beats, got %+v", cust.Recap)
	}
	if cust.Observation != "her shoes are soaked through" {
		t.Errorf("observation = %q", cust.Observation)
	}
	if cust.Item == nil || cust.Item.ID != "wen_qiu_guitar_item" {
		t.Fatalf("item = %+v", cust.Item)
	}
	if cust.Item.InitialRange.Low != 800 || cust.Item.InitialRange.High != 1300 {
		t.Errorf("initial range not snapshotted: %+v", cust.Item.InitialRange)
	}
}

func TestBuildCustomerItemIsFreshCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ev := negotiationEvent()
	a, _ := BuildCustomer(ev, visitorChain(), nil, 3, rng)
	b, _ := BuildCustomer(ev, visitorChain(), nil, 4, rng)
	a.Item.PerceivedValue = 1
	if b.Item.PerceivedValue != 1000 {
		t.Error("instantiated items must not alias each other")
	}
	if ev.Item.Perceived != 1000 {
		t.Error("template mutated")
	}
}

func redemptionCheckEvent() *Event {
	return &Event{
		ID: "wen_qiu_return", ChainID: "wen_qiu", Category: EventRedemptionCheck,
		TargetItemID: "guitar",
		Customer:     CustomerTemplate{Name: "Wen Qiu"},
	}
}

func TestRedemptionIntentAffordability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []Item{{
		ID: "guitar", ChainID: "wen_qiu", Status: StatusActive,
		Pawn: &PawnInfo{Principal: 600, InterestRate: 0.10, TermDays: 7, DueDate: 10},
	}}
	// Payoff is 600 + ceil(60) = 660; interest alone is 60.
	cases := []struct {
		wallet float64
		want   RedemptionIntent
	}{
		{700, IntentRedeem},
		{660, IntentRedeem},
		{659, IntentExtend},
		{60, IntentExtend},
		{59, IntentLeave},
	}
	for _, c := range cases {
		chain := visitorChain()
		chain.Vars["funds"] = c.wallet
		cust, err := BuildCustomer(redemptionCheckEvent(), chain, items, 8, rng)
		if err != nil {
			t.Fatalf("BuildCustomer: %v", err)
		}
		if cust.Interaction != InteractRedeem {
			t.Fatalf("interaction = %s", cust.Interaction)
		}
		if cust.Intent != c.want {
			t.Errorf("wallet %v: intent = %s, want %s", c.wallet, cust.Intent, c.want)
		}
	}
}

func TestRedemptionIntentMissingTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cust, err := BuildCustomer(redemptionCheckEvent(), visitorChain(), nil, 8, rng)
	if err != nil {
		t.Fatalf("BuildCustomer: %v", err)
	}
	if cust.Intent != IntentLeave {
		t.Errorf("missing loan target should leave, got %s", cust.Intent)
	}
}

func TestBuildRenewalCustomer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	item := &Item{
		ID: "guitar", Name: "Worn Acoustic Guitar", ChainID: "wen_qiu", Status: StatusActive,
		Pawn: &PawnInfo{Principal: 600, InterestRate: 0.15, TermDays: 7, DueDate: 10},
	}
	cust, err := BuildRenewalCustomer(visitorChain(), item, rng)
	if err != nil {
		t.Fatalf("BuildRenewalCustomer: %v", err)
	}
	if cust.Interaction != InteractRenewal {
		t.Errorf("interaction = %s", cust.Interaction)
	}
	if cust.Renewal == nil {
		t.Fatal("renewal proposal missing")
	}
	if cust.Renewal.InterestOnly != 90 {
		t.Errorf("interest-only = %v, want ceil(600*0.15) = 90", cust.Renewal.InterestOnly)
	}
	if cust.Renewal.ExtraDays != 7 || cust.Renewal.ItemID != "guitar" {
		t.Errorf("proposal = %+v", cust.Renewal)
	}
}

func TestBuildRenewalCustomerNeedsLoan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := BuildRenewalCustomer(visitorChain(), &Item{ID: "x"}, rng); err == nil {
		t.Error("expected error for an item without loan terms")
	}
}
