package shop

import (
	"math/rand"

	"MidnightPledge/internal/sim"
)

// EventCategory tags authored customer encounters.
type EventCategory string

const (
	EventNegotiation     EventCategory = "negotiation"
	EventRedemptionCheck EventCategory = "redemption_check"
	EventPostForfeit     EventCategory = "post_forfeit"
)

// CustodyOutcome keys a redemption-check event's branch table.
type CustodyOutcome string

const (
	CustodyAllSafe         CustodyOutcome = "all_safe"
	CustodyCoreSafe        CustodyOutcome = "core_safe"
	CustodyCoreLost        CustodyOutcome = "core_lost"
	CustodyHostileTakeover CustodyOutcome = "hostile_takeover"
)

// CustomerTemplate is the authored half of a customer before resolution.
type CustomerTemplate struct {
	Name     string           `json:"name" yaml:"name"`
	Style    NegotiationStyle `json:"style" yaml:"style"`
	Resolve  int              `json:"resolve" yaml:"resolve"`
	Patience int              `json:"patience" yaml:"patience"`
	Mood     int              `json:"mood" yaml:"mood"`

	Greeting sim.Dialogue `json:"greeting" yaml:"greeting"`
	Pitch    sim.Dialogue `json:"pitch" yaml:"pitch"`
	Haggle   sim.Dialogue `json:"haggle" yaml:"haggle"`
	Accept   sim.Dialogue `json:"accept" yaml:"accept"`
	Reject   sim.Dialogue `json:"reject" yaml:"reject"`
	Farewell sim.Dialogue `json:"farewell" yaml:"farewell"`

	DesiredAmount float64 `json:"desired_amount" yaml:"desired_amount"`
	MinimumAmount float64 `json:"minimum_amount" yaml:"minimum_amount"`
	MaxRepayment  float64 `json:"max_repayment,omitempty" yaml:"max_repayment,omitempty"`
}

// ItemTemplate is the authored item a customer brings in. ID is optional; a
// stable id lets later events of the same chain target the item.
type ItemTemplate struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string         `json:"name" yaml:"name"`
	Category    string         `json:"category" yaml:"category"`
	Grade       string         `json:"grade" yaml:"grade"`
	Fake        bool           `json:"fake,omitempty" yaml:"fake,omitempty"`
	Stolen      bool           `json:"stolen,omitempty" yaml:"stolen,omitempty"`
	Sentimental bool           `json:"sentimental,omitempty" yaml:"sentimental,omitempty"`
	RealValue   float64        `json:"real_value" yaml:"real_value"`
	Perceived   float64        `json:"perceived" yaml:"perceived"`
	Range       ValuationRange `json:"range" yaml:"range"`
}

// Branch is one custody-outcome arm of a redemption-check event.
type Branch struct {
	Dialogue sim.Dialogue `json:"dialogue" yaml:"dialogue"`
	Effects  []sim.Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Event is one authored content unit describing a customer encounter, its
// triggers, and outcome effects.
type Event struct {
	ID       string          `json:"id" yaml:"id"`
	ChainID  sim.ChainID     `json:"chain_id" yaml:"chain_id"`
	Category EventCategory   `json:"category" yaml:"category"`
	Triggers []sim.Condition `json:"triggers,omitempty" yaml:"triggers,omitempty"`

	Customer CustomerTemplate `json:"customer" yaml:"customer"`
	Item     *ItemTemplate    `json:"item,omitempty" yaml:"item,omitempty"`

	Outcomes  map[DealQuality][]sim.Effect `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	OnReject  []sim.Effect                 `json:"on_reject,omitempty" yaml:"on_reject,omitempty"`
	OnExtend  []sim.Effect                 `json:"on_extend,omitempty" yaml:"on_extend,omitempty"`
	OnFailure []sim.Effect                 `json:"on_failure,omitempty" yaml:"on_failure,omitempty"`

	TargetItemID string                     `json:"target_item_id,omitempty" yaml:"target_item_id,omitempty"`
	Branches     map[CustodyOutcome]*Branch `json:"branches,omitempty" yaml:"branches,omitempty"`
}

// Critical reports whether the event rides the priority path.
func (ev *Event) Critical() bool {
	return ev.Category == EventRedemptionCheck || ev.Category == EventPostForfeit
}

// Selection is the eligibility resolver's pick for the day.
type Selection struct {
	Event *Event // authored event, nil for a synthesized renewal
	// Renewal fields, set when a borrower proactively requests an
	// extension on a loan that is about to come due.
	RenewalChain sim.ChainID
	RenewalItem  string
}

// IsRenewal reports whether the selection is a synthesized renewal visit.
func (s *Selection) IsRenewal() bool {
	return s != nil && s.Event == nil && s.RenewalItem != ""
}

// Renewal-candidate window: loans due in 0-2 days.
const renewalWindowDays = 2

// wantsRenewal is the heuristic deciding whether a chain's character
// proactively asks to extend a loan that is about to come due.
func wantsRenewal(chain *sim.Chain) bool {
	funds := chain.Var("funds")
	hope := chain.Var("hope")
	trust := chain.Var("trust")
	debt := chain.Var("debt")
	return (funds < 500 && hope > 20) ||
		(trust > 60 && funds < 1000) ||
		(debt > 1000)
}

// SelectDailyEvent picks the next customer-facing event under strict
// priority: critical events first, then ad-hoc renewals, then standard
// negotiations. Chains are visited in randomized order on each scan so no
// storyline monopolizes the daily slot by list position; events within a
// chain keep their declared order. Returns nil when the day has no customer.
func SelectDailyEvent(chains []sim.Chain, events []Event, items []Item, day int, rng *rand.Rand) *Selection {
	if ev := matchEvent(chains, events, rng, true); ev != nil {
		return &Selection{Event: ev}
	}
	if sel := pickRenewal(chains, items, day, rng); sel != nil {
		return sel
	}
	if ev := matchEvent(chains, events, rng, false); ev != nil {
		return &Selection{Event: ev}
	}
	return nil
}

func matchEvent(chains []sim.Chain, events []Event, rng *rand.Rand, critical bool) *Event {
	for _, idx := range rng.Perm(len(chains)) {
		chain := &chains[idx]
		if !chain.Active {
			continue
		}
		for i := range events {
			ev := &events[i]
			if ev.ChainID != chain.ID || ev.Critical() != critical {
				continue
			}
			if sim.EvalAll(ev.Triggers, chain) {
				return ev
			}
		}
	}
	return nil
}

func pickRenewal(chains []sim.Chain, items []Item, day int, rng *rand.Rand) *Selection {
	var candidates []*Item
	for i := range items {
		it := &items[i]
		if it.Status != StatusActive || it.Pawn == nil {
			continue
		}
		remaining := it.Pawn.DueDate - day
		if remaining < 0 || remaining > renewalWindowDays {
			continue
		}
		chain := sim.FindChain(chains, it.ChainID)
		if chain == nil || !chain.Active {
			continue
		}
		candidates = append(candidates, it)
	}
	if len(candidates) == 0 {
		return nil
	}
	it := candidates[rng.Intn(len(candidates))]
	chain := sim.FindChain(chains, it.ChainID)
	if !wantsRenewal(chain) {
		return nil
	}
	return &Selection{RenewalChain: it.ChainID, RenewalItem: it.ID}
}
