package shop

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"MidnightPledge/internal/sim"
)

// recapLength is how many recent narrative beats a returning customer carries.
const recapLength = 5

// interestOnly is the cost of extending a loan without touching the
// principal, as quoted to a returning borrower.
func interestOnly(p *PawnInfo) float64 {
	return math.Ceil(p.Principal * p.InterestRate)
}

// BuildCustomer materializes an authored event plus chain state into a
// concrete, playable customer. Inventory is consulted for redemption-style
// events to find the loan under discussion. The chain's funds variable acts
// as the customer's wallet.
func BuildCustomer(ev *Event, chain *sim.Chain, items []Item, day int, rng *rand.Rand) (*Customer, error) {
	if ev == nil {
		return nil, fmt.Errorf("shop: nil event")
	}
	tmpl := ev.Customer
	cust := &Customer{
		VisitID:       uuid.NewString(),
		ChainID:       ev.ChainID,
		EventID:       ev.ID,
		Name:          tmpl.Name,
		Resolve:       tmpl.Resolve,
		Style:         tmpl.Style,
		Patience:      tmpl.Patience,
		Mood:          tmpl.Mood,
		DesiredAmount: tmpl.DesiredAmount,
		MinimumAmount: tmpl.MinimumAmount,
		MaxRepayment:  tmpl.MaxRepayment,
		Interaction:   InteractPawn,
		Lines: Lines{
			Greeting:   tmpl.Greeting.Resolve(chain),
			Pitch:      tmpl.Pitch.Resolve(chain),
			Haggle:     tmpl.Haggle.Resolve(chain),
			AcceptLine: tmpl.Accept.Resolve(chain),
			RejectLine: tmpl.Reject.Resolve(chain),
			Farewell:   tmpl.Farewell.Resolve(chain),
		},
	}
	if cust.Name == "" && chain != nil {
		cust.Name = chain.Name
	}

	switch ev.Category {
	case EventRedemptionCheck:
		cust.Interaction = InteractRedeem
	case EventPostForfeit:
		cust.Interaction = InteractPostForfeit
	}

	if ev.Item != nil {
		cust.Item = instantiateItem(ev.Item, ev.ChainID)
	}

	if chain != nil {
		cust.Wallet = chain.Var(sim.VarFunds)
		cust.Recap = chain.RecentLog(recapLength)
		if obs, ok := sim.SelectHint(chain.Hints, chain, rng); ok {
			cust.Observation = obs
		}
	}

	if cust.Interaction == InteractRedeem {
		cust.Intent = redemptionIntent(ev, items, cust.Wallet)
	}

	return cust, nil
}

// instantiateItem deep-copies an item template into a fresh inventory record,
// snapshotting the appraisal band before any later narrowing. Explicit value
// construction here avoids cross-customer aliasing of shared content.
func instantiateItem(tmpl *ItemTemplate, chainID sim.ChainID) *Item {
	id := tmpl.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Item{
		ID:             id,
		ChainID:        chainID,
		Name:           tmpl.Name,
		Category:       tmpl.Category,
		Grade:          tmpl.Grade,
		Fake:           tmpl.Fake,
		Stolen:         tmpl.Stolen,
		Sentimental:    tmpl.Sentimental,
		RealValue:      tmpl.RealValue,
		PerceivedValue: tmpl.Perceived,
		InitialRange:   tmpl.Range,
	}
}

// redemptionIntent decides what a returning borrower can afford: the full
// payoff (principal plus ceil(principal*rate)), the interest alone, or
// nothing.
func redemptionIntent(ev *Event, items []Item, wallet float64) RedemptionIntent {
	target := FindItem(items, ev.TargetItemID)
	if target == nil || target.Pawn == nil {
		return IntentLeave
	}
	interest := interestOnly(target.Pawn)
	total := target.Pawn.Principal + interest
	switch {
	case wallet >= total:
		return IntentRedeem
	case wallet >= interest:
		return IntentExtend
	default:
		return IntentLeave
	}
}

// BuildRenewalCustomer synthesizes an ad-hoc renewal visit for a loan that is
// about to come due. There is no authored template; the lines are stock.
func BuildRenewalCustomer(chain *sim.Chain, item *Item, rng *rand.Rand) (*Customer, error) {
	if chain == nil || item == nil || item.Pawn == nil {
		return nil, fmt.Errorf("shop: renewal needs a chain and a live loan")
	}
	cust := &Customer{
		VisitID:     uuid.NewString(),
		ChainID:     chain.ID,
		Name:        chain.Name,
		Interaction: InteractRenewal,
		Wallet:      chain.Var(sim.VarFunds),
		Recap:       chain.RecentLog(recapLength),
		Lines: Lines{
			Greeting:   fmt.Sprintf("About the %s... I need more time.", item.Name),
			Pitch:      "I can cover the interest, just not the whole thing yet.",
			Haggle:     "A few more days. That's all I'm asking.",
			AcceptLine: "Thank you. I won't forget this.",
			RejectLine: "I see. Then I suppose it's yours now.",
			Farewell:   sim.DefaultLine,
		},
		Renewal: &RenewalProposal{
			ItemID:       item.ID,
			InterestOnly: interestOnly(item.Pawn),
			ExtraDays:    item.Pawn.TermDays,
		},
	}
	if obs, ok := sim.SelectHint(chain.Hints, chain, rng); ok {
		cust.Observation = obs
	}
	return cust, nil
}
