package shop

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"MidnightPledge/internal/sim"
)

var (
	// ErrInsufficientCash means the till cannot cover the action. The
	// UI-facing action should have been disabled; this is the backstop.
	ErrInsufficientCash = errors.New("shop: insufficient cash")
	// ErrNoCustomer means a customer-directed command arrived with nobody
	// at the counter.
	ErrNoCustomer = errors.New("shop: no customer present")
	// ErrNoRedeemable is the visible error state when a redemption visit
	// finds no item to redeem.
	ErrNoRedeemable = errors.New("shop: no redeemable item found")
	// ErrGameOver rejects commands after the terminal signal.
	ErrGameOver = errors.New("shop: game is over")
)

// ViolationBreach is raised when the player sells collateral out from under a
// live loan. It feeds the standing investigation news item.
const ViolationBreach = "breach_of_trust"

// Tuning is the configurable economy surface.
type Tuning struct {
	BaseActionPoints int     `json:"base_action_points"`
	DailyUpkeep      float64 `json:"daily_upkeep"`
	MotherCareCost   float64 `json:"mother_care_cost"`
	DefaultTermDays  int     `json:"default_term_days"`
}

// DefaultTuning mirrors the shipped configs/world.json.
func DefaultTuning() Tuning {
	return Tuning{
		BaseActionPoints: 3,
		DailyUpkeep:      80,
		MotherCareCost:   50,
		DefaultTermDays:  7,
	}
}

// NightReport summarizes one night cycle for the caller.
type NightReport struct {
	Day       int       `json:"day"`
	Headlines []string  `json:"headlines,omitempty"`
	Forfeited []string  `json:"forfeited,omitempty"`
	MailCount int       `json:"mail_count"`
	GameOver  *GameOver `json:"game_over,omitempty"`
}

// AdvanceNight runs the night cycle: the daily simulation tick over all
// chains, then the news engine, then end-of-day financial and health rules,
// then the loan expiration check for the new day.
func AdvanceNight(gs *GameState, content *Content, tuning Tuning, rng *rand.Rand) (*NightReport, error) {
	if gs.Over != nil {
		return nil, ErrGameOver
	}
	gs.Customer = nil

	tick := sim.RunDailyTick(gs.Chains, gs.Day, rng)
	gs.Chains = tick.Chains
	for _, m := range tick.Mail {
		scheduleMail(gs, m)
	}

	active, added := AdvanceNews(gs.ActiveNews, content.News, gs, gs.Violations)
	gs.ActiveNews = active

	report := &NightReport{}
	for _, id := range added {
		for i := range content.News {
			if content.News[i].ID == id {
				report.Headlines = append(report.Headlines, content.News[i].Headline)
			}
		}
	}

	gs.Cash -= tuning.DailyUpkeep
	if tuning.MotherCareCost > 0 && gs.Cash >= tuning.MotherCareCost && gs.MedicalDebt > 0 {
		gs.Cash -= tuning.MotherCareCost
		gs.MedicalDebt -= tuning.MotherCareCost
		if gs.MotherHealth < 100 {
			gs.MotherHealth++
		}
	} else if gs.MotherHealth > 0 {
		gs.MotherHealth--
	}
	if gs.Cash < 0 {
		gs.Over = &GameOver{Day: gs.Day, Reason: "the till ran dry; the shop's doors close for good"}
		report.GameOver = gs.Over
		return report, nil
	}

	gs.Day++
	report.Day = gs.Day

	before := make(map[string]ItemStatus, len(gs.Items))
	for i := range gs.Items {
		before[gs.Items[i].ID] = gs.Items[i].Status
	}
	gs.Items = ExpireLoans(gs.Items, gs.Day)
	for i := range gs.Items {
		if before[gs.Items[i].ID] == StatusActive && gs.Items[i].Status == StatusForfeit {
			report.Forfeited = append(report.Forfeited, gs.Items[i].Name)
		}
	}

	report.MailCount = deliverMail(gs, content)
	return report, nil
}

// BeginDay computes the day's action-point budget and runs event
// eligibility. Any error during event generation is logged and treated as no
// customer today.
func BeginDay(gs *GameState, content *Content, tuning Tuning, rng *rand.Rand) *Customer {
	if gs.Over != nil {
		return nil
	}
	mods := gs.Modifiers(content)
	ap := tuning.BaseActionPoints + mods.ActionPoints
	if ap < 1 {
		ap = 1
	}
	gs.ActionPoints = ap

	sel := SelectDailyEvent(gs.Chains, content.Events, gs.Items, gs.Day, rng)
	if sel == nil {
		gs.Customer = nil
		return nil
	}

	var cust *Customer
	var err error
	if sel.IsRenewal() {
		cust, err = BuildRenewalCustomer(gs.Chain(sel.RenewalChain), FindItem(gs.Items, sel.RenewalItem), rng)
	} else {
		chain := gs.Chain(sel.Event.ChainID)
		cust, err = BuildCustomer(sel.Event, chain, gs.Items, gs.Day, rng)
		if err == nil && sel.Event.Category == EventRedemptionCheck {
			if res := ResolveCustody(sel.Event, gs.Items); res != nil {
				cust.Lines.Pitch = res.Branch.Dialogue.Resolve(chain)
			}
		}
	}
	if err != nil {
		log.Printf("event generation failed, no customer today: %v", err)
		gs.Customer = nil
		return nil
	}
	gs.Customer = cust
	return cust
}

// AcceptOffer resolves a new pawn deal with the current customer: scores the
// transaction, pays out cash, takes the item into custody, applies the
// event's outcome effects for the deal quality, and checks milestones.
func AcceptOffer(gs *GameState, content *Content, tuning Tuning, terms DealTerms) (*DealResult, error) {
	cust := gs.Customer
	if cust == nil {
		return nil, ErrNoCustomer
	}
	if gs.Over != nil {
		return nil, ErrGameOver
	}
	if terms.Offer > gs.Cash {
		return nil, fmt.Errorf("%w: need %.0f, have %.0f", ErrInsufficientCash, terms.Offer, gs.Cash)
	}
	if terms.TermDays <= 0 {
		terms.TermDays = tuning.DefaultTermDays
	}

	mods := gs.Modifiers(content)
	deal, err := EvaluateDeal(cust, terms, gs.Day, mods.RiskActive())
	if err != nil {
		return nil, err
	}

	gs.Cash -= deal.CashOut
	gs.Items = append(gs.Items, deal.Item)
	applyReputation(gs, content, deal.Reputation)
	gs.LastSatisfaction = deal.Satisfaction

	if ev := content.EventByID(cust.EventID); ev != nil {
		applyChainEffects(gs, content, ev.ChainID, ev.Outcomes[deal.Quality], deal.CashOut, ev.TargetItemID)
	}
	gs.Customer = nil
	return deal, nil
}

// RejectOffer turns the current customer away and applies the event's reject
// effects. The customer leaves desperate.
func RejectOffer(gs *GameState, content *Content) error {
	cust := gs.Customer
	if cust == nil {
		return ErrNoCustomer
	}
	gs.LastSatisfaction = ScoreSatisfaction(false, 0, 0, cust.MinimumAmount)
	if ev := content.EventByID(cust.EventID); ev != nil {
		applyChainEffects(gs, content, ev.ChainID, ev.OnReject, 0, ev.TargetItemID)
	}
	gs.Customer = nil
	return nil
}

// VisitOutcome summarizes a resolved redemption or post-forfeit visit.
type VisitOutcome struct {
	Outcome  CustodyOutcome   `json:"outcome,omitempty"`
	Intent   RedemptionIntent `json:"intent,omitempty"`
	CashIn   float64          `json:"cash_in"`
	Penalty  float64          `json:"penalty"`
	GameOver *GameOver        `json:"game_over,omitempty"`
}

// ResolveRedemptionVisit plays out a redemption-check visit: picks the
// custody branch, settles a breach penalty on a hostile takeover (fatal when
// unpayable), lets the borrower redeem or extend what they can afford, and
// applies the branch's effects.
func ResolveRedemptionVisit(gs *GameState, content *Content) (*VisitOutcome, error) {
	cust := gs.Customer
	if cust == nil {
		return nil, ErrNoCustomer
	}
	if gs.Over != nil {
		return nil, ErrGameOver
	}
	ev := content.EventByID(cust.EventID)
	if ev == nil {
		return nil, fmt.Errorf("shop: unknown event %q", cust.EventID)
	}

	if cust.Interaction == InteractPostForfeit {
		applyChainEffects(gs, content, ev.ChainID, ev.OnFailure, 0, ev.TargetItemID)
		gs.Customer = nil
		return &VisitOutcome{}, nil
	}

	out := &VisitOutcome{Intent: cust.Intent}
	res := ResolveCustody(ev, gs.Items)
	if res == nil {
		return nil, ErrNoRedeemable
	}
	out.Outcome = res.Outcome

	switch res.Outcome {
	case CustodyHostileTakeover:
		target := FindItem(gs.Items, ev.TargetItemID)
		penalty, err := BreachPenalty(target.Pawn)
		if err != nil {
			return nil, err
		}
		out.Penalty = penalty
		if gs.Cash < penalty {
			gs.Over = &GameOver{Day: gs.Day, Reason: fmt.Sprintf(
				"unable to pay the %.0f breach penalty for %s; the debt collectors take the shop", penalty, target.Name)}
			out.GameOver = gs.Over
			gs.Customer = nil
			return out, nil
		}
		gs.Cash -= penalty
		target.Status = StatusRedeemed
		target.AppendTxn(gs.Day, TxnSettled, "breach settled at double the contract valuation")
	case CustodyAllSafe, CustodyCoreSafe:
		target := FindItem(gs.Items, ev.TargetItemID)
		if target == nil || target.Pawn == nil {
			return nil, ErrNoRedeemable
		}
		switch cust.Intent {
		case IntentRedeem:
			quote, err := Redemption(target.Pawn, gs.Day)
			if err != nil {
				return nil, err
			}
			gs.Cash += quote.Total
			out.CashIn = quote.Total
			target.Status = StatusRedeemed
			target.AppendTxn(gs.Day, TxnRedeemed, fmt.Sprintf("redeemed for %.0f", quote.Total))
		case IntentExtend:
			cost := interestOnly(target.Pawn)
			gs.Cash += cost
			out.CashIn = cost
			extendLoan(target, gs.Day)
			applyChainEffects(gs, content, ev.ChainID, ev.OnExtend, 0, ev.TargetItemID)
		}
	}

	applyChainEffects(gs, content, ev.ChainID, res.Branch.Effects, out.CashIn, ev.TargetItemID)
	gs.Customer = nil
	return out, nil
}

// ResolveRenewal answers a synthesized renewal request. Accepting collects
// the interest and pushes the due date out; declining sends the borrower
// home to let the clock run.
func ResolveRenewal(gs *GameState, accept bool) (*VisitOutcome, error) {
	cust := gs.Customer
	if cust == nil || cust.Renewal == nil {
		return nil, ErrNoCustomer
	}
	out := &VisitOutcome{}
	if accept {
		item := FindItem(gs.Items, cust.Renewal.ItemID)
		if item == nil || item.Pawn == nil {
			return nil, ErrNoRedeemable
		}
		gs.Cash += cust.Renewal.InterestOnly
		out.CashIn = cust.Renewal.InterestOnly
		extendLoan(item, gs.Day)
		if chain := gs.Chain(cust.ChainID); chain != nil {
			chain.SetVar("trust", chain.Var("trust")+5)
			chain.AppendLog(gs.Day, "the shop granted more time on the loan", sim.SeverityInfo)
		}
	} else if chain := gs.Chain(cust.ChainID); chain != nil {
		chain.SetVar("trust", chain.Var("trust")-10)
		chain.AppendLog(gs.Day, "the shop refused to renew the loan", sim.SeverityCrisis)
	}
	gs.Customer = nil
	return out, nil
}

// ForceSell liquidates an item in custody at its perceived value adjusted by
// market modifiers. Selling out from under a live loan raises the breach
// violation flag and exposes the shop to the double-indemnity penalty.
func ForceSell(gs *GameState, content *Content, itemID string) (float64, error) {
	if gs.Over != nil {
		return 0, ErrGameOver
	}
	item := FindItem(gs.Items, itemID)
	if item == nil {
		return 0, fmt.Errorf("shop: no such item %q", itemID)
	}
	if !item.InCustody() {
		return 0, fmt.Errorf("shop: %s is not in custody", item.Name)
	}
	wasActive := item.Status == StatusActive

	mods := gs.Modifiers(content)
	price := item.PerceivedValue * mods.PriceMultiplier(item.Category)
	gs.Cash += price
	item.Status = StatusSold
	item.AppendTxn(gs.Day, TxnSold, fmt.Sprintf("sold for %.0f", price))

	if wasActive {
		gs.RaiseViolation(ViolationBreach)
	}
	return price, nil
}

func extendLoan(item *Item, day int) {
	item.Pawn.DueDate += item.Pawn.TermDays
	item.Pawn.ExtensionCount++
	item.AppendTxn(day, TxnExtended, fmt.Sprintf("term extended to day %d", item.Pawn.DueDate))
}

// applyChainEffects interprets an effect list against one chain and commits
// the results: chain replacement, bulk inventory commands, scheduled mail,
// and direct credibility adjustments.
func applyChainEffects(gs *GameState, content *Content, chainID sim.ChainID, effects []sim.Effect, dealCash float64, targetItemID string) {
	if len(effects) == 0 {
		return
	}
	chain := gs.Chain(chainID)
	if chain == nil {
		return
	}
	result := sim.ApplyEffects(*chain, effects, dealCash, gs.Day)
	*chain = result.Chain

	for _, m := range result.Mail {
		scheduleMail(gs, m)
	}
	if result.CredibilityDelta != 0 {
		applyReputation(gs, content, RepDelta{Credibility: result.CredibilityDelta})
	}
	for _, cmd := range result.Inventory {
		executeInventoryCommand(gs, cmd, targetItemID)
	}
}

// executeInventoryCommand applies one bulk operation to the chain's items.
func executeInventoryCommand(gs *GameState, cmd sim.InventoryCommand, targetItemID string) {
	for _, it := range ChainItems(gs.Items, cmd.ChainID) {
		isTarget := it.ID == targetItemID
		switch cmd.Op {
		case sim.InvRedeemAll, sim.InvRedeemTarget:
			if cmd.Op == sim.InvRedeemTarget && !isTarget {
				continue
			}
			if it.Status != StatusActive {
				continue
			}
			payoff := BulkPayoff(it.Pawn)
			gs.Cash += payoff
			it.Status = StatusRedeemed
			it.AppendTxn(gs.Day, TxnRedeemed, fmt.Sprintf("redeemed in bulk for %.0f", payoff))
		case sim.InvForfeitOthers, sim.InvForfeitAll:
			if cmd.Op == sim.InvForfeitOthers && isTarget {
				continue
			}
			if it.Status != StatusActive {
				continue
			}
			it.Status = StatusForfeit
			it.AppendTxn(gs.Day, TxnForfeited, "abandoned by its owner")
		case sim.InvSellAll, sim.InvSellTarget:
			if cmd.Op == sim.InvSellTarget && !isTarget {
				continue
			}
			if !it.InCustody() {
				continue
			}
			gs.Cash += it.PerceivedValue
			it.Status = StatusSold
			it.AppendTxn(gs.Day, TxnSold, "liquidated")
		}
	}
}

// applyReputation commits a reputation delta: milestones are checked against
// the projected profile before the clamped value is stored.
func applyReputation(gs *GameState, content *Content, delta RepDelta) {
	projected := delta.Apply(gs.Reputation)
	for _, id := range CheckMilestones(content.Milestones, gs.Milestones, projected) {
		gs.Milestones[id] = true
	}
	gs.Reputation = projected.Clamp()
}

func scheduleMail(gs *GameState, m sim.MailDirective) {
	gs.PendingMail = append(gs.PendingMail, ScheduledMail{
		ID:         uuid.NewString(),
		TemplateID: m.TemplateID,
		DeliverDay: gs.Day + m.DelayDays,
		Metadata:   m.Metadata,
	})
}

// deliverMail moves due scheduled mail into the inbox, rendering templates.
// Unknown template ids deliver with the id as subject rather than dropping.
func deliverMail(gs *GameState, content *Content) int {
	var remaining []ScheduledMail
	count := 0
	for _, m := range gs.PendingMail {
		if m.DeliverDay > gs.Day {
			remaining = append(remaining, m)
			continue
		}
		subject, body := m.TemplateID, ""
		if tmpl, ok := content.Mail[m.TemplateID]; ok {
			subject, body = tmpl.Subject, tmpl.Body
		}
		gs.Inbox = append(gs.Inbox, Mail{
			ID:       m.ID,
			Day:      gs.Day,
			Subject:  subject,
			Body:     body,
			Metadata: m.Metadata,
		})
		count++
	}
	gs.PendingMail = remaining
	return count
}

// EventByID returns the authored event with the given id, or nil.
func (c *Content) EventByID(id string) *Event {
	for i := range c.Events {
		if c.Events[i].ID == id {
			return &c.Events[i]
		}
	}
	return nil
}
