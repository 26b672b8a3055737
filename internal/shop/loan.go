package shop

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOfferTooLow is returned when an offer falls below the customer's
	// minimum acceptable amount.
	ErrOfferTooLow = errors.New("shop: offer below minimum acceptable amount")
	// ErrNoPawnTerms is returned for cost queries on items without a loan.
	ErrNoPawnTerms = errors.New("shop: item has no pawn terms")
)

// BreachMultiplier is the fixed double-indemnity rule: selling an item out
// from under its loan costs twice the contract valuation. Not negotiable.
const BreachMultiplier = 2.0

// RedemptionQuote is the price of buying a pawned item back.
type RedemptionQuote struct {
	DaysPassed    int     `json:"days_passed"`
	EffectiveDays int     `json:"effective_days"`
	Interest      float64 `json:"interest"`
	Total         float64 `json:"total"`
}

// Redemption computes the cost of redeeming a loan on a given day. A
// borrower who redeems early still owes a full term's interest; a late
// borrower owes interest for actual elapsed days.
func Redemption(p *PawnInfo, today int) (*RedemptionQuote, error) {
	if p == nil {
		return nil, ErrNoPawnTerms
	}
	daysPassed := today - p.StartDate
	if daysPassed < 1 {
		daysPassed = 1
	}
	effectiveDays := daysPassed
	if p.TermDays > effectiveDays {
		effectiveDays = p.TermDays
	}
	interest := math.Ceil(p.Principal * p.InterestRate * float64(effectiveDays) / 7)
	return &RedemptionQuote{
		DaysPassed:    daysPassed,
		EffectiveDays: effectiveDays,
		Interest:      interest,
		Total:         p.Principal + interest,
	}, nil
}

// BreachPenalty is what the shop owes for selling an item before its rightful
// redemption: exactly 2x the valuation captured at loan origination.
func BreachPenalty(p *PawnInfo) (float64, error) {
	if p == nil {
		return 0, ErrNoPawnTerms
	}
	return BreachMultiplier * p.Valuation, nil
}

// DealQuality classifies an accepted offer by its ratio to the desired amount.
type DealQuality string

const (
	DealFleeced DealQuality = "fleeced"
	DealFair    DealQuality = "fair"
	DealPremium DealQuality = "premium"
)

// ClassifyDeal buckets offer/desired: <0.85 fleeced, >1.05 premium, else fair.
func ClassifyDeal(offer, desired float64) DealQuality {
	if desired <= 0 {
		return DealFair
	}
	ratio := offer / desired
	if ratio < 0.85 {
		return DealFleeced
	}
	if ratio > 1.05 {
		return DealPremium
	}
	return DealFair
}

// Satisfaction is how the customer walks away feeling.
type Satisfaction string

const (
	SatisfactionDesperate Satisfaction = "DESPERATE"
	SatisfactionGrateful  Satisfaction = "GRATEFUL"
	SatisfactionResentful Satisfaction = "RESENTFUL"
	SatisfactionNeutral   Satisfaction = "NEUTRAL"
)

// ScoreSatisfaction rates the outcome of a negotiation. A rejected customer
// leaves desperate; zero interest or a generous offer earns gratitude;
// usurious rates breed resentment; a near-minimum lowball is merely neutral.
func ScoreSatisfaction(accepted bool, rate, offer, minimum float64) Satisfaction {
	if !accepted {
		return SatisfactionDesperate
	}
	if rate == 0 || offer >= 1.5*minimum {
		return SatisfactionGrateful
	}
	if rate >= 0.20 {
		return SatisfactionResentful
	}
	return SatisfactionNeutral
}

// DealTerms are the player's side of a new pawn offer.
type DealTerms struct {
	Offer    float64 `json:"offer"`
	Rate     float64 `json:"rate"`
	TermDays int     `json:"term_days"`
}

// DealResult is a finalized pawn transaction.
type DealResult struct {
	Quality      DealQuality  `json:"quality"`
	Reputation   RepDelta     `json:"reputation"`
	Satisfaction Satisfaction `json:"satisfaction"`
	Item         Item         `json:"item"`
	CashOut      float64      `json:"cash_out"`
}

// EvaluateDeal scores a new pawn offer against the customer's asks and
// produces the finalized item snapshot (status ACTIVE, pawn terms attached,
// log entry appended). marketRisk indicates an active market-risk modifier
// from the news engine. The returned reputation delta is unclamped; the
// caller clamps after applying.
func EvaluateDeal(cust *Customer, terms DealTerms, day int, marketRisk bool) (*DealResult, error) {
	if cust == nil || cust.Item == nil {
		return nil, fmt.Errorf("shop: no item under negotiation")
	}
	if terms.Offer < cust.MinimumAmount {
		return nil, fmt.Errorf("%w: offered %.0f, minimum %.0f", ErrOfferTooLow, terms.Offer, cust.MinimumAmount)
	}

	var rep RepDelta
	if terms.Offer >= cust.DesiredAmount {
		rep.Humanity += 3
		rep.Credibility -= 1
	} else {
		rep.Credibility += 1
	}
	if terms.Rate == 0 {
		rep.Humanity += 5
	} else if terms.Rate >= 0.20 {
		rep.Humanity -= 3
		rep.Underworld += 2
		rep.Credibility -= 2
	}
	if cust.Item.Stolen {
		rep.Underworld += 5
		rep.Credibility -= 2
		if marketRisk {
			rep.Credibility -= 20
			rep.Underworld += 5
		}
	}
	if cust.Item.Fake {
		rep.Credibility -= 5
	}

	item := *cust.Item
	item.Status = StatusActive
	item.Pawn = &PawnInfo{
		Principal:    terms.Offer,
		InterestRate: terms.Rate,
		StartDate:    day,
		TermDays:     terms.TermDays,
		DueDate:      day + terms.TermDays,
		Valuation:    item.PerceivedValue,
	}
	item.Log = append([]TxnEntry(nil), item.Log...)
	item.AppendTxn(day, TxnPawned, fmt.Sprintf("%s pawned %s for %.0f at %.0f%%",
		cust.Name, item.Name, terms.Offer, terms.Rate*100))

	return &DealResult{
		Quality:      ClassifyDeal(terms.Offer, cust.DesiredAmount),
		Reputation:   rep,
		Satisfaction: ScoreSatisfaction(true, terms.Rate, terms.Offer, cust.MinimumAmount),
		Item:         item,
		CashOut:      terms.Offer,
	}, nil
}
