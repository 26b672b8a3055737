// Package shop implements the customer-facing side of the simulation:
// inventory and loan bookkeeping, event selection, customer instantiation,
// the news/market engine, and reputation milestones.
package shop

import (
	"math"

	"MidnightPledge/internal/sim"
)

// ItemStatus is an item's lifecycle state. Redeemed is terminal; Sold is
// terminal except for the breach-settlement path that also ends in Redeemed.
type ItemStatus string

const (
	StatusActive   ItemStatus = "ACTIVE"
	StatusForfeit  ItemStatus = "FORFEIT"
	StatusSold     ItemStatus = "SOLD"
	StatusRedeemed ItemStatus = "REDEEMED"
)

// Transaction log entry kinds.
const (
	TxnPawned    = "pawned"
	TxnForfeited = "forfeited"
	TxnSold      = "sold"
	TxnRedeemed  = "redeemed"
	TxnExtended  = "extended"
	TxnSettled   = "settled"
)

// TxnEntry is one entry in an item's transaction log.
type TxnEntry struct {
	Day  int    `json:"day"`
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// PawnInfo holds the loan terms attached to a pawned item. Valuation is the
// contract valuation captured at origination, not current market value.
type PawnInfo struct {
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interest_rate"`
	StartDate      int     `json:"start_date"`
	TermDays       int     `json:"term_days"`
	DueDate        int     `json:"due_date"`
	Valuation      float64 `json:"valuation"`
	ExtensionCount int     `json:"extension_count"`
}

// ValuationRange is a [low, high] appraisal band.
type ValuationRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Item is one object in the shop's custody or negotiation.
type Item struct {
	ID          string      `json:"id"`
	ChainID     sim.ChainID `json:"chain_id,omitempty"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Grade       string      `json:"grade"`
	Fake        bool        `json:"fake,omitempty"`
	Stolen      bool        `json:"stolen,omitempty"`
	Sentimental bool        `json:"sentimental,omitempty"`
	Appraised   bool        `json:"appraised,omitempty"`

	RealValue      float64 `json:"real_value"`
	PerceivedValue float64 `json:"perceived_value"`
	// InitialRange snapshots the appraisal band before any narrowing.
	InitialRange ValuationRange `json:"initial_range"`

	Status ItemStatus `json:"status"`
	Pawn   *PawnInfo  `json:"pawn,omitempty"`
	Log    []TxnEntry `json:"log,omitempty"`
}

// InCustody reports whether the item is still physically in the shop and not
// yet lost to the customer (active loan or forfeited collateral).
func (it *Item) InCustody() bool {
	return it.Status == StatusActive || it.Status == StatusForfeit
}

// SoldBeforeForfeit reports whether the item was force-sold while its loan
// was still live: sold with no forfeiture on record.
func (it *Item) SoldBeforeForfeit() bool {
	if it.Status != StatusSold {
		return false
	}
	for _, e := range it.Log {
		if e.Kind == TxnForfeited {
			return false
		}
	}
	return true
}

// AppendTxn appends a transaction log entry.
func (it *Item) AppendTxn(day int, kind, text string) {
	it.Log = append(it.Log, TxnEntry{Day: day, Kind: kind, Text: text})
}

// ExpireLoans transitions every ACTIVE item past its due date to FORFEIT.
// Items expire strictly after the due date, not on it.
func ExpireLoans(items []Item, day int) []Item {
	for i := range items {
		it := &items[i]
		if it.Status != StatusActive || it.Pawn == nil {
			continue
		}
		if day > it.Pawn.DueDate {
			it.Status = StatusForfeit
			it.AppendTxn(day, TxnForfeited, "loan term expired unpaid")
		}
	}
	return items
}

// ChainItems returns pointers to all items belonging to a chain.
func ChainItems(items []Item, chainID sim.ChainID) []*Item {
	var out []*Item
	for i := range items {
		if items[i].ChainID == chainID {
			out = append(out, &items[i])
		}
	}
	return out
}

// FindItem returns the item with the given id, or nil.
func FindItem(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// BulkPayoff is the cash a customer pays to clear one loan during a bulk
// redemption: principal times (1 + rate), floored.
func BulkPayoff(p *PawnInfo) float64 {
	if p == nil {
		return 0
	}
	return math.Floor(p.Principal * (1 + p.InterestRate))
}
