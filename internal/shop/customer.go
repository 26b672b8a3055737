package shop

import "MidnightPledge/internal/sim"

// InteractionType is the mode of a customer visit.
type InteractionType string

const (
	InteractPawn        InteractionType = "PAWN"
	InteractRedeem      InteractionType = "REDEEM"
	InteractPostForfeit InteractionType = "POST_FORFEIT"
	InteractRenewal     InteractionType = "RENEWAL"
)

// RedemptionIntent is what a returning borrower can afford to do.
type RedemptionIntent string

const (
	IntentRedeem RedemptionIntent = "REDEEM"
	IntentExtend RedemptionIntent = "EXTEND"
	IntentLeave  RedemptionIntent = "LEAVE"
)

// NegotiationStyle shapes how a customer haggles.
type NegotiationStyle string

const (
	StyleDesperate NegotiationStyle = "desperate"
	StyleStubborn  NegotiationStyle = "stubborn"
	StylePolite    NegotiationStyle = "polite"
	StyleShrewd    NegotiationStyle = "shrewd"
)

// Lines is a customer's resolved dialogue set.
type Lines struct {
	Greeting   string `json:"greeting"`
	Pitch      string `json:"pitch"`
	Haggle     string `json:"haggle"`
	AcceptLine string `json:"accept"`
	RejectLine string `json:"reject"`
	Farewell   string `json:"farewell"`
}

// RenewalProposal is an ad-hoc extension request synthesized without an
// authored event template.
type RenewalProposal struct {
	ItemID       string  `json:"item_id"`
	InterestOnly float64 `json:"interest_only"`
	ExtraDays    int     `json:"extra_days"`
}

// Customer is one ephemeral, fully-resolved visitor. Built by the
// instantiator, discarded once the interaction resolves.
type Customer struct {
	VisitID string      `json:"visit_id"`
	ChainID sim.ChainID `json:"chain_id,omitempty"`
	EventID string      `json:"event_id,omitempty"`
	Name    string      `json:"name"`

	Lines    Lines            `json:"lines"`
	Resolve  int              `json:"resolve"`
	Style    NegotiationStyle `json:"style"`
	Patience int              `json:"patience"`
	Mood     int              `json:"mood"`

	Item *Item `json:"item,omitempty"`

	DesiredAmount float64 `json:"desired_amount"`
	MinimumAmount float64 `json:"minimum_amount"`
	MaxRepayment  float64 `json:"max_repayment,omitempty"`

	Interaction InteractionType  `json:"interaction"`
	Intent      RedemptionIntent `json:"intent,omitempty"`
	Wallet      float64          `json:"wallet,omitempty"`

	Renewal     *RenewalProposal `json:"renewal,omitempty"`
	Recap       []sim.LogEntry   `json:"recap,omitempty"`
	Observation string           `json:"observation,omitempty"`
}
