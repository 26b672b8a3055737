package shop

import (
	"encoding/json"
	"strings"

	"MidnightPledge/internal/sim"
)

// MailTemplate is authored mail content, keyed by template id.
type MailTemplate struct {
	ID      string `json:"id" yaml:"id"`
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

// ScheduledMail is a mail directive waiting for its delivery day.
type ScheduledMail struct {
	ID         string            `json:"id"`
	TemplateID string            `json:"template_id"`
	DeliverDay int               `json:"deliver_day"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Mail is a delivered inbox item.
type Mail struct {
	ID       string            `json:"id"`
	Day      int               `json:"day"`
	Subject  string            `json:"subject"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Content bundles the static registries the engine interprets: story events,
// mail templates, the news catalog, reputation milestones. Read-only inputs,
// never mutated at runtime.
type Content struct {
	Chains     []sim.Chain
	Events     []Event
	News       []NewsDef
	Mail       map[string]MailTemplate
	Milestones []Milestone
}

// GameOver is the terminal signal. Not a recoverable error.
type GameOver struct {
	Day    int    `json:"day"`
	Reason string `json:"reason"`
}

// GameState is the single-owner mutable state the core reads from and
// updates. All mutation goes through the explicit operations in cycle.go.
type GameState struct {
	Day          int     `json:"day"`
	Cash         float64 `json:"cash"`
	ActionPoints int     `json:"action_points"`

	Chains     []sim.Chain       `json:"chains"`
	Items      []Item            `json:"items"`
	Reputation ReputationProfile `json:"reputation"`
	Milestones map[string]bool   `json:"milestones"`
	ActiveNews []ActiveNews      `json:"active_news"`

	PendingMail []ScheduledMail `json:"pending_mail,omitempty"`
	Inbox       []Mail          `json:"inbox,omitempty"`
	Violations  map[string]bool `json:"violations,omitempty"`

	// Household pressure tracked outside the chain system.
	MotherHealth float64 `json:"mother_health"`
	MedicalDebt  float64 `json:"medical_debt"`

	LastSatisfaction Satisfaction `json:"last_satisfaction,omitempty"`
	Customer         *Customer    `json:"customer,omitempty"`
	Over             *GameOver    `json:"over,omitempty"`
}

// NewGameState builds the day-one state from content and starting values.
func NewGameState(content *Content, startingCash float64, actionPoints int) *GameState {
	gs := &GameState{
		Day:          1,
		Cash:         startingCash,
		ActionPoints: actionPoints,
		Milestones:   make(map[string]bool),
		Violations:   make(map[string]bool),
		MotherHealth: 60,
		MedicalDebt:  2000,
	}
	gs.Chains = make([]sim.Chain, len(content.Chains))
	for i := range content.Chains {
		gs.Chains[i] = content.Chains[i].Clone()
	}
	return gs
}

// Chain returns the live chain with the given id, or nil.
func (gs *GameState) Chain(id sim.ChainID) *sim.Chain {
	return sim.FindChain(gs.Chains, id)
}

// RaiseViolation sets a violation flag for the news engine's standing
// consequence items.
func (gs *GameState) RaiseViolation(flag string) {
	if gs.Violations == nil {
		gs.Violations = make(map[string]bool)
	}
	gs.Violations[flag] = true
}

// Lookup resolves a dotted news-trigger path. Supported roots: "day",
// "cash", "reputation.<axis>", "chain_<id>.<variable>". Unknown paths read 0.
func (gs *GameState) Lookup(path string) float64 {
	switch path {
	case "day":
		return float64(gs.Day)
	case "cash":
		return gs.Cash
	}
	if axis, ok := strings.CutPrefix(path, "reputation."); ok {
		return gs.Reputation.Axis(RepAxis(axis))
	}
	if rest, ok := strings.CutPrefix(path, "chain_"); ok {
		id, variable, found := strings.Cut(rest, ".")
		if !found {
			return 0
		}
		return gs.Chain(sim.ChainID(id)).Var(variable)
	}
	return 0
}

// Modifiers aggregates the market modifiers of currently active news.
func (gs *GameState) Modifiers(content *Content) MarketModifiers {
	return AggregateModifiers(gs.ActiveNews, content.News)
}

// Snapshot serializes the state to JSON for the external persistence layer.
func (gs *GameState) Snapshot() ([]byte, error) {
	return json.Marshal(gs)
}

// LoadSnapshot restores a state from a JSON snapshot.
func LoadSnapshot(data []byte) (*GameState, error) {
	gs := &GameState{}
	if err := json.Unmarshal(data, gs); err != nil {
		return nil, err
	}
	if gs.Milestones == nil {
		gs.Milestones = make(map[string]bool)
	}
	if gs.Violations == nil {
		gs.Violations = make(map[string]bool)
	}
	return gs, nil
}
