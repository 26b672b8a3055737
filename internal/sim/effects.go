package sim

// EffectKind discriminates chain effects emitted by story events.
type EffectKind string

const (
	// EffectAddDealFunds adds the just-completed deal's cash magnitude to
	// the chain's funds variable.
	EffectAddDealFunds EffectKind = "add_deal_funds"
	// EffectAddFunds adds a fixed amount to the chain's funds variable.
	EffectAddFunds EffectKind = "add_funds"
	// EffectSetStage sets the chain's stage marker.
	EffectSetStage EffectKind = "set_stage"
	// EffectModifyVar adds a delta to a named variable, clamped to [0,100].
	EffectModifyVar EffectKind = "modify_var"
	// EffectSetVar sets a named variable to an absolute value, unclamped.
	EffectSetVar EffectKind = "set_var"
	// EffectDeactivate ends the chain.
	EffectDeactivate EffectKind = "deactivate"
	// EffectScheduleMail schedules a mail item, optionally gated on a
	// chain-variable predicate.
	EffectScheduleMail EffectKind = "schedule_mail"
	// EffectAdjustCredibility adjusts the shop's Credibility axis directly.
	// The delta is reported to the caller, not clamped here.
	EffectAdjustCredibility EffectKind = "adjust_credibility"

	// Bulk inventory operations scoped to items belonging to this chain.
	EffectRedeemAll     EffectKind = "redeem_all"
	EffectRedeemTarget  EffectKind = "redeem_target"
	EffectForfeitOthers EffectKind = "forfeit_others"
	EffectForfeitAll    EffectKind = "forfeit_all"
	EffectSellAll       EffectKind = "sell_all"
	EffectSellTarget    EffectKind = "sell_target"
)

const (
	// VarFunds is the conventional funds variable name.
	VarFunds = "funds"

	varClampMin = 0
	varClampMax = 100
)

// Effect is one declarative instruction against a chain.
type Effect struct {
	Kind   EffectKind     `json:"kind" yaml:"kind"`
	Var    string         `json:"var,omitempty" yaml:"var,omitempty"`
	Amount float64        `json:"amount,omitempty" yaml:"amount,omitempty"`
	Stage  int            `json:"stage,omitempty" yaml:"stage,omitempty"`
	When   *Condition     `json:"when,omitempty" yaml:"when,omitempty"`
	Mail   *MailDirective `json:"mail,omitempty" yaml:"mail,omitempty"`
}

// InventoryOp names a bulk inventory command for the shop to execute.
type InventoryOp string

const (
	InvRedeemAll     InventoryOp = "redeem_all"
	InvRedeemTarget  InventoryOp = "redeem_target"
	InvForfeitOthers InventoryOp = "forfeit_others"
	InvForfeitAll    InventoryOp = "forfeit_all"
	InvSellAll       InventoryOp = "sell_all"
	InvSellTarget    InventoryOp = "sell_target"
)

// InventoryCommand is a bulk operation over the items of one chain, collected
// during effect interpretation and applied after all effects are processed.
type InventoryCommand struct {
	ChainID ChainID
	Op      InventoryOp
}

// ApplyResult is the outcome of interpreting an effect list against a chain.
type ApplyResult struct {
	Chain            Chain
	Inventory        []InventoryCommand
	Mail             []MailDirective
	CredibilityDelta float64
}

// ApplyEffects interprets an ordered effect list against one chain. The deal
// cash magnitude feeds EffectAddDealFunds. Variable deltas are clamped to
// [0,100]; absolute sets are deliberately unclamped since content may push
// values past 100 (debt, for example).
func ApplyEffects(chain Chain, effects []Effect, dealCash float64, day int) ApplyResult {
	result := ApplyResult{Chain: chain.Clone()}
	c := &result.Chain
	for _, e := range effects {
		switch e.Kind {
		case EffectAddDealFunds:
			amount := dealCash
			if amount < 0 {
				amount = -amount
			}
			c.SetVar(VarFunds, c.Var(VarFunds)+amount)
		case EffectAddFunds:
			c.SetVar(VarFunds, c.Var(VarFunds)+e.Amount)
		case EffectSetStage:
			c.Stage = e.Stage
		case EffectModifyVar:
			next := c.Var(e.Var) + e.Amount
			if next < varClampMin {
				next = varClampMin
			}
			if next > varClampMax {
				next = varClampMax
			}
			c.SetVar(e.Var, next)
		case EffectSetVar:
			c.SetVar(e.Var, e.Amount)
		case EffectDeactivate:
			c.Active = false
		case EffectScheduleMail:
			if e.Mail == nil {
				continue
			}
			if e.When != nil && !e.When.Eval(c) {
				continue
			}
			result.Mail = append(result.Mail, *e.Mail)
		case EffectAdjustCredibility:
			result.CredibilityDelta += e.Amount
		case EffectRedeemAll, EffectRedeemTarget, EffectForfeitOthers,
			EffectForfeitAll, EffectSellAll, EffectSellTarget:
			result.Inventory = append(result.Inventory, InventoryCommand{
				ChainID: c.ID,
				Op:      InventoryOp(e.Kind),
			})
		}
	}
	return result
}
