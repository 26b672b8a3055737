package sim

import "math/rand"

// RuleKind discriminates daily simulation rules.
type RuleKind string

const (
	// RuleDelta adds a fixed amount to a target variable every day.
	RuleDelta RuleKind = "delta"
	// RuleChance rolls [0,100) against a fixed or variable-driven
	// probability and runs one of two sub-operation lists.
	RuleChance RuleKind = "chance"
	// RuleThreshold runs sub-operations once a variable crosses a value.
	RuleThreshold RuleKind = "threshold"
	// RuleCompound adds to a target when a source variable crosses a
	// threshold, with an optional clamp on the target.
	RuleCompound RuleKind = "compound"
)

// SubOpKind discriminates sub-operations run by chance/threshold rules.
type SubOpKind string

const (
	SubOpAdd        SubOpKind = "add"
	SubOpSet        SubOpKind = "set"
	SubOpSetStage   SubOpKind = "set_stage"
	SubOpDeactivate SubOpKind = "deactivate"
	SubOpMail       SubOpKind = "mail"
)

// MailDirective schedules a mail item for the external mail subsystem. The
// tick collects directives; the caller is responsible for delivery.
type MailDirective struct {
	TemplateID string            `json:"template_id" yaml:"template_id"`
	DelayDays  int               `json:"delay_days" yaml:"delay_days"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SubOp is a single operation run by a chance or threshold rule.
type SubOp struct {
	Kind   SubOpKind      `json:"kind" yaml:"kind"`
	Var    string         `json:"var,omitempty" yaml:"var,omitempty"`
	Amount float64        `json:"amount,omitempty" yaml:"amount,omitempty"`
	Stage  int            `json:"stage,omitempty" yaml:"stage,omitempty"`
	Mail   *MailDirective `json:"mail,omitempty" yaml:"mail,omitempty"`
}

// Rule is one declarative daily simulation rule. Fields are populated
// according to Kind; When optionally gates the whole rule.
type Rule struct {
	Kind RuleKind   `json:"kind" yaml:"kind"`
	When *Condition `json:"when,omitempty" yaml:"when,omitempty"`

	// Delta and compound target.
	Target string  `json:"target,omitempty" yaml:"target,omitempty"`
	Amount float64 `json:"amount,omitempty" yaml:"amount,omitempty"`

	// Chance: fixed probability in [0,100], or the name of a chain
	// variable holding the probability.
	Chance     float64 `json:"chance,omitempty" yaml:"chance,omitempty"`
	ChanceVar  string  `json:"chance_var,omitempty" yaml:"chance_var,omitempty"`
	OnSuccess  []SubOp `json:"on_success,omitempty" yaml:"on_success,omitempty"`
	OnFailure  []SubOp `json:"on_failure,omitempty" yaml:"on_failure,omitempty"`
	SuccessLog string  `json:"success_log,omitempty" yaml:"success_log,omitempty"`
	FailureLog string  `json:"failure_log,omitempty" yaml:"failure_log,omitempty"`

	// Threshold: Source Op Value gates Then.
	Source string  `json:"source,omitempty" yaml:"source,omitempty"`
	Op     Op      `json:"op,omitempty" yaml:"op,omitempty"`
	Value  float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Then   []SubOp `json:"then,omitempty" yaml:"then,omitempty"`

	// Compound clamp on the target after adding Amount.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Log lines. DailyLog is used by delta and compound rules; chance and
	// threshold rules use SuccessLog/FailureLog/CrisisLog.
	DailyLog  string `json:"daily_log,omitempty" yaml:"daily_log,omitempty"`
	CrisisLog string `json:"crisis_log,omitempty" yaml:"crisis_log,omitempty"`
}

// TickResult is the output of one daily simulation tick.
type TickResult struct {
	Chains []Chain
	Mail   []MailDirective
}

// RunDailyTick advances every active storyline one day. Each rule executes
// independently in declaration order against the chain's evolving copy.
// Inactive chains pass through untouched. The input slice is never mutated.
func RunDailyTick(chains []Chain, day int, rng *rand.Rand) TickResult {
	result := TickResult{Chains: make([]Chain, 0, len(chains))}
	for i := range chains {
		if !chains[i].Active {
			result.Chains = append(result.Chains, chains[i].Clone())
			continue
		}
		chain := chains[i].Clone()
		for _, rule := range chain.Rules {
			if rule.When != nil && !rule.When.Eval(&chain) {
				continue
			}
			mail := applyRule(&chain, rule, day, rng)
			result.Mail = append(result.Mail, mail...)
		}
		result.Chains = append(result.Chains, chain)
	}
	return result
}

func applyRule(chain *Chain, rule Rule, day int, rng *rand.Rand) []MailDirective {
	switch rule.Kind {
	case RuleDelta:
		chain.SetVar(rule.Target, chain.Var(rule.Target)+rule.Amount)
		if rule.DailyLog != "" {
			chain.AppendLog(day, rule.DailyLog, SeverityDaily)
		}
	case RuleChance:
		probability := rule.Chance
		if rule.ChanceVar != "" {
			probability = chain.Var(rule.ChanceVar)
		}
		if rng.Float64()*100 < probability {
			mail := runSubOps(chain, rule.OnSuccess)
			if rule.SuccessLog != "" {
				chain.AppendLog(day, rule.SuccessLog, SeverityMilestone)
			}
			return mail
		}
		mail := runSubOps(chain, rule.OnFailure)
		if rule.FailureLog != "" {
			chain.AppendLog(day, rule.FailureLog, SeverityCrisis)
		}
		return mail
	case RuleThreshold:
		if Compare(rule.Op, chain.Var(rule.Source), rule.Value) {
			mail := runSubOps(chain, rule.Then)
			if rule.CrisisLog != "" {
				chain.AppendLog(day, rule.CrisisLog, SeverityCrisis)
			}
			return mail
		}
	case RuleCompound:
		if Compare(rule.Op, chain.Var(rule.Source), rule.Value) {
			next := chain.Var(rule.Target) + rule.Amount
			if rule.Min != nil && next < *rule.Min {
				next = *rule.Min
			}
			if rule.Max != nil && next > *rule.Max {
				next = *rule.Max
			}
			chain.SetVar(rule.Target, next)
			if rule.DailyLog != "" {
				chain.AppendLog(day, rule.DailyLog, SeverityDaily)
			}
		}
	}
	return nil
}

func runSubOps(chain *Chain, ops []SubOp) []MailDirective {
	var mail []MailDirective
	for _, op := range ops {
		switch op.Kind {
		case SubOpAdd:
			chain.SetVar(op.Var, chain.Var(op.Var)+op.Amount)
		case SubOpSet:
			chain.SetVar(op.Var, op.Amount)
		case SubOpSetStage:
			chain.Stage = op.Stage
		case SubOpDeactivate:
			chain.Active = false
		case SubOpMail:
			if op.Mail != nil {
				mail = append(mail, *op.Mail)
			}
		}
	}
	return mail
}
