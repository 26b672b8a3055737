package sim

import (
	"math/rand"
	"testing"
)

func testChain(rules []Rule, vars map[string]float64) Chain {
	return Chain{
		ID:     "test",
		Name:   "Test Chain",
		Active: true,
		Vars:   vars,
		Rules:  rules,
	}
}

func TestTickDeltaRule(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{Kind: RuleDelta, Target: "funds", Amount: -30, DailyLog: "Money drains away."}},
		map[string]float64{"funds": 300},
	)
	res := RunDailyTick([]Chain{chain}, 5, rng)
	got := res.Chains[0]
	if got.Var("funds") != 270 {
		t.Errorf("funds = %v, want 270", got.Var("funds"))
	}
	if len(got.Log) != 1 || got.Log[0].Day != 5 || got.Log[0].Severity != SeverityDaily {
		t.Errorf("expected one daily log entry on day 5, got %+v", got.Log)
	}
}

func TestTickChanceCertainSuccess(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:       RuleChance,
			Chance:     100,
			OnSuccess:  []SubOp{{Kind: SubOpAdd, Var: "funds", Amount: 120}},
			OnFailure:  []SubOp{{Kind: SubOpAdd, Var: "hope", Amount: -5}},
			SuccessLog: "A gig came through.",
		}},
		map[string]float64{"funds": 100, "hope": 50},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	got := res.Chains[0]
	if got.Var("funds") != 220 {
		t.Errorf("success branch should run: funds = %v", got.Var("funds"))
	}
	if got.Var("hope") != 50 {
		t.Errorf("failure branch should not run: hope = %v", got.Var("hope"))
	}
}

func TestTickChanceCertainFailure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:      RuleChance,
			Chance:    0,
			OnSuccess: []SubOp{{Kind: SubOpAdd, Var: "funds", Amount: 120}},
			OnFailure: []SubOp{{Kind: SubOpAdd, Var: "hope", Amount: -5}},
		}},
		map[string]float64{"funds": 100, "hope": 50},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	got := res.Chains[0]
	if got.Var("funds") != 100 || got.Var("hope") != 45 {
		t.Errorf("failure branch expected: funds=%v hope=%v", got.Var("funds"), got.Var("hope"))
	}
}

func TestTickChanceVariableDriven(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:      RuleChance,
			ChanceVar: "luck",
			OnSuccess: []SubOp{{Kind: SubOpAdd, Var: "funds", Amount: 10}},
		}},
		map[string]float64{"funds": 0, "luck": 100},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if res.Chains[0].Var("funds") != 10 {
		t.Errorf("probability should come from the luck variable, funds = %v", res.Chains[0].Var("funds"))
	}
}

func TestTickThresholdFiresWithMailAndDeactivate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:   RuleThreshold,
			Source: "grief",
			Op:     OpGTE,
			Value:  45,
			Then: []SubOp{
				{Kind: SubOpSetStage, Stage: 9},
				{Kind: SubOpDeactivate},
				{Kind: SubOpMail, Mail: &MailDirective{TemplateID: "farewell", DelayDays: 1}},
			},
			CrisisLog: "It ends here.",
		}},
		map[string]float64{"grief": 45},
	)
	res := RunDailyTick([]Chain{chain}, 12, rng)
	got := res.Chains[0]
	if got.Stage != 9 {
		t.Errorf("stage = %d, want 9", got.Stage)
	}
	if got.Active {
		t.Error("chain should be deactivated")
	}
	if len(res.Mail) != 1 || res.Mail[0].TemplateID != "farewell" {
		t.Errorf("mail directives = %+v, want one farewell", res.Mail)
	}
	if len(got.Log) != 1 || got.Log[0].Severity != SeverityCrisis {
		t.Errorf("expected crisis log entry, got %+v", got.Log)
	}
}

func TestTickThresholdBelowValueIsNoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:   RuleThreshold,
			Source: "grief",
			Op:     OpGTE,
			Value:  45,
			Then:   []SubOp{{Kind: SubOpDeactivate}},
		}},
		map[string]float64{"grief": 44},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if !res.Chains[0].Active {
		t.Error("threshold below value must not fire")
	}
}

func TestTickCompoundClamps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	min, max := 0.0, 100.0
	chain := testChain(
		[]Rule{{
			Kind:   RuleCompound,
			Source: "debt",
			Op:     OpGT,
			Value:  800,
			Target: "hope",
			Amount: -3,
			Min:    &min,
			Max:    &max,
		}},
		map[string]float64{"debt": 900, "hope": 1},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if got := res.Chains[0].Var("hope"); got != 0 {
		t.Errorf("compound result should clamp at 0, got %v", got)
	}
}

func TestTickWhenGateSkipsRule(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{
			Kind:   RuleDelta,
			When:   &Condition{Var: "stage", Op: OpEQ, Value: 2},
			Target: "funds",
			Amount: -50,
		}},
		map[string]float64{"funds": 100},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if got := res.Chains[0].Var("funds"); got != 100 {
		t.Errorf("gated rule should not run at stage 0, funds = %v", got)
	}
}

func TestTickInactiveChainPassesThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{{Kind: RuleDelta, Target: "funds", Amount: -30}},
		map[string]float64{"funds": 300},
	)
	chain.Active = false
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if got := res.Chains[0].Var("funds"); got != 300 {
		t.Errorf("inactive chain must not tick, funds = %v", got)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{
			{Kind: RuleDelta, Target: "funds", Amount: -30},
			{Kind: RuleThreshold, Source: "funds", Op: OpLTE, Value: 280, Then: []SubOp{{Kind: SubOpSetStage, Stage: 4}}, CrisisLog: "broke"},
		},
		map[string]float64{"funds": 300},
	)
	input := []Chain{chain}
	RunDailyTick(input, 1, rng)
	if input[0].Var("funds") != 300 || input[0].Stage != 0 || len(input[0].Log) != 0 {
		t.Errorf("input chain mutated: %+v", input[0])
	}
}

func TestTickRulesSeeEarlierResults(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	chain := testChain(
		[]Rule{
			{Kind: RuleDelta, Target: "funds", Amount: -100},
			{Kind: RuleThreshold, Source: "funds", Op: OpLT, Value: 50, Then: []SubOp{{Kind: SubOpSet, Var: "despair", Amount: 1}}},
		},
		map[string]float64{"funds": 120},
	)
	res := RunDailyTick([]Chain{chain}, 1, rng)
	if got := res.Chains[0].Var("despair"); got != 1 {
		t.Errorf("second rule should see the first rule's write, despair = %v", got)
	}
}
