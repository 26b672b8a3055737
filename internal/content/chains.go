// Package content seeds the static registries the engine interprets: chains,
// story events, the news catalog, mail templates, and reputation milestones.
// Seeds live in Go source; a YAML content directory can replace any registry.
package content

import "MidnightPledge/internal/sim"

func floatPtr(v float64) *float64 { return &v }

// SeedChains defines the launch storylines.
func SeedChains() []sim.Chain {
	return []sim.Chain{
		// Wen Qiu: a laid-off session musician pawning her way through a
		// dry season. Funds bleed daily; hope erodes as debt piles up.
		{
			ID:     "wen_qiu",
			Name:   "Wen Qiu",
			Active: true,
			Vars: map[string]float64{
				"funds": 300,
				"hope":  60,
				"trust": 40,
				"debt":  600,
			},
			Rules: []sim.Rule{
				{
					Kind:   sim.RuleDelta,
					Target: "funds",
					Amount: -30,
				},
				{
					Kind:       sim.RuleChance,
					Chance:     15,
					OnSuccess:  []sim.SubOp{{Kind: sim.SubOpAdd, Var: "funds", Amount: 220}, {Kind: sim.SubOpAdd, Var: "hope", Amount: 5}},
					OnFailure:  []sim.SubOp{{Kind: sim.SubOpAdd, Var: "hope", Amount: -2}},
					SuccessLog: "Wen Qiu landed a wedding gig and came home humming",
				},
				{
					Kind:   sim.RuleThreshold,
					Source: "hope",
					Op:     sim.OpLTE,
					Value:  10,
					Then: []sim.SubOp{
						{Kind: sim.SubOpSet, Var: "despair", Amount: 1},
						{Kind: sim.SubOpMail, Mail: &sim.MailDirective{TemplateID: "wen_qiu_despair", DelayDays: 1}},
					},
					CrisisLog: "Wen Qiu stopped answering her door",
				},
				{
					Kind:     sim.RuleCompound,
					Source:   "debt",
					Op:       sim.OpGT,
					Value:    800,
					Target:   "hope",
					Amount:   -3,
					Min:      floatPtr(0),
					Max:      floatPtr(100),
					DailyLog: "the collectors left another notice under Wen Qiu's door",
				},
			},
			Hints: []sim.Hint{
				{Priority: 3, When: []sim.Condition{{Var: "despair", Op: sim.OpGTE, Value: 1}}, Text: "Her sleeves are frayed and she won't meet your eyes."},
				{Priority: 2, When: []sim.Condition{{Var: "funds", Op: sim.OpLT, Value: 100}}, Text: "She counts coins twice before putting them away."},
				{Priority: 1, Text: "She hums a bar of something old while she waits."},
				{Priority: 1, Text: "There are callouses on her fretting hand."},
			},
		},

		// Old Shen: a widower circling the watch he pawned, terrified the
		// shop will sell it before he can buy it back.
		{
			ID:     "old_shen",
			Name:   "Old Shen",
			Active: true,
			Vars: map[string]float64{
				"funds":          900,
				"trust":          55,
				"grief":          20,
				"pension_chance": 25,
			},
			Rules: []sim.Rule{
				{
					Kind:   sim.RuleDelta,
					Target: "grief",
					Amount: 1,
				},
				{
					Kind:      sim.RuleChance,
					ChanceVar: "pension_chance",
					OnSuccess: []sim.SubOp{{Kind: sim.SubOpAdd, Var: "funds", Amount: 400}},
					OnFailure: []sim.SubOp{{Kind: sim.SubOpAdd, Var: "funds", Amount: -20}},
				},
				{
					Kind:   sim.RuleThreshold,
					Source: "grief",
					Op:     sim.OpGTE,
					Value:  45,
					Then: []sim.SubOp{
						{Kind: sim.SubOpSetStage, Stage: 9},
						{Kind: sim.SubOpDeactivate},
						{Kind: sim.SubOpMail, Mail: &sim.MailDirective{TemplateID: "old_shen_gone", DelayDays: 2}},
					},
					CrisisLog: "Old Shen's neighbors say he left for his daughter's village",
				},
			},
			Hints: []sim.Hint{
				{Priority: 2, When: []sim.Condition{{Var: "grief", Op: sim.OpGTE, Value: 30}}, Text: "He keeps checking a bare wrist where a watch used to sit."},
				{Priority: 1, Text: "He smells faintly of camphor and old paper."},
			},
		},
	}
}
