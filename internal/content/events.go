package content

import (
	"MidnightPledge/internal/shop"
	"MidnightPledge/internal/sim"
)

// SeedEvents defines the authored customer encounters. Events within a chain
// keep their declared order; the eligibility resolver randomizes chain order.
func SeedEvents() []shop.Event {
	return []shop.Event{
		// Wen Qiu, stage 0: first visit with her guitar.
		{
			ID:       "wen_qiu_guitar",
			ChainID:  "wen_qiu",
			Category: shop.EventNegotiation,
			Triggers: []sim.Condition{
				{Var: "stage", Op: sim.OpEQ, Value: 0},
				{Var: "funds", Op: sim.OpLT, Value: 400},
			},
			Customer: shop.CustomerTemplate{
				Name:     "Wen Qiu",
				Style:    shop.StylePolite,
				Resolve:  55,
				Patience: 4,
				Mood:     40,
				Greeting: sim.Dialogue{Variants: []sim.Variant{
					{When: &sim.Condition{Var: "hope", Op: sim.OpGT, Value: 50}, Text: "Evening. I hear you give fair prices."},
					{When: &sim.Condition{Var: "hope", Op: sim.OpGT, Value: 20}, Text: "I... don't usually do this kind of thing."},
					{Text: "Just tell me what it's worth. Please."},
				}},
				Pitch:         sim.Line("It's a Yamaha, pre-war bracing. My father's. I only need to get through the month."),
				Haggle:        sim.Line("You've heard it. You know it's worth more than that."),
				Accept:        sim.Line("Take care of it. The neck dries out near the stove."),
				Reject:        sim.Line("Right. Sorry for taking your time."),
				Farewell:      sim.Line("I'll be back for it. I will."),
				DesiredAmount: 800,
				MinimumAmount: 500,
			},
			Item: &shop.ItemTemplate{
				ID:          "wen_qiu_guitar_item",
				Name:        "dreadnought guitar",
				Category:    "instrument",
				Grade:       "worn",
				Sentimental: true,
				RealValue:   1400,
				Perceived:   900,
				Range:       shop.ValuationRange{Low: 600, High: 1500},
			},
			Outcomes: map[shop.DealQuality][]sim.Effect{
				shop.DealPremium: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectModifyVar, Var: "trust", Amount: 15},
					{Kind: sim.EffectModifyVar, Var: "hope", Amount: 10},
					{Kind: sim.EffectSetStage, Stage: 1},
				},
				shop.DealFair: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectModifyVar, Var: "trust", Amount: 5},
					{Kind: sim.EffectSetStage, Stage: 1},
				},
				shop.DealFleeced: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectModifyVar, Var: "trust", Amount: -20},
					{Kind: sim.EffectModifyVar, Var: "hope", Amount: -10},
					{Kind: sim.EffectSetStage, Stage: 1},
					{Kind: sim.EffectAdjustCredibility, Amount: -2},
				},
			},
			OnReject: []sim.Effect{
				{Kind: sim.EffectModifyVar, Var: "hope", Amount: -5},
				{Kind: sim.EffectScheduleMail,
					When: &sim.Condition{Var: "hope", Op: sim.OpLT, Value: 30},
					Mail: &sim.MailDirective{TemplateID: "wen_qiu_despair", DelayDays: 2}},
			},
		},

		// Wen Qiu, stage 1: she comes back for the guitar.
		{
			ID:       "wen_qiu_return",
			ChainID:  "wen_qiu",
			Category: shop.EventRedemptionCheck,
			Triggers: []sim.Condition{
				{Var: "stage", Op: sim.OpEQ, Value: 1},
				{Var: "funds", Op: sim.OpGT, Value: 600},
			},
			Customer: shop.CustomerTemplate{
				Name:  "Wen Qiu",
				Style: shop.StylePolite,
				Greeting: sim.Dialogue{Variants: []sim.Variant{
					{When: &sim.Condition{Var: "hope", Op: sim.OpGT, Value: 40}, Text: "I told you I'd be back. Is it still here?"},
					{Text: "Please tell me you still have it."},
				}},
				Farewell: sim.Line("Thank you. Really."),
			},
			TargetItemID: "wen_qiu_guitar_item",
			OnExtend: []sim.Effect{
				{Kind: sim.EffectModifyVar, Var: "trust", Amount: 5},
			},
			Branches: map[shop.CustodyOutcome]*shop.Branch{
				shop.CustodyAllSafe: {
					Dialogue: sim.Line("There it is. I could kiss the glass."),
					Effects: []sim.Effect{
						{Kind: sim.EffectModifyVar, Var: "trust", Amount: 10},
						{Kind: sim.EffectModifyVar, Var: "hope", Amount: 15},
						{Kind: sim.EffectSetStage, Stage: 2},
					},
				},
				shop.CustodyCoreLost: {
					Dialogue: sim.Line("You sold it. After everything, you sold it."),
					Effects: []sim.Effect{
						{Kind: sim.EffectSetVar, Var: "trust", Amount: 0},
						{Kind: sim.EffectModifyVar, Var: "hope", Amount: -30},
						{Kind: sim.EffectSetStage, Stage: 3},
						{Kind: sim.EffectAdjustCredibility, Amount: -10},
						{Kind: sim.EffectScheduleMail, Mail: &sim.MailDirective{TemplateID: "wen_qiu_farewell", DelayDays: 3}},
					},
				},
				shop.CustodyHostileTakeover: {
					Dialogue: sim.Line("The due date is tomorrow. TOMORROW. Where is my father's guitar?"),
					Effects: []sim.Effect{
						{Kind: sim.EffectSetVar, Var: "trust", Amount: 0},
						{Kind: sim.EffectSetStage, Stage: 3},
						{Kind: sim.EffectDeactivate},
						{Kind: sim.EffectAdjustCredibility, Amount: -25},
					},
				},
			},
		},

		// Wen Qiu, stage 3 after losing the guitar: a last visit.
		{
			ID:       "wen_qiu_after_loss",
			ChainID:  "wen_qiu",
			Category: shop.EventPostForfeit,
			Triggers: []sim.Condition{
				{Var: "stage", Op: sim.OpEQ, Value: 3},
				{Var: "despair", Op: sim.OpGTE, Value: 1},
			},
			Customer: shop.CustomerTemplate{
				Name:     "Wen Qiu",
				Style:    shop.StyleStubborn,
				Greeting: sim.Line("Don't worry, I'm not here to shout. I wanted you to see my face one more time."),
				Farewell: sim.Line("Good luck with the shop. You'll need it."),
			},
			OnFailure: []sim.Effect{
				{Kind: sim.EffectDeactivate},
				{Kind: sim.EffectScheduleMail, Mail: &sim.MailDirective{TemplateID: "wen_qiu_farewell", DelayDays: 1}},
			},
		},

		// Old Shen, stage 0: the wedding watch.
		{
			ID:       "old_shen_watch",
			ChainID:  "old_shen",
			Category: shop.EventNegotiation,
			Triggers: []sim.Condition{
				{Var: "stage", Op: sim.OpEQ, Value: 0},
			},
			Customer: shop.CustomerTemplate{
				Name:          "Old Shen",
				Style:         shop.StyleShrewd,
				Resolve:       70,
				Patience:      6,
				Mood:          55,
				Greeting:      sim.Line("My daughter says I should sell it outright. I say she doesn't understand collateral."),
				Pitch:         sim.Line("Longines, 1962. My wife wound it every Sunday for forty years. It keeps better time than I do."),
				Haggle:        sim.Line("Young man, I was haggling before your father was born."),
				Accept:        sim.Line("Seven days. I will count them."),
				Reject:        sim.Line("Hmph. Your loss, not mine."),
				Farewell:      sim.Line("Keep it wound. Sundays."),
				DesiredAmount: 1000,
				MinimumAmount: 700,
				MaxRepayment:  1600,
			},
			Item: &shop.ItemTemplate{
				ID:          "old_shen_watch_item",
				Name:        "Longines wristwatch",
				Category:    "jewelry",
				Grade:       "fine",
				Sentimental: true,
				RealValue:   2200,
				Perceived:   1100,
				Range:       shop.ValuationRange{Low: 800, High: 2400},
			},
			Outcomes: map[shop.DealQuality][]sim.Effect{
				shop.DealPremium: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectModifyVar, Var: "trust", Amount: 10},
					{Kind: sim.EffectSetStage, Stage: 1},
				},
				shop.DealFair: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectSetStage, Stage: 1},
				},
				shop.DealFleeced: {
					{Kind: sim.EffectAddDealFunds},
					{Kind: sim.EffectModifyVar, Var: "trust", Amount: -15},
					{Kind: sim.EffectSetStage, Stage: 1},
				},
			},
			OnReject: []sim.Effect{
				{Kind: sim.EffectModifyVar, Var: "trust", Amount: -5},
			},
		},

		// Old Shen, stage 1: he returns for the watch the moment his
		// pension clears.
		{
			ID:       "old_shen_return",
			ChainID:  "old_shen",
			Category: shop.EventRedemptionCheck,
			Triggers: []sim.Condition{
				{Var: "stage", Op: sim.OpEQ, Value: 1},
				{Var: "funds", Op: sim.OpGTE, Value: 800},
			},
			Customer: shop.CustomerTemplate{
				Name:     "Old Shen",
				Style:    shop.StyleShrewd,
				Greeting: sim.Line("I counted the days. All of them."),
				Farewell: sim.Line("Hm. You kept it wound. Good."),
			},
			TargetItemID: "old_shen_watch_item",
			Branches: map[shop.CustodyOutcome]*shop.Branch{
				shop.CustodyAllSafe: {
					Dialogue: sim.Line("There. Sunday position, just as she left it."),
					Effects: []sim.Effect{
						{Kind: sim.EffectModifyVar, Var: "trust", Amount: 15},
						{Kind: sim.EffectModifyVar, Var: "grief", Amount: -10},
						{Kind: sim.EffectSetStage, Stage: 2},
					},
				},
				shop.CustodyCoreLost: {
					Dialogue: sim.Line("Gone. Forty years on her wrist and you moved it for margin."),
					Effects: []sim.Effect{
						{Kind: sim.EffectSetVar, Var: "trust", Amount: 0},
						{Kind: sim.EffectModifyVar, Var: "grief", Amount: 25},
						{Kind: sim.EffectSetStage, Stage: 3},
						{Kind: sim.EffectAdjustCredibility, Amount: -8},
					},
				},
				shop.CustodyHostileTakeover: {
					Dialogue: sim.Line("The term was not up. We had terms. You will answer for the difference."),
					Effects: []sim.Effect{
						{Kind: sim.EffectSetVar, Var: "trust", Amount: 0},
						{Kind: sim.EffectSetStage, Stage: 3},
						{Kind: sim.EffectAdjustCredibility, Amount: -20},
						{Kind: sim.EffectScheduleMail, Mail: &sim.MailDirective{TemplateID: "debt_collector_notice", DelayDays: 1}},
					},
				},
			},
		},
	}
}
