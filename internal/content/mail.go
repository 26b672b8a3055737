package content

import "MidnightPledge/internal/shop"

// SeedMail defines the mail templates referenced by chain rules and effects.
func SeedMail() map[string]shop.MailTemplate {
	templates := []shop.MailTemplate{
		{
			ID:      "wen_qiu_despair",
			Subject: "A note slipped under the door",
			Body:    "No salutation, no signature. Just: 'You were the last person I tried. I wanted you to know that.' The handwriting is a musician's, careful and slanted.",
		},
		{
			ID:      "wen_qiu_farewell",
			Subject: "Postcard from the southern line",
			Body:    "'Sold my coat, bought a seat. There is session work down south, they say. Don't oil the fretboard with that cheap stuff.' No return address.",
		},
		{
			ID:      "old_shen_gone",
			Subject: "From the neighbors at number 11",
			Body:    "'Mr. Shen asked us to forward his regards. His daughter came with a cart on Tuesday. He left the camphor chest; said the watch was the only thing worth carrying.'",
		},
		{
			ID:      "debt_collector_notice",
			Subject: "NOTICE OF CLAIM: Hua Sheng Recovery Services",
			Body:    "You are hereby notified that a claim of breach of pledge has been lodged against your license. Settlement at double contract valuation is required under registry statute.",
		},
		{
			ID:      "mother_letter",
			Subject: "From your mother",
			Body:    "'Don't send more than you can spare. The nurses here are kind, and the congee is almost edible. Mind the shop. Mind yourself.'",
		},
	}
	out := make(map[string]shop.MailTemplate, len(templates))
	for _, t := range templates {
		out[t.ID] = t
	}
	return out
}

// SeedMilestones defines the reputation-threshold unlocks.
func SeedMilestones() []shop.Milestone {
	return []shop.Milestone{
		{
			ID:        "pillar_of_the_alley",
			Axis:      shop.AxisHumanity,
			Op:        ">=",
			Threshold: 50,
			Effect:    "neighbors bring first refusal on estate sales",
		},
		{
			ID:        "soft_touch",
			Axis:      shop.AxisHumanity,
			Op:        ">=",
			Threshold: 20,
			Effect:    "desperate sellers seek the shop out first",
		},
		{
			ID:        "known_cheat",
			Axis:      shop.AxisCredibility,
			Op:        "<=",
			Threshold: -50,
			Effect:    "appraisal disputes now default against the shop",
		},
		{
			ID:        "fence_network",
			Axis:      shop.AxisUnderworld,
			Op:        ">=",
			Threshold: 40,
			Effect:    "no-questions buyers available for hot goods",
		},
		{
			ID:        "cold_ledger",
			Axis:      shop.AxisHumanity,
			Op:        "<=",
			Threshold: -30,
			Effect:    "collectors offer bulk rates on forfeited lots",
		},
	}
}
