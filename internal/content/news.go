package content

import (
	"MidnightPledge/internal/shop"
	"MidnightPledge/internal/sim"
)

// SeedNews defines the static world-news catalog.
func SeedNews() []shop.NewsDef {
	return []shop.NewsDef{
		// Narrative arcs.
		{
			ID:       "district_demolition",
			Category: shop.NewsNarrative,
			Priority: 8,
			Headline: "Demolition notices posted along Canal Street",
			Body:     "The district office confirms the eastern blocks will come down before winter. Residents are selling what they cannot carry.",
			Duration: 3,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpGTE, Value: 5}},
		},
		{
			ID:       "wen_qiu_recital",
			Category: shop.NewsNarrative,
			Priority: 6,
			Headline: "Unlicensed street recital draws a crowd",
			Body:     "A guitarist played for three hours by the ferry landing. Nobody asked for permits.",
			Duration: 2,
			Triggers: []shop.NewsTrigger{
				{Path: "chain_wen_qiu.hope", Op: sim.OpGT, Value: 50},
				{Path: "day", Op: sim.OpGTE, Value: 3},
			},
		},
		{
			ID:       "charity_drive",
			Category: shop.NewsNarrative,
			Priority: 4,
			Headline: "Neighborhood association praises 'honest brokers'",
			Body:     "The association singled out local lenders who kept rates humane through the slump.",
			Duration: 2,
			Triggers: []shop.NewsTrigger{{Path: "reputation.humanity", Op: sim.OpGTE, Value: 20}},
		},

		// Market movers.
		{
			ID:       "gold_fever",
			Category: shop.NewsMarket,
			Priority: 7,
			Headline: "Bullion spike drags jewelry prices up",
			Body:     "Dealers are paying over book for anything that glitters.",
			Duration: 3,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpMod, Value: 6}},
			Modifiers: shop.MarketModifiers{
				CategoryPrice: map[string]float64{"jewelry": 1.3},
			},
		},
		{
			ID:       "instrument_glut",
			Category: shop.NewsMarket,
			Priority: 5,
			Headline: "Conservatory closure floods market with instruments",
			Body:     "Secondhand instrument prices sag as the conservatory auctions its stock.",
			Duration: 4,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpGTE, Value: 8}},
			Modifiers: shop.MarketModifiers{
				CategoryPrice: map[string]float64{"instrument": 0.8},
			},
		},
		{
			ID:       "curfew_patrols",
			Category: shop.NewsMarket,
			Priority: 6,
			Headline: "Night curfew patrols doubled",
			Body:     "Constables are stopping carts after dark. Expect slower evenings.",
			Duration: 2,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpMod, Value: 9}},
			Modifiers: shop.MarketModifiers{
				ActionPoints: -1,
			},
		},

		// Flavor.
		{
			ID:       "ferry_fare_hike",
			Category: shop.NewsFlavor,
			Priority: 2,
			Headline: "Ferry fares rise by two coppers",
			Duration: 1,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpMod, Value: 4}},
		},
		{
			ID:       "rain_week",
			Category: shop.NewsFlavor,
			Priority: 1,
			Headline: "A week of rain forecast for the lower district",
			Duration: 2,
			Triggers: []shop.NewsTrigger{{Path: "day", Op: sim.OpMod, Value: 5}},
		},

		// Standing consequence: forced in once the breach flag is raised.
		{
			ID:                "pawn_registry_investigation",
			Category:          shop.NewsNarrative,
			Priority:          10,
			Headline:          "Registry office opens inquiry into early collateral sales",
			Body:              "A complaint alleges a licensed broker liquidated pledged goods before term. Inspectors are pulling ledgers.",
			Duration:          5,
			RequiresViolation: shop.ViolationBreach,
			Modifiers: shop.MarketModifiers{
				Risk:         1,
				ActionPoints: -1,
			},
		},
	}
}
