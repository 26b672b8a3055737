package shop

import (
	"sort"
	"strings"

	"MidnightPledge/internal/sim"
)

// NewsCategory buckets catalog items for the daily slate.
type NewsCategory string

const (
	NewsNarrative NewsCategory = "narrative"
	NewsMarket    NewsCategory = "market"
	NewsFlavor    NewsCategory = "flavor"
)

// Daily slate limits.
const (
	maxNewSlots      = 4
	maxNarrativeBase = 2
)

// NewsTrigger is a condition over dotted state paths: "day", "cash",
// "reputation.<axis>", "chain_<id>.<variable>". Same comparison grammar as
// chain conditions.
type NewsTrigger struct {
	Path  string  `json:"path" yaml:"path"`
	Op    sim.Op  `json:"op" yaml:"op"`
	Value float64 `json:"value" yaml:"value"`
}

// MarketModifiers aggregates the economic side of active news.
type MarketModifiers struct {
	// CategoryPrice multiplies sale prices per item category.
	CategoryPrice map[string]float64 `json:"category_price,omitempty" yaml:"category_price,omitempty"`
	// Risk raises scrutiny of contraband deals while positive.
	Risk float64 `json:"risk,omitempty" yaml:"risk,omitempty"`
	// ActionPoints adjusts the daily action-point budget.
	ActionPoints int `json:"action_points,omitempty" yaml:"action_points,omitempty"`
}

// RiskActive reports whether a market-risk modifier is in effect.
func (m MarketModifiers) RiskActive() bool {
	return m.Risk > 0
}

// NewsDef is one static catalog entry.
type NewsDef struct {
	ID       string       `json:"id" yaml:"id"`
	Category NewsCategory `json:"category" yaml:"category"`
	Priority int          `json:"priority" yaml:"priority"`
	Headline string       `json:"headline" yaml:"headline"`
	Body     string       `json:"body,omitempty" yaml:"body,omitempty"`
	Duration int          `json:"duration" yaml:"duration"`

	Triggers  []NewsTrigger   `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Modifiers MarketModifiers `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`

	// RequiresViolation marks a standing consequence item: it is forced
	// into the slate once the named violation flag has been raised.
	RequiresViolation string `json:"requires_violation,omitempty" yaml:"requires_violation,omitempty"`
}

// ActiveNews is one running news instance with remaining days.
type ActiveNews struct {
	ID        string `json:"id"`
	Remaining int    `json:"remaining"`
}

// NewsStateView is what news triggers can observe. Lookup resolves a dotted
// path to a number; unknown paths read 0.
type NewsStateView interface {
	Lookup(path string) float64
}

// evalTrigger resolves one dotted-path condition against the view.
func evalTrigger(t NewsTrigger, view NewsStateView) bool {
	return sim.Compare(t.Op, view.Lookup(t.Path), t.Value)
}

func triggersHold(def *NewsDef, view NewsStateView) bool {
	for _, t := range def.Triggers {
		if !evalTrigger(t, view) {
			return false
		}
	}
	return true
}

// AdvanceNews runs the daily news cycle: ages out expiring instances, then
// fills at most four new slots from the catalog. Slot policy: up to two
// narrative items, one market item (or a third narrative item when no market
// item qualifies), then one more market or flavor item. A standing
// investigation item is always forced in once its violation flag is raised.
// Returns the new active list and the ids added today.
func AdvanceNews(active []ActiveNews, catalog []NewsDef, view NewsStateView, violations map[string]bool) ([]ActiveNews, []string) {
	next := make([]ActiveNews, 0, len(active))
	running := make(map[string]bool)
	for _, a := range active {
		a.Remaining--
		if a.Remaining <= 0 {
			continue
		}
		next = append(next, a)
		running[a.ID] = true
	}

	var added []string
	add := func(def *NewsDef) {
		next = append(next, ActiveNews{ID: def.ID, Remaining: def.Duration})
		running[def.ID] = true
		added = append(added, def.ID)
	}

	// Forced consequence items come first and do not consume slots.
	for i := range catalog {
		def := &catalog[i]
		if def.RequiresViolation == "" || running[def.ID] {
			continue
		}
		if violations[def.RequiresViolation] {
			add(def)
		}
	}

	buckets := map[NewsCategory][]*NewsDef{}
	for i := range catalog {
		def := &catalog[i]
		if running[def.ID] || def.RequiresViolation != "" {
			continue
		}
		if !triggersHold(def, view) {
			continue
		}
		buckets[def.Category] = append(buckets[def.Category], def)
	}
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Priority > bucket[j].Priority
		})
	}

	slots := 0
	take := func(cat NewsCategory) bool {
		if slots >= maxNewSlots {
			return false
		}
		bucket := buckets[cat]
		if len(bucket) == 0 {
			return false
		}
		add(bucket[0])
		buckets[cat] = bucket[1:]
		slots++
		return true
	}

	for i := 0; i < maxNarrativeBase; i++ {
		take(NewsNarrative)
	}
	if !take(NewsMarket) {
		take(NewsNarrative)
	}
	if !take(NewsMarket) {
		take(NewsFlavor)
	}

	return next, added
}

// AggregateModifiers folds every active instance's market modifiers into one:
// price multipliers multiply, risk and action-point deltas sum.
func AggregateModifiers(active []ActiveNews, catalog []NewsDef) MarketModifiers {
	defs := make(map[string]*NewsDef, len(catalog))
	for i := range catalog {
		defs[catalog[i].ID] = &catalog[i]
	}
	agg := MarketModifiers{CategoryPrice: map[string]float64{}}
	for _, a := range active {
		def := defs[a.ID]
		if def == nil {
			continue
		}
		for cat, mult := range def.Modifiers.CategoryPrice {
			if _, ok := agg.CategoryPrice[cat]; !ok {
				agg.CategoryPrice[cat] = 1
			}
			agg.CategoryPrice[cat] *= mult
		}
		agg.Risk += def.Modifiers.Risk
		agg.ActionPoints += def.Modifiers.ActionPoints
	}
	return agg
}

// PriceMultiplier returns the aggregated multiplier for an item category,
// defaulting to 1.
func (m MarketModifiers) PriceMultiplier(category string) float64 {
	if m.CategoryPrice == nil {
		return 1
	}
	if mult, ok := m.CategoryPrice[strings.ToLower(category)]; ok {
		return mult
	}
	return 1
}
