package shop

// CustodyResolution is the outcome branch picked for a redemption-check
// visit, based on what actually happened to the customer's items.
type CustodyResolution struct {
	Outcome CustodyOutcome
	Branch  *Branch
}

// ResolveCustody determines the custody outcome for a redemption-check
// event's target item and its chain siblings, and returns the matching
// branch. Order matters:
//
//	hostile_takeover  target force-sold before its due date (if authored)
//	all_safe          target held, no sibling sold
//	core_safe         target held, but a sibling was sold
//	core_lost         the target itself is gone (default)
//
// Returns nil when the event has no branch table or is not a
// redemption-check.
func ResolveCustody(ev *Event, items []Item) *CustodyResolution {
	if ev == nil || ev.Category != EventRedemptionCheck || len(ev.Branches) == 0 {
		return nil
	}
	target := FindItem(items, ev.TargetItemID)
	if target == nil {
		return nil
	}

	siblingSold := false
	for _, it := range ChainItems(items, ev.ChainID) {
		if it.ID == target.ID {
			continue
		}
		if it.Status == StatusSold {
			siblingSold = true
		}
	}

	outcome := CustodyCoreLost
	switch {
	case target.SoldBeforeForfeit() && ev.Branches[CustodyHostileTakeover] != nil:
		outcome = CustodyHostileTakeover
	case target.InCustody() && !siblingSold:
		outcome = CustodyAllSafe
	case target.InCustody() && siblingSold:
		outcome = CustodyCoreSafe
	}

	branch := ev.Branches[outcome]
	if branch == nil {
		// Authored tables may omit arms; fall back to the default arm.
		branch = ev.Branches[CustodyCoreLost]
		outcome = CustodyCoreLost
	}
	if branch == nil {
		return nil
	}
	return &CustodyResolution{Outcome: outcome, Branch: branch}
}
