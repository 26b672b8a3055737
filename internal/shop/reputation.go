package shop

// RepAxis names one reputation axis.
type RepAxis string

const (
	AxisHumanity    RepAxis = "humanity"
	AxisCredibility RepAxis = "credibility"
	AxisUnderworld  RepAxis = "underworld"
)

// Reputation axis bounds. The chain effect applicator clamps generic variable
// deltas; direct mutations from transaction resolution are NOT clamped, so
// callers apply ClampAxis themselves.
const (
	RepMin = -100
	RepMax = 100
)

// ReputationProfile holds the shop's three independent reputation axes.
type ReputationProfile struct {
	Humanity    float64 `json:"humanity"`
	Credibility float64 `json:"credibility"`
	Underworld  float64 `json:"underworld"`
}

// Axis reads one axis by name. Unknown axes read 0.
func (r ReputationProfile) Axis(axis RepAxis) float64 {
	switch axis {
	case AxisHumanity:
		return r.Humanity
	case AxisCredibility:
		return r.Credibility
	case AxisUnderworld:
		return r.Underworld
	}
	return 0
}

// Add returns the profile with a delta applied to one axis, unclamped.
func (r ReputationProfile) Add(axis RepAxis, delta float64) ReputationProfile {
	switch axis {
	case AxisHumanity:
		r.Humanity += delta
	case AxisCredibility:
		r.Credibility += delta
	case AxisUnderworld:
		r.Underworld += delta
	}
	return r
}

// ClampAxis bounds a single axis value to [RepMin, RepMax].
func ClampAxis(v float64) float64 {
	if v < RepMin {
		return RepMin
	}
	if v > RepMax {
		return RepMax
	}
	return v
}

// Clamp bounds every axis of the profile.
func (r ReputationProfile) Clamp() ReputationProfile {
	r.Humanity = ClampAxis(r.Humanity)
	r.Credibility = ClampAxis(r.Credibility)
	r.Underworld = ClampAxis(r.Underworld)
	return r
}

// RepDelta is an unapplied change to the reputation profile.
type RepDelta struct {
	Humanity    float64 `json:"humanity,omitempty"`
	Credibility float64 `json:"credibility,omitempty"`
	Underworld  float64 `json:"underworld,omitempty"`
}

// Apply adds the delta to a profile without clamping.
func (d RepDelta) Apply(r ReputationProfile) ReputationProfile {
	r.Humanity += d.Humanity
	r.Credibility += d.Credibility
	r.Underworld += d.Underworld
	return r
}
