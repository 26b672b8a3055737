package sim

import "math"

// Op is a comparison operator used by conditions and threshold rules.
type Op string

const (
	OpGT  Op = ">"
	OpLT  Op = "<"
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpEQ  Op = "=="
	// OpMod holds when the current value is an exact multiple of the
	// threshold. Used for periodic world events.
	OpMod Op = "%"
)

// Compare applies the operator to (value, threshold).
func Compare(op Op, value, threshold float64) bool {
	switch op {
	case OpGT:
		return value > threshold
	case OpLT:
		return value < threshold
	case OpGTE:
		return value >= threshold
	case OpLTE:
		return value <= threshold
	case OpEQ:
		return value == threshold
	case OpMod:
		if threshold == 0 {
			return false
		}
		return math.Mod(value, threshold) == 0
	default:
		return false
	}
}

// Condition is a pure predicate over a chain's variables.
type Condition struct {
	Var   string  `json:"var" yaml:"var"`
	Op    Op      `json:"op" yaml:"op"`
	Value float64 `json:"value" yaml:"value"`
}

// Eval evaluates the condition against a chain. A nil chain reads every
// variable as 0.
func (c Condition) Eval(chain *Chain) bool {
	return Compare(c.Op, chain.Var(c.Var), c.Value)
}

// EvalAll returns true if every condition holds (AND logic).
// An empty condition list is vacuously true.
func EvalAll(conditions []Condition, chain *Chain) bool {
	for _, c := range conditions {
		if !c.Eval(chain) {
			return false
		}
	}
	return true
}
