// Package sim implements a minimal deterministic storyline engine: typed
// conditions, numeric chain variables, daily simulation rules, and cascading
// effect lists.
//
// All transitions are pure with respect to (chains, content, random draws).
// Chains are server-authoritative; the tick never mutates its input.
package sim

// ChainID uniquely identifies an NPC storyline.
type ChainID string

// Severity tags a narrative log entry.
type Severity string

const (
	SeverityInfo      Severity = "info"
	SeverityDaily     Severity = "daily"
	SeverityMilestone Severity = "milestone"
	SeverityCrisis    Severity = "crisis"
)

// LogEntry is one narrative beat in a chain's append-only log.
type LogEntry struct {
	Day      int      `json:"day"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Chain is one ongoing NPC storyline. Stage is a monotonic progress marker;
// Vars is sparse (absent = 0). Chains are never deleted, only deactivated.
type Chain struct {
	ID     ChainID            `json:"id"`
	Name   string             `json:"name"`
	Active bool               `json:"active"`
	Stage  int                `json:"stage"`
	Vars   map[string]float64 `json:"vars"`
	Rules  []Rule             `json:"rules,omitempty"`
	Log    []LogEntry         `json:"log"`
	Hints  []Hint             `json:"hints,omitempty"`
}

// Var returns a chain variable, falling back to the chain's own numeric
// fields ("stage") and defaulting to 0 when absent.
func (c *Chain) Var(name string) float64 {
	if c == nil {
		return 0
	}
	if v, ok := c.Vars[name]; ok {
		return v
	}
	if name == "stage" {
		return float64(c.Stage)
	}
	return 0
}

// SetVar writes a chain variable, allocating the map on first use.
func (c *Chain) SetVar(name string, value float64) {
	if c.Vars == nil {
		c.Vars = make(map[string]float64)
	}
	c.Vars[name] = value
}

// AppendLog appends a narrative beat to the chain's log.
func (c *Chain) AppendLog(day int, text string, severity Severity) {
	c.Log = append(c.Log, LogEntry{Day: day, Text: text, Severity: severity})
}

// RecentLog returns the last n log entries, oldest first.
func (c *Chain) RecentLog(n int) []LogEntry {
	if n <= 0 || len(c.Log) == 0 {
		return nil
	}
	start := len(c.Log) - n
	if start < 0 {
		start = 0
	}
	out := make([]LogEntry, len(c.Log)-start)
	copy(out, c.Log[start:])
	return out
}

// Clone creates a deep copy of the chain so rule application can stay pure.
func (c *Chain) Clone() Chain {
	clone := *c
	if c.Vars != nil {
		clone.Vars = make(map[string]float64, len(c.Vars))
		for k, v := range c.Vars {
			clone.Vars[k] = v
		}
	}
	clone.Log = make([]LogEntry, len(c.Log))
	copy(clone.Log, c.Log)
	// Rules and hints are static content; sharing them is safe.
	return clone
}

// FindChain returns the chain with the given id, or nil.
func FindChain(chains []Chain, id ChainID) *Chain {
	for i := range chains {
		if chains[i].ID == id {
			return &chains[i]
		}
	}
	return nil
}
