package sim

// DefaultLine is substituted when a dialogue has no usable content.
const DefaultLine = "..."

// Variant is one conditional line of a dialogue. A nil When always matches.
type Variant struct {
	When *Condition `json:"when,omitempty" yaml:"when,omitempty"`
	Text string     `json:"text" yaml:"text"`
}

// Dialogue is either a literal line (Text) or an ordered list of variants.
// When both are set, the variants win.
type Dialogue struct {
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Variants []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Line builds a literal dialogue.
func Line(text string) Dialogue {
	return Dialogue{Text: text}
}

// Resolve picks the first variant whose condition is absent or holds for the
// chain. If none match, the last variant's text is the explicit fallback (the
// de facto worst-case line). With no chain context, the last variant is
// returned directly. An empty dialogue resolves to DefaultLine.
func (d Dialogue) Resolve(chain *Chain) string {
	if len(d.Variants) == 0 {
		if d.Text != "" {
			return d.Text
		}
		return DefaultLine
	}
	if chain == nil {
		return d.Variants[len(d.Variants)-1].Text
	}
	for _, v := range d.Variants {
		if v.When == nil || v.When.Eval(chain) {
			return v.Text
		}
	}
	return d.Variants[len(d.Variants)-1].Text
}
