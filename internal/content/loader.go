package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"MidnightPledge/internal/shop"
	"MidnightPledge/internal/sim"
)

// Default returns the seeded registries.
func Default() *shop.Content {
	return &shop.Content{
		Chains:     SeedChains(),
		Events:     SeedEvents(),
		News:       SeedNews(),
		Mail:       SeedMail(),
		Milestones: SeedMilestones(),
	}
}

// Registry file names looked up inside a content directory.
const (
	chainsFile     = "chains.yaml"
	eventsFile     = "events.yaml"
	newsFile       = "news.yaml"
	mailFile       = "mail.yaml"
	milestonesFile = "milestones.yaml"
)

// Load builds the content registries: the Go seeds, with any registry file
// present in dir replacing its seed wholesale. An empty dir means seeds only.
func Load(dir string) (*shop.Content, error) {
	c := Default()
	if dir == "" {
		return c, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return c, nil
	}

	if err := loadYAML(filepath.Join(dir, chainsFile), &c.Chains); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, eventsFile), &c.Events); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, newsFile), &c.News); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, milestonesFile), &c.Milestones); err != nil {
		return nil, err
	}

	var mail []shop.MailTemplate
	if err := loadYAML(filepath.Join(dir, mailFile), &mail); err != nil {
		return nil, err
	}
	if mail != nil {
		c.Mail = make(map[string]shop.MailTemplate, len(mail))
		for _, t := range mail {
			c.Mail[t.ID] = t
		}
	}

	return c, Validate(c)
}

// loadYAML decodes one registry file into out. A missing file leaves out
// untouched.
func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("content: parse %s: %w", path, err)
	}
	return nil
}

// Validate checks cross-registry references: events must name existing
// chains, mail directives must name existing templates.
func Validate(c *shop.Content) error {
	chains := make(map[sim.ChainID]bool, len(c.Chains))
	for _, ch := range c.Chains {
		chains[ch.ID] = true
	}
	for i := range c.Events {
		ev := &c.Events[i]
		if ev.ID == "" {
			return fmt.Errorf("content: event %d has no id", i)
		}
		if !chains[ev.ChainID] {
			return fmt.Errorf("content: event %s names missing chain %s", ev.ID, ev.ChainID)
		}
	}
	for _, ch := range c.Chains {
		for _, rule := range ch.Rules {
			for _, ops := range [][]sim.SubOp{rule.OnSuccess, rule.OnFailure, rule.Then} {
				for _, op := range ops {
					if op.Kind == sim.SubOpMail && op.Mail != nil {
						if _, ok := c.Mail[op.Mail.TemplateID]; !ok {
							return fmt.Errorf("content: chain %s schedules unknown mail %s", ch.ID, op.Mail.TemplateID)
						}
					}
				}
			}
		}
	}
	return nil
}
