package server

import (
	"log"

	"MidnightPledge/internal/content"
	"MidnightPledge/internal/shop"
)

// AppConfig carries server startup options.
type AppConfig struct {
	ConfigPath string
	ContentDir string
	Overrides  TuningOverrides
	Seed       int64
}

// DefaultAppConfig returns the stock option set.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		ConfigPath: "configs/world.json",
	}
}

func resolveTuning(cfg AppConfig) (shop.Tuning, float64) {
	tuning := shop.DefaultTuning()
	startingCash := float64(defaultStartingCash)
	loaded, cash, err := loadTuningFromFile(cfg.ConfigPath, tuning, startingCash)
	if err != nil {
		log.Printf("economy config: %v (using defaults)", err)
	} else {
		tuning, startingCash = loaded, cash
	}
	return cfg.Overrides.apply(tuning, startingCash)
}

// StartApp loads content and tuning, then serves the command protocol.
func StartApp(addr string, cfg AppConfig) {
	tuning, startingCash := resolveTuning(cfg)

	registry, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatalf("failed to load content: %v", err)
	}
	log.Printf("content loaded: %d chains, %d events, %d news items, %d mail templates, %d milestones",
		len(registry.Chains), len(registry.Events), len(registry.News), len(registry.Mail), len(registry.Milestones))

	hub := NewHub(registry, tuning, startingCash, cfg.Seed)
	log.Printf("starting shop server on %s (upkeep %.0f/day, %d action points)",
		addr, tuning.DailyUpkeep, tuning.BaseActionPoints)
	startServer(hub, addr)
}
