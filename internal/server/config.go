package server

import (
	"encoding/json"
	"fmt"
	"os"

	"MidnightPledge/internal/shop"
)

type economyConfig struct {
	StartingCash     *float64 `json:"startingCash"`
	BaseActionPoints *int     `json:"baseActionPoints"`
	DailyUpkeep      *float64 `json:"dailyUpkeep"`
	MotherCareCost   *float64 `json:"motherCareCost"`
	DefaultTermDays  *int     `json:"defaultTermDays"`
}

type worldConfig struct {
	Economy *economyConfig `json:"economy"`
}

// TuningOverrides represents optional command-line overrides for economy
// tuning.
type TuningOverrides struct {
	StartingCash     *float64
	BaseActionPoints *int
	DailyUpkeep      *float64
	MotherCareCost   *float64
	DefaultTermDays  *int
}

func (o TuningOverrides) apply(base shop.Tuning, startingCash float64) (shop.Tuning, float64) {
	if o.StartingCash != nil {
		startingCash = *o.StartingCash
	}
	if o.BaseActionPoints != nil {
		base.BaseActionPoints = *o.BaseActionPoints
	}
	if o.DailyUpkeep != nil {
		base.DailyUpkeep = *o.DailyUpkeep
	}
	if o.MotherCareCost != nil {
		base.MotherCareCost = *o.MotherCareCost
	}
	if o.DefaultTermDays != nil {
		base.DefaultTermDays = *o.DefaultTermDays
	}
	return base, startingCash
}

// defaultStartingCash mirrors the shipped configs/world.json.
const defaultStartingCash = 3000

func loadTuningFromFile(path string, base shop.Tuning, startingCash float64) (shop.Tuning, float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, startingCash, fmt.Errorf("read config: %w", err)
	}
	var cfg worldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, startingCash, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Economy == nil {
		return base, startingCash, nil
	}
	e := cfg.Economy
	if e.StartingCash != nil {
		startingCash = *e.StartingCash
	}
	if e.BaseActionPoints != nil {
		base.BaseActionPoints = *e.BaseActionPoints
	}
	if e.DailyUpkeep != nil {
		base.DailyUpkeep = *e.DailyUpkeep
	}
	if e.MotherCareCost != nil {
		base.MotherCareCost = *e.MotherCareCost
	}
	if e.DefaultTermDays != nil {
		base.DefaultTermDays = *e.DefaultTermDays
	}
	return base, startingCash, nil
}
