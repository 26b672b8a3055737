package main

import (
	"flag"
	"math"

	"MidnightPledge/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	configPath := flag.String("config", "configs/world.json", "path to economy tuning JSON")
	contentDir := flag.String("content", "", "optional directory of YAML content overrides")
	seed := flag.Int64("seed", 0, "fixed random seed for new sessions (0 = clock)")
	startingCash := flag.Float64("starting-cash", math.NaN(), "override starting cash")
	actionPoints := flag.Int("action-points", -1, "override base daily action points")
	dailyUpkeep := flag.Float64("daily-upkeep", math.NaN(), "override daily upkeep cost")
	motherCare := flag.Float64("mother-care", math.NaN(), "override daily mother care cost")
	termDays := flag.Int("term-days", -1, "override default loan term in days")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.ConfigPath = *configPath
	cfg.ContentDir = *contentDir
	cfg.Seed = *seed

	var overrides server.TuningOverrides
	if !math.IsNaN(*startingCash) {
		val := *startingCash
		overrides.StartingCash = &val
	}
	if *actionPoints >= 0 {
		val := *actionPoints
		overrides.BaseActionPoints = &val
	}
	if !math.IsNaN(*dailyUpkeep) {
		val := *dailyUpkeep
		overrides.DailyUpkeep = &val
	}
	if !math.IsNaN(*motherCare) {
		val := *motherCare
		overrides.MotherCareCost = &val
	}
	if *termDays >= 0 {
		val := *termDays
		overrides.DefaultTermDays = &val
	}
	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
