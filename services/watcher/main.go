package main

import (
	"context"
	"log"
	"time"

	"github.com/agrovision/cropsight/internal/agro"
	"github.com/agrovision/cropsight/services/api/db"
	"github.com/agrovision/cropsight/services/watcher/internal/climate"
	"github.com/agrovision/cropsight/services/watcher/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("watcher failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog := agro.Default()
	crop, err := catalog.Get(cfg.CropID)
	if err != nil {
		return err
	}

	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	week := cfg.StartWeek
	readings := climate.SeedReadings()

	last, err := store.LatestSnapshot(ctx, crop.ID)
	if err != nil {
		return err
	}
	if last != nil {
		week = last.Week
		readings = last.Readings
		log.Printf("resuming from snapshot %s (week=%d)", last.ID, last.Week)
	} else {
		log.Printf("no prior snapshots, seeding defaults (week=%d)", week)
	}

	tick := climate.Advance(crop, week, readings, cfg.BaselineTemp, cfg.NudgeRate, cfg.RipeningDays)
	log.Printf("crop=%s week=%d temp=%.1f health=%.1f status=%q yield=%d%% ripeness=%.0f%%",
		crop.ID, week, tick.Readings.Temperature, tick.Health, tick.Status, tick.Yield.Percent, tick.Ripeness.Percent)

	if cfg.DryRun {
		log.Println("dry-run: skipping snapshot insert")
		return nil
	}

	id, err := store.InsertSnapshot(ctx, db.Snapshot{
		CropID:       crop.ID,
		Week:         week,
		Readings:     tick.Readings,
		Health:       tick.Health,
		YieldPercent: tick.Yield.Percent,
		Status:       tick.Status,
	})
	if err != nil {
		return err
	}

	log.Printf("inserted snapshot %s", id)
	return nil
}
