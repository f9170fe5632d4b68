// Package climate implements the periodic environment driver. Each run
// nudges the temperature toward a configured baseline, lets the
// cross-factor effects ripple through the reading vector and records the
// resulting derived values as a new snapshot.
package climate

import (
	"github.com/agrovision/cropsight/internal/agro"
)

// Tick is the derived result of one watcher run.
type Tick struct {
	Readings agro.Readings
	Health   float64
	Status   string
	Yield    agro.YieldEstimate
	Ripeness agro.Ripeness
}

// NudgeTemperature moves the current temperature a fraction of the way
// toward the baseline and propagates the change through the vector. A rate
// of 0 leaves the readings untouched; a rate of 1 jumps straight to the
// baseline.
func NudgeTemperature(r agro.Readings, baseline, rate float64) agro.Readings {
	next := r.Temperature + (baseline-r.Temperature)*rate
	return agro.Propagate(r, agro.FactorTemperature, next)
}

// Advance runs one driver step for a crop: nudge the climate, then
// recompute health, plant status, the yield estimate and the ripeness
// reached after ripeningDays at the updated temperature.
func Advance(crop *agro.Crop, week int, r agro.Readings, baseline, rate, ripeningDays float64) Tick {
	updated := NudgeTemperature(r, baseline, rate)
	health := agro.ScoreHealth(crop, week, updated)
	assessments := agro.AssessDiseaseRisk(crop, week, updated)

	return Tick{
		Readings: updated,
		Health:   health,
		Status:   agro.PlantStatus(assessments),
		Yield:    agro.EstimateYield(crop, health, week),
		Ripeness: agro.RipenessFor(crop, ripeningDays, updated.Temperature),
	}
}

// SeedReadings is the starting vector used when the snapshot log is empty.
func SeedReadings() agro.Readings {
	return agro.Readings{
		Moisture:       50,
		Temperature:    24,
		Humidity:       60,
		SoilPH:         6.5,
		LightIntensity: 60,
		AirPressure:    1013,
		SolarRadiation: 400,
		WindSpeed:      2,
		RainfallToday:  0,
		RainfallTotal:  0,
	}
}
