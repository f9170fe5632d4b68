package climate

import (
	"math"
	"testing"

	"github.com/agrovision/cropsight/internal/agro"
)

func mustCrop(t *testing.T, id string) *agro.Crop {
	t.Helper()
	crop, err := agro.Default().Get(id)
	if err != nil {
		t.Fatalf("catalog lookup %q: %v", id, err)
	}
	return crop
}

func TestNudgeTemperatureMovesTowardBaseline(t *testing.T) {
	r := SeedReadings()
	r.Temperature = 30

	half := NudgeTemperature(r, 24, 0.5)
	if math.Abs(half.Temperature-27) > 1e-9 {
		t.Fatalf("half nudge from 30 toward 24 = %v, want 27", half.Temperature)
	}

	full := NudgeTemperature(r, 24, 1)
	if math.Abs(full.Temperature-24) > 1e-9 {
		t.Fatalf("full nudge from 30 toward 24 = %v, want 24", full.Temperature)
	}
}

func TestNudgeTemperatureRipples(t *testing.T) {
	r := SeedReadings()
	r.Temperature = 30

	got := NudgeTemperature(r, 24, 0.5)
	want := agro.Propagate(r, agro.FactorTemperature, 27)
	if got != want {
		t.Fatalf("nudge result diverged from direct propagation: %+v vs %+v", got, want)
	}
	if got.Humidity == r.Humidity {
		t.Fatal("expected the temperature change to ripple into humidity")
	}
}

func TestNudgeTemperatureDeterministic(t *testing.T) {
	r := SeedReadings()
	r.Temperature = 35

	a := NudgeTemperature(r, 20, 0.25)
	b := NudgeTemperature(r, 20, 0.25)
	if a != b {
		t.Fatalf("nudge is not deterministic: %+v vs %+v", a, b)
	}
}

func TestAdvanceDerivesConsistently(t *testing.T) {
	tomato := mustCrop(t, "tomato")
	r := SeedReadings()

	tick := Advance(tomato, 9, r, 24, 0.25, 6)

	if tick.Health < 0 || tick.Health > 100 {
		t.Fatalf("health out of range: %v", tick.Health)
	}
	if tick.Status == "" {
		t.Fatal("status is empty")
	}

	wantHealth := agro.ScoreHealth(tomato, 9, tick.Readings)
	if tick.Health != wantHealth {
		t.Fatalf("health %v does not match readings (want %v)", tick.Health, wantHealth)
	}
	wantYield := agro.EstimateYield(tomato, wantHealth, 9)
	if tick.Yield != wantYield {
		t.Fatalf("yield %+v does not match health and week (want %+v)", tick.Yield, wantYield)
	}
	wantRipeness := agro.RipenessFor(tomato, 6, tick.Readings.Temperature)
	if tick.Ripeness != wantRipeness {
		t.Fatalf("ripeness %+v does not match elapsed days (want %+v)", tick.Ripeness, wantRipeness)
	}
}

func TestAdvanceRipenessUsesNudgedTemperature(t *testing.T) {
	tomato := mustCrop(t, "tomato")
	r := SeedReadings()
	r.Temperature = 10 // well below the ripening band before the nudge

	tick := Advance(tomato, 9, r, 24, 1, 6)

	fromOld := agro.RipenessFor(tomato, 6, r.Temperature)
	fromNew := agro.RipenessFor(tomato, 6, tick.Readings.Temperature)
	if fromOld == fromNew {
		t.Fatal("fixture does not distinguish pre- and post-nudge temperature")
	}
	if tick.Ripeness != fromNew {
		t.Fatalf("ripeness %+v computed from stale temperature (want %+v)", tick.Ripeness, fromNew)
	}
}

func TestAdvanceEarlyWeekYieldGate(t *testing.T) {
	tomato := mustCrop(t, "tomato")

	tick := Advance(tomato, 1, SeedReadings(), 24, 0.25, 0)
	if !tick.Yield.TooEarly {
		t.Fatal("expected too-early yield estimate in week 1")
	}
}

func TestSeedReadingsWithinBounds(t *testing.T) {
	r := SeedReadings()
	for _, factor := range []agro.Factor{
		agro.FactorMoisture, agro.FactorTemperature, agro.FactorHumidity,
		agro.FactorSoilPH, agro.FactorLightIntensity, agro.FactorAirPressure,
		agro.FactorSolarRadiation, agro.FactorWindSpeed,
		agro.FactorRainfallToday, agro.FactorRainfallTotal,
	} {
		bounds, ok := agro.Bounds(factor)
		if !ok {
			t.Fatalf("missing bounds for %s", factor)
		}
		v := r.Get(factor)
		if v < bounds.Min || v > bounds.Max {
			t.Fatalf("seed %s = %v outside [%v, %v]", factor, v, bounds.Min, bounds.Max)
		}
	}
}
