package agro

import (
	"math"
	"testing"
)

func baselineReadings() Readings {
	return Readings{
		Moisture:       50,
		Temperature:    25,
		Humidity:       60,
		SoilPH:         6.5,
		LightIntensity: 70,
		AirPressure:    1013,
		SolarRadiation: 100,
		WindSpeed:      2,
		RainfallToday:  0,
		RainfallTotal:  20,
	}
}

func TestPropagateTemperatureRiseDriesAir(t *testing.T) {
	before := baselineReadings()
	after := Propagate(before, FactorTemperature, 35)

	if after.Temperature != 35 {
		t.Fatalf("changed factor not applied: %v", after.Temperature)
	}
	if after.Humidity >= before.Humidity {
		t.Fatalf("humidity should drop: %v -> %v", before.Humidity, after.Humidity)
	}
	if after.Moisture >= before.Moisture {
		t.Fatalf("moisture should drop: %v -> %v", before.Moisture, after.Moisture)
	}
	if after.AirPressure >= before.AirPressure {
		t.Fatalf("pressure should drop: %v -> %v", before.AirPressure, after.AirPressure)
	}

	// effect = (35-25)/10 = 1: humidity -8, moisture -5, pressure -3.
	if math.Abs(after.Humidity-52) > 1e-9 || math.Abs(after.Moisture-45) > 1e-9 || math.Abs(after.AirPressure-1010) > 1e-9 {
		t.Fatalf("unexpected deltas: %+v", after)
	}
}

func TestPropagateRainfallWetsAndCools(t *testing.T) {
	before := baselineReadings()
	after := Propagate(before, FactorRainfallToday, 20)

	if after.Moisture <= before.Moisture || after.Humidity <= before.Humidity {
		t.Fatalf("rain should raise moisture and humidity: %+v", after)
	}
	if after.Temperature >= before.Temperature {
		t.Fatalf("rain should cool slightly: %v -> %v", before.Temperature, after.Temperature)
	}
}

func TestPropagateWindDriesAndCools(t *testing.T) {
	before := baselineReadings()
	after := Propagate(before, FactorWindSpeed, 12)

	if after.Moisture >= before.Moisture || after.Humidity >= before.Humidity || after.Temperature >= before.Temperature {
		t.Fatalf("wind should dry and cool: %+v", after)
	}
}

func TestPropagateClampsDerivedUpdates(t *testing.T) {
	r := baselineReadings()
	r.Moisture = 98
	r.Humidity = 99
	after := Propagate(r, FactorRainfallToday, 500)

	if after.Moisture != 100 || after.Humidity != 100 {
		t.Fatalf("derived updates must clamp: %+v", after)
	}

	cold := baselineReadings()
	cold.Temperature = -9
	after = Propagate(cold, FactorWindSpeed, 40)
	if after.Temperature < -10 {
		t.Fatalf("temperature clamped below bound: %v", after.Temperature)
	}
}

func TestPropagateClampsChangedFactorItself(t *testing.T) {
	after := Propagate(baselineReadings(), FactorMoisture, 250)
	if after.Moisture != 100 {
		t.Fatalf("changed factor must clamp to bounds: %v", after.Moisture)
	}
}

func TestPropagateNoOutboundEffectsForInertFactors(t *testing.T) {
	before := baselineReadings()
	for _, f := range []Factor{FactorSoilPH, FactorAirPressure, FactorRainfallTotal} {
		b, _ := Bounds(f)
		after := Propagate(before, f, b.Mid())
		changed := after
		changed = changed.set(f, before.Get(f))
		if changed != before {
			t.Fatalf("%s should not cascade onto other factors: %+v vs %+v", f, after, before)
		}
	}
}

func TestPropagateIsPureAndDeterministic(t *testing.T) {
	before := baselineReadings()
	snapshot := before

	first := Propagate(before, FactorTemperature, 35)
	second := Propagate(before, FactorTemperature, 35)

	if before != snapshot {
		t.Fatalf("input vector mutated: %+v", before)
	}
	if first != second {
		t.Fatalf("same inputs produced different vectors: %+v vs %+v", first, second)
	}
}
