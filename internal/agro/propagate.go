package agro

// propagationRule describes the physical cross-effects of deliberately
// changing one factor. effect = (newValue - norm) / scale, and each target
// receives effect x perUnit, clamped to its bounds. Propagation is
// single-hop: applied deltas are never re-propagated.
type propagationRule struct {
	norm    float64
	scale   float64
	effects []factorDelta
}

type factorDelta struct {
	target  Factor
	perUnit float64
}

var propagationRules = map[Factor]propagationRule{
	FactorTemperature: {
		norm:  25,
		scale: 10,
		effects: []factorDelta{
			{FactorHumidity, -8},
			{FactorMoisture, -5},
			{FactorAirPressure, -3},
		},
	},
	FactorRainfallToday: {
		norm:  0,
		scale: 10,
		effects: []factorDelta{
			{FactorMoisture, 12},
			{FactorHumidity, 8},
			{FactorTemperature, -1.5},
		},
	},
	FactorWindSpeed: {
		norm:  2,
		scale: 5,
		effects: []factorDelta{
			{FactorMoisture, -6},
			{FactorHumidity, -7},
			{FactorTemperature, -2},
		},
	},
	FactorSolarRadiation: {
		norm:  100,
		scale: 200,
		effects: []factorDelta{
			{FactorTemperature, 4},
			{FactorLightIntensity, 15},
			{FactorMoisture, -4},
		},
	},
	FactorHumidity: {
		norm:  60,
		scale: 20,
		effects: []factorDelta{
			{FactorMoisture, 3},
		},
	},
	FactorMoisture: {
		norm:  50,
		scale: 25,
		effects: []factorDelta{
			{FactorHumidity, 2},
		},
	},
	FactorLightIntensity: {
		norm:  50,
		scale: 25,
		effects: []factorDelta{
			{FactorTemperature, 1.5},
		},
	},
	// Soil pH, air pressure, and rainfall totals have no outbound effects.
}

// Propagate applies a deliberate single-factor change to the reading vector
// and cascades its physical cross-effects onto the other factors, clamping
// every update immediately. It returns a new vector; the input is never
// mutated. This is a one-shot adjustment, not a continuous-time solver.
func Propagate(r Readings, changed Factor, newValue float64) Readings {
	out := r.set(changed, newValue)

	rule, ok := propagationRules[changed]
	if !ok {
		return out
	}

	effect := (out.Get(changed) - rule.norm) / rule.scale
	for _, d := range rule.effects {
		out = out.set(d.target, out.Get(d.target)+effect*d.perUnit)
	}
	return out
}
