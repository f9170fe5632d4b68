package agro

// ScoreHealth computes the 0-100 health index for a crop under the given
// readings at the given week. Each tracked factor outside its optimal band
// contributes a penalty of (distance to nearest boundary) x (per-crop,
// per-direction weight); the sum is subtracted from 100 and the result
// clamped. A value exactly on a boundary contributes nothing. The score is
// returned unrounded; callers that need an integer round at the edge.
//
// Moisture, temperature, and pH score against the current stage's ranges,
// falling back to the crop-level ranges once the cycle is complete.
// Humidity scores against the crop-level range and light against the crop's
// fixed floor. Total over any real-valued input: penalties grow unbounded
// before the final clamp.
func ScoreHealth(crop *Crop, week int, r Readings) float64 {
	if crop == nil {
		return 0
	}

	tempRange := crop.Temperature
	moistRange := crop.Moisture
	phRange := crop.SoilPH
	if st, _, ok := ResolveStage(crop, week); ok {
		tempRange = st.Temperature
		moistRange = st.Moisture
		phRange = st.SoilPH
	}

	w := crop.Weights
	penalty := 0.0
	penalty += rangePenalty(r.Moisture, moistRange, w.MoistureLow, w.MoistureHigh)
	penalty += rangePenalty(r.Temperature, tempRange, w.TempLow, w.TempHigh)
	penalty += rangePenalty(r.SoilPH, phRange, w.PHLow, w.PHHigh)
	penalty += rangePenalty(r.Humidity, crop.Humidity, w.HumidityLow, w.HumidityHigh)
	if r.LightIntensity < crop.MinLight {
		penalty += (crop.MinLight - r.LightIntensity) * w.LightLow
	}

	return clamp(100-penalty, 0, 100)
}

func rangePenalty(v float64, band Range, lowWeight, highWeight float64) float64 {
	switch {
	case v < band.Min:
		return (band.Min - v) * lowWeight
	case v > band.Max:
		return (v - band.Max) * highWeight
	default:
		return 0
	}
}
