package agro

// RipeningSpeed returns the temperature multiplier on ripening progress for
// a crop. Five regions relative to the optimal range [Tmin, Tmax], each
// inclusive on its lower boundary:
//
//	T < Tmin-8            -> 0 (too cold, ripening stalls)
//	Tmin-8 <= T < Tmin    -> linear ramp 0.3 .. 1.0
//	Tmin <= T <= Tmax     -> 1.0
//	Tmax < T <= Tmax+5    -> OverheatFast (>1, fast but quality suffers)
//	T > Tmax+5            -> OverheatSlow (<1, degraded)
func RipeningSpeed(crop *Crop, tempC float64) float64 {
	if crop == nil {
		return 0
	}
	p := crop.Ripening
	tmin, tmax := p.Temperature.Min, p.Temperature.Max

	switch {
	case tempC < tmin-8:
		return 0
	case tempC < tmin:
		frac := (tempC - (tmin - 8)) / 8
		return 0.3 + frac*0.7
	case tempC <= tmax:
		return 1.0
	case tempC <= tmax+5:
		return p.OverheatFast
	default:
		return p.OverheatSlow
	}
}

// Ripeness is the resolved ripening state of a crop's fruit.
type Ripeness struct {
	Stage   RipenessStage `json:"stage"`
	Percent float64       `json:"percent"`
	Speed   float64       `json:"speed"`
}

// RipenessFor maps elapsed ripening days and ambient temperature to the
// highest ripeness stage reached. Adjusted days = elapsed x speed; the
// stage list is scanned from the end for the last threshold at or below the
// adjusted count. Percentage saturates at 100.
func RipenessFor(crop *Crop, elapsedDays, tempC float64) Ripeness {
	if crop == nil || len(crop.Ripening.Stages) == 0 {
		return Ripeness{}
	}
	if elapsedDays < 0 {
		elapsedDays = 0
	}

	speed := RipeningSpeed(crop, tempC)
	adjusted := elapsedDays * speed

	stages := crop.Ripening.Stages
	stage := stages[0]
	for i := len(stages) - 1; i >= 0; i-- {
		if stages[i].DaysFromStart <= adjusted {
			stage = stages[i]
			break
		}
	}

	percent := 0.0
	if crop.Ripening.MaxRipeningDays > 0 {
		percent = clamp(adjusted/crop.Ripening.MaxRipeningDays*100, 0, 100)
	}

	return Ripeness{Stage: stage, Percent: percent, Speed: speed}
}

// CharacteristicValue is a fruit property derived from ripeness percentage.
type CharacteristicValue struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// CharacteristicsAt interpolates the crop's characteristic values at a
// ripeness percentage. Pure in percent, so any consumer can reproduce the
// same values from the percentage alone.
func CharacteristicsAt(crop *Crop, percent float64) []CharacteristicValue {
	if crop == nil {
		return nil
	}
	percent = clamp(percent, 0, 100)
	out := make([]CharacteristicValue, 0, len(crop.Characteristics))
	for _, c := range crop.Characteristics {
		value := c.Start + (c.End-c.Start)*percent/100
		out = append(out, CharacteristicValue{Name: c.Name, Unit: c.Unit, Value: value})
	}
	return out
}
