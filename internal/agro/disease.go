package agro

import "sort"

// RiskLevel bands a disease risk score.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (l RiskLevel) String() string {
	switch l {
	case RiskCritical:
		return "Critical"
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// MarshalJSON emits the band label rather than the ordinal.
func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// DiseaseAssessment is the evaluated risk for one disease of a crop.
type DiseaseAssessment struct {
	Disease Disease     `json:"disease"`
	Matched []Condition `json:"matched"`
	Score   float64     `json:"score"`
	Level   RiskLevel   `json:"level"`
}

// AssessDiseaseRisk evaluates the crop's disease profile against the current
// readings at the given week. Condition flags come from the stage-specific
// optimal ranges widened by the fixed catalog margins; each disease scores
// matched/total x 100 over its declared conditions (0 when it declares
// none). Results are sorted by descending score; ties keep catalog order.
func AssessDiseaseRisk(crop *Crop, week int, r Readings) []DiseaseAssessment {
	if crop == nil {
		return nil
	}

	flags := conditionFlags(crop, week, r)

	out := make([]DiseaseAssessment, 0, len(crop.Diseases))
	for _, d := range crop.Diseases {
		matched := make([]Condition, 0, len(d.Conditions))
		for _, cond := range d.Conditions {
			if flags[cond] {
				matched = append(matched, cond)
			}
		}
		score := 0.0
		if len(d.Conditions) > 0 {
			score = float64(len(matched)) / float64(len(d.Conditions)) * 100
		}
		out = append(out, DiseaseAssessment{
			Disease: d,
			Matched: matched,
			Score:   score,
			Level:   riskLevelFor(score),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// PlantStatus derives the crop-level aggregate health label from the
// assessed risks: any critical disease puts the plant at risk; more than
// one high-risk disease is moderate risk; exactly one is low risk.
func PlantStatus(assessments []DiseaseAssessment) string {
	critical, high := 0, 0
	for _, a := range assessments {
		switch a.Level {
		case RiskCritical:
			critical++
		case RiskHigh:
			high++
		}
	}
	switch {
	case critical > 0:
		return "At Risk"
	case high > 1:
		return "Moderate Risk"
	case high == 1:
		return "Low Risk"
	default:
		return "Healthy"
	}
}

func riskLevelFor(score float64) RiskLevel {
	switch {
	case score >= 75:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskMedium
	default:
		return RiskLow
	}
}

func conditionFlags(crop *Crop, week int, r Readings) map[Condition]bool {
	tempRange := crop.Temperature
	moistRange := crop.Moisture
	phRange := crop.SoilPH
	if st, _, ok := ResolveStage(crop, week); ok {
		tempRange = st.Temperature
		moistRange = st.Moisture
		phRange = st.SoilPH
	}

	return map[Condition]bool{
		CondHighMoisture:    r.Moisture > moistRange.Max+MoistureMargin,
		CondLowMoisture:     r.Moisture < moistRange.Min-MoistureMargin,
		CondHighTemperature: r.Temperature > tempRange.Max+TempMargin,
		CondLowTemperature:  r.Temperature < tempRange.Min-TempMargin,
		CondHighHumidity:    r.Humidity > crop.Humidity.Max+HumidityMargin,
		CondLowHumidity:     r.Humidity < crop.Humidity.Min-HumidityMargin,
		CondHighPH:          r.SoilPH > phRange.Max+PHMargin,
		CondLowPH:           r.SoilPH < phRange.Min-PHMargin,
		CondLowLight:        r.LightIntensity < crop.MinLight-LightMargin,
	}
}
