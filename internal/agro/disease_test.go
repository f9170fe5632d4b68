package agro

import "testing"

// riskCrop is a minimal fixture with a known disease profile.
func riskCrop() *Crop {
	crops := []Crop{{
		ID:         "fixture",
		Name:       "Fixture",
		TotalWeeks: 4,
		Stages: []Stage{{
			Name:        "Only",
			StartWeek:   1,
			EndWeek:     4,
			Temperature: Range{Min: 20, Max: 25},
			Moisture:    Range{Min: 40, Max: 60},
			SoilPH:      Range{Min: 6.0, Max: 7.0},
		}},
		Temperature: Range{Min: 20, Max: 25},
		Moisture:    Range{Min: 40, Max: 60},
		SoilPH:      Range{Min: 6.0, Max: 7.0},
		Humidity:    Range{Min: 50, Max: 70},
		MinLight:    40,
		Diseases: []Disease{
			{Name: "NoTriggers"},
			{Name: "WetRot", Conditions: []Condition{CondHighMoisture, CondHighHumidity}},
			{Name: "HeatScorch", Conditions: []Condition{CondHighTemperature, CondLowHumidity, CondLowMoisture}},
		},
	}}
	return &NewCatalog(crops).Crops()[0]
}

func TestDiseaseRiskZeroWithoutConditions(t *testing.T) {
	crop := riskCrop()
	// Hostile readings everywhere; the undeclared disease still scores 0.
	r := Readings{Moisture: 100, Temperature: 60, Humidity: 100, SoilPH: 14, LightIntensity: 0}

	for _, a := range AssessDiseaseRisk(crop, 1, r) {
		if a.Disease.Name == "NoTriggers" {
			if a.Score != 0 || a.Level != RiskLow {
				t.Fatalf("undeclared disease scored %+v", a)
			}
			return
		}
	}
	t.Fatal("NoTriggers disease missing from assessment")
}

func TestDiseaseRiskFullWhenAllConditionsMet(t *testing.T) {
	crop := riskCrop()
	// moisture > 60+10 and humidity > 70+10 trip both WetRot triggers.
	r := Readings{Moisture: 85, Temperature: 22, Humidity: 90, SoilPH: 6.5, LightIntensity: 70}

	assessments := AssessDiseaseRisk(crop, 1, r)
	top := assessments[0]
	if top.Disease.Name != "WetRot" || top.Score != 100 || top.Level != RiskCritical {
		t.Fatalf("expected WetRot at 100/critical, got %+v", top)
	}
}

func TestDiseaseRiskMarginsWidenRanges(t *testing.T) {
	crop := riskCrop()

	// Inside the widened band: moisture 65 is above optimal 60 but within
	// the +10 margin, so no high-moisture flag.
	calm := Readings{Moisture: 65, Temperature: 22, Humidity: 60, SoilPH: 6.5, LightIntensity: 70}
	for _, a := range AssessDiseaseRisk(crop, 1, calm) {
		if a.Score != 0 {
			t.Fatalf("reading within margins flagged %s at %v", a.Disease.Name, a.Score)
		}
	}

	// One degree past the widened boundary flips the flag.
	hot := calm
	hot.Temperature = 31 // stage max 25 + margin 5 = 30
	found := false
	for _, a := range AssessDiseaseRisk(crop, 1, hot) {
		if a.Disease.Name == "HeatScorch" && a.Score > 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("high temperature past margin not flagged")
	}
}

func TestDiseaseRiskSortedDescendingStable(t *testing.T) {
	tomato := mustCrop(t, "tomato")
	// Humid and wet at flowering: blight family should outrank the rest.
	r := Readings{Moisture: 85, Temperature: 24, Humidity: 90, SoilPH: 6.4, LightIntensity: 70}

	assessments := AssessDiseaseRisk(tomato, 9, r)
	for i := 1; i < len(assessments); i++ {
		if assessments[i].Score > assessments[i-1].Score {
			t.Fatalf("not sorted descending at %d: %+v", i, assessments)
		}
	}
	if assessments[0].Disease.Name != "Early Blight" {
		t.Fatalf("expected Early Blight first (catalog order on ties), got %q", assessments[0].Disease.Name)
	}
}

func TestRiskLevelBands(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskLevel
	}{
		{100, RiskCritical},
		{75, RiskCritical},
		{74.9, RiskHigh},
		{50, RiskHigh},
		{49.9, RiskMedium},
		{25, RiskMedium},
		{24.9, RiskLow},
		{0, RiskLow},
	}
	for _, tc := range cases {
		if got := riskLevelFor(tc.score); got != tc.want {
			t.Fatalf("riskLevelFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestPlantStatusAggregation(t *testing.T) {
	mk := func(levels ...RiskLevel) []DiseaseAssessment {
		out := make([]DiseaseAssessment, len(levels))
		for i, l := range levels {
			out[i] = DiseaseAssessment{Level: l}
		}
		return out
	}

	cases := []struct {
		name string
		in   []DiseaseAssessment
		want string
	}{
		{"critical wins", mk(RiskCritical, RiskLow), "At Risk"},
		{"two highs", mk(RiskHigh, RiskHigh), "Moderate Risk"},
		{"one high", mk(RiskHigh, RiskMedium), "Low Risk"},
		{"quiet", mk(RiskMedium, RiskLow), "Healthy"},
		{"empty", nil, "Healthy"},
	}
	for _, tc := range cases {
		if got := PlantStatus(tc.in); got != tc.want {
			t.Fatalf("%s: PlantStatus = %q, want %q", tc.name, got, tc.want)
		}
	}
}
