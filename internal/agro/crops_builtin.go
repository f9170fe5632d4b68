package agro

// builtinCrops returns the static reference data for the tracked species.
// All per-crop coefficients (penalty weights, ripening multipliers, disease
// triggers) live here so adding a crop never touches engine logic.
func builtinCrops() []Crop {
	return []Crop{tomatoCrop(), chiliCrop(), brinjalCrop()}
}

func tomatoCrop() Crop {
	return Crop{
		ID:             "tomato",
		Name:           "Tomato",
		ScientificName: "Solanum lycopersicum",
		TotalWeeks:     12,
		Stages: []Stage{
			{
				Name:             "Germination",
				Description:      "Seeds sprout and the first root emerges.",
				StartWeek:        1,
				EndWeek:          2,
				Temperature:      Range{Min: 21, Max: 27},
				Moisture:         Range{Min: 60, Max: 80},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      0,
				HeightMaxCm:      5,
				WaterRequirement: "Light, frequent watering",
				Activities:       []string{"Keep soil consistently moist", "Maintain warm soil temperature"},
			},
			{
				Name:             "Seedling",
				Description:      "First true leaves develop on thin stems.",
				StartWeek:        3,
				EndWeek:          4,
				Temperature:      Range{Min: 18, Max: 24},
				Moisture:         Range{Min: 55, Max: 75},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      5,
				HeightMaxCm:      15,
				WaterRequirement: "Moderate watering",
				Activities:       []string{"Provide strong light", "Harden off before transplant"},
			},
			{
				Name:             "Vegetative Stage",
				Description:      "Rapid leaf and stem growth builds the plant frame.",
				StartWeek:        5,
				EndWeek:          7,
				Temperature:      Range{Min: 18, Max: 26},
				Moisture:         Range{Min: 50, Max: 70},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      15,
				HeightMaxCm:      60,
				WaterRequirement: "Regular deep watering",
				Activities:       []string{"Stake or cage plants", "Apply nitrogen-rich fertilizer", "Prune suckers"},
			},
			{
				Name:             "Flowering Stage",
				Description:      "Yellow flower clusters open and set fruit.",
				StartWeek:        8,
				EndWeek:          9,
				Temperature:      Range{Min: 21, Max: 27},
				Moisture:         Range{Min: 40, Max: 60},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      60,
				HeightMaxCm:      90,
				WaterRequirement: "Consistent watering, avoid wetting foliage",
				Activities:       []string{"Shake trusses to aid pollination", "Switch to phosphorus-rich feed"},
			},
			{
				Name:             "Fruiting Stage",
				Description:      "Fruit swells, matures, and colors on the vine.",
				StartWeek:        10,
				EndWeek:          12,
				Temperature:      Range{Min: 20, Max: 26},
				Moisture:         Range{Min: 50, Max: 70},
				SoilPH:           Range{Min: 6.0, Max: 6.5},
				HeightMinCm:      90,
				HeightMaxCm:      120,
				WaterRequirement: "Even moisture to prevent splitting",
				Activities:       []string{"Support heavy trusses", "Harvest at breaker stage or later"},
			},
		},
		Temperature:   Range{Min: 18, Max: 27},
		Moisture:      Range{Min: 50, Max: 70},
		SoilPH:        Range{Min: 6.0, Max: 6.8},
		Humidity:      Range{Min: 50, Max: 70},
		MinLight:      40,
		Weights: HealthWeights{
			MoistureLow:  1.2,
			MoistureHigh: 1.0,
			TempLow:      2.0,
			TempHigh:     2.5,
			PHLow:        15,
			PHHigh:       15,
			HumidityLow:  0.8,
			HumidityHigh: 1.0,
			LightLow:     1.5,
		},
		YieldBaseline: "4-6 kg per plant",
		Ripening: RipenessProfile{
			Stages: []RipenessStage{
				{Color: "Green", Description: "Full size, uniformly green and hard.", DaysFromStart: 0, Percent: 0},
				{Color: "Breaker", Description: "First blush of color at the blossom end.", DaysFromStart: 3, Percent: 25},
				{Color: "Turning", Description: "Up to a third of the surface shows color.", DaysFromStart: 6, Percent: 50},
				{Color: "Pink", Description: "Most of the fruit has turned pink.", DaysFromStart: 9, Percent: 70},
				{Color: "Light Red", Description: "Nearly full red, still firm.", DaysFromStart: 12, Percent: 85},
				{Color: "Red", Description: "Deep red and table ripe.", DaysFromStart: 15, Percent: 100},
			},
			Temperature:     Range{Min: 18, Max: 24},
			OverheatFast:    1.15,
			OverheatSlow:    0.7,
			MaxRipeningDays: 15,
		},
		Diseases: []Disease{
			{
				Name:       "Early Blight",
				Conditions: []Condition{CondHighHumidity, CondHighMoisture},
				Symptoms:   []string{"Dark concentric rings on lower leaves", "Yellowing around leaf spots"},
				Prevention: []string{"Improve air circulation", "Water at the base, not the foliage"},
			},
			{
				Name:       "Late Blight",
				Conditions: []Condition{CondHighHumidity, CondHighMoisture, CondLowTemperature},
				Symptoms:   []string{"Water-soaked lesions on leaves and stems", "White mold under leaves in damp weather"},
				Prevention: []string{"Remove infected plants promptly", "Avoid overhead irrigation"},
			},
			{
				Name:       "Blossom End Rot",
				Conditions: []Condition{CondLowMoisture, CondHighTemperature},
				Symptoms:   []string{"Sunken dark patch at the blossom end of fruit"},
				Prevention: []string{"Keep soil moisture even", "Maintain calcium availability"},
			},
			{
				Name:       "Powdery Mildew",
				Conditions: []Condition{CondHighHumidity, CondLowLight},
				Symptoms:   []string{"White powdery coating on upper leaf surfaces"},
				Prevention: []string{"Increase light exposure", "Thin dense foliage"},
			},
		},
		Characteristics: []Characteristic{
			{Name: "firmness", Unit: "kgf", Start: 9, End: 2},
			{Name: "sugar_content", Unit: "brix", Start: 2.5, End: 6},
		},
	}
}

func chiliCrop() Crop {
	return Crop{
		ID:             "chili",
		Name:           "Chili Pepper",
		ScientificName: "Capsicum annuum",
		TotalWeeks:     14,
		Stages: []Stage{
			{
				Name:             "Germination",
				Description:      "Slow sprouting, needs steady warmth.",
				StartWeek:        1,
				EndWeek:          2,
				Temperature:      Range{Min: 24, Max: 30},
				Moisture:         Range{Min: 60, Max: 80},
				SoilPH:           Range{Min: 6.0, Max: 7.0},
				HeightMinCm:      0,
				HeightMaxCm:      4,
				WaterRequirement: "Light misting, never waterlogged",
				Activities:       []string{"Keep seed tray warm", "Cover to retain humidity"},
			},
			{
				Name:             "Seedling",
				Description:      "Compact seedlings with the first true leaves.",
				StartWeek:        3,
				EndWeek:          5,
				Temperature:      Range{Min: 20, Max: 28},
				Moisture:         Range{Min: 55, Max: 75},
				SoilPH:           Range{Min: 6.0, Max: 7.0},
				HeightMinCm:      4,
				HeightMaxCm:      15,
				WaterRequirement: "Moderate watering",
				Activities:       []string{"Pot up once roots fill the cell", "Feed lightly every two weeks"},
			},
			{
				Name:             "Vegetative Stage",
				Description:      "Branching accelerates and the canopy fills in.",
				StartWeek:        6,
				EndWeek:          8,
				Temperature:      Range{Min: 20, Max: 30},
				Moisture:         Range{Min: 50, Max: 70},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      15,
				HeightMaxCm:      45,
				WaterRequirement: "Deep watering when topsoil dries",
				Activities:       []string{"Pinch early buds for bushier plants", "Mulch to hold soil moisture"},
			},
			{
				Name:             "Flowering Stage",
				Description:      "White star flowers appear at branch nodes.",
				StartWeek:        9,
				EndWeek:          10,
				Temperature:      Range{Min: 21, Max: 29},
				Moisture:         Range{Min: 45, Max: 65},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      45,
				HeightMaxCm:      65,
				WaterRequirement: "Even moisture, flowers drop if stressed",
				Activities:       []string{"Avoid high nitrogen feed", "Protect from strong wind"},
			},
			{
				Name:             "Fruiting Stage",
				Description:      "Pods set, lengthen, and ripen through color stages.",
				StartWeek:        11,
				EndWeek:          14,
				Temperature:      Range{Min: 22, Max: 30},
				Moisture:         Range{Min: 50, Max: 70},
				SoilPH:           Range{Min: 6.0, Max: 6.8},
				HeightMinCm:      65,
				HeightMaxCm:      90,
				WaterRequirement: "Regular watering, slight stress concentrates heat",
				Activities:       []string{"Harvest green or fully colored", "Stake heavily loaded branches"},
			},
		},
		Temperature:   Range{Min: 20, Max: 30},
		Moisture:      Range{Min: 50, Max: 70},
		SoilPH:        Range{Min: 6.0, Max: 7.0},
		Humidity:      Range{Min: 40, Max: 65},
		MinLight:      50,
		Weights: HealthWeights{
			MoistureLow:  1.0,
			MoistureHigh: 1.3,
			TempLow:      2.2,
			TempHigh:     1.8,
			PHLow:        12,
			PHHigh:       14,
			HumidityLow:  0.6,
			HumidityHigh: 1.2,
			LightLow:     1.8,
		},
		YieldBaseline: "1.5-2.5 kg per plant",
		Ripening: RipenessProfile{
			Stages: []RipenessStage{
				{Color: "Green", Description: "Full-size pods, grassy flavor, mild heat.", DaysFromStart: 0, Percent: 0},
				{Color: "Breaker", Description: "First orange streaks along the shoulder.", DaysFromStart: 5, Percent: 30},
				{Color: "Turning", Description: "Pods mottled orange and red.", DaysFromStart: 10, Percent: 60},
				{Color: "Red", Description: "Uniform red, heat near peak.", DaysFromStart: 15, Percent: 85},
				{Color: "Deep Red", Description: "Fully ripe, ready for fresh use or drying.", DaysFromStart: 20, Percent: 100},
			},
			Temperature:     Range{Min: 22, Max: 28},
			OverheatFast:    1.2,
			OverheatSlow:    0.8,
			MaxRipeningDays: 20,
		},
		Diseases: []Disease{
			{
				Name:       "Anthracnose",
				Conditions: []Condition{CondHighHumidity, CondHighTemperature},
				Symptoms:   []string{"Sunken circular lesions on ripening pods"},
				Prevention: []string{"Use disease-free seed", "Rotate away from solanaceous beds"},
			},
			{
				Name:       "Bacterial Wilt",
				Conditions: []Condition{CondHighMoisture, CondHighTemperature},
				Symptoms:   []string{"Sudden wilting of whole plants without yellowing"},
				Prevention: []string{"Improve drainage", "Solarize infected soil"},
			},
			{
				Name:       "Damping Off",
				Conditions: []Condition{CondHighMoisture, CondLowTemperature},
				Symptoms:   []string{"Seedlings collapse at the soil line"},
				Prevention: []string{"Use sterile seed-starting mix", "Water from below"},
			},
			{
				Name:       "Aphid Infestation",
				Conditions: []Condition{CondLowHumidity, CondHighTemperature},
				Symptoms:   []string{"Curled leaves with sticky honeydew", "Clusters of insects on new growth"},
				Prevention: []string{"Encourage beneficial insects", "Spray with insecticidal soap"},
			},
		},
		Characteristics: []Characteristic{
			{Name: "heat_level", Unit: "shu", Start: 500, End: 45000},
			{Name: "firmness", Unit: "kgf", Start: 8, End: 4},
		},
	}
}

func brinjalCrop() Crop {
	return Crop{
		ID:             "brinjal",
		Name:           "Brinjal",
		ScientificName: "Solanum melongena",
		TotalWeeks:     11,
		Stages: []Stage{
			{
				Name:             "Germination",
				Description:      "Seeds sprout in warm, moist soil.",
				StartWeek:        1,
				EndWeek:          2,
				Temperature:      Range{Min: 24, Max: 30},
				Moisture:         Range{Min: 60, Max: 80},
				SoilPH:           Range{Min: 5.5, Max: 6.8},
				HeightMinCm:      0,
				HeightMaxCm:      5,
				WaterRequirement: "Keep seed bed evenly moist",
				Activities:       []string{"Maintain warm nursery conditions"},
			},
			{
				Name:             "Seedling",
				Description:      "Sturdy seedlings ready for transplant by the end.",
				StartWeek:        3,
				EndWeek:          4,
				Temperature:      Range{Min: 22, Max: 28},
				Moisture:         Range{Min: 55, Max: 75},
				SoilPH:           Range{Min: 5.5, Max: 6.8},
				HeightMinCm:      5,
				HeightMaxCm:      15,
				WaterRequirement: "Moderate watering",
				Activities:       []string{"Transplant at 4-5 true leaves", "Shade during midday heat"},
			},
			{
				Name:             "Vegetative Stage",
				Description:      "Broad leaves expand and the stem thickens.",
				StartWeek:        5,
				EndWeek:          7,
				Temperature:      Range{Min: 21, Max: 30},
				Moisture:         Range{Min: 55, Max: 75},
				SoilPH:           Range{Min: 5.5, Max: 6.5},
				HeightMinCm:      15,
				HeightMaxCm:      45,
				WaterRequirement: "Deep weekly watering",
				Activities:       []string{"Top-dress with compost", "Scout for shoot borers"},
			},
			{
				Name:             "Flowering Stage",
				Description:      "Purple star-shaped flowers open singly or in clusters.",
				StartWeek:        8,
				EndWeek:          9,
				Temperature:      Range{Min: 22, Max: 29},
				Moisture:         Range{Min: 50, Max: 70},
				SoilPH:           Range{Min: 5.5, Max: 6.5},
				HeightMinCm:      45,
				HeightMaxCm:      65,
				WaterRequirement: "Steady moisture for fruit set",
				Activities:       []string{"Hand pollinate in still weather", "Remove yellowing lower leaves"},
			},
			{
				Name:             "Fruiting Stage",
				Description:      "Glossy fruit swells and is picked young.",
				StartWeek:        10,
				EndWeek:          11,
				Temperature:      Range{Min: 22, Max: 30},
				Moisture:         Range{Min: 55, Max: 75},
				SoilPH:           Range{Min: 5.5, Max: 6.5},
				HeightMinCm:      65,
				HeightMaxCm:      90,
				WaterRequirement: "Frequent watering, fruit turns bitter if stressed",
				Activities:       []string{"Harvest while skin is glossy", "Support fruit-laden branches"},
			},
		},
		Temperature:   Range{Min: 21, Max: 30},
		Moisture:      Range{Min: 55, Max: 75},
		SoilPH:        Range{Min: 5.5, Max: 6.8},
		Humidity:      Range{Min: 55, Max: 75},
		MinLight:      45,
		Weights: HealthWeights{
			MoistureLow:  1.4,
			MoistureHigh: 1.0,
			TempLow:      2.4,
			TempHigh:     1.6,
			PHLow:        13,
			PHHigh:       13,
			HumidityLow:  0.9,
			HumidityHigh: 0.9,
			LightLow:     1.6,
		},
		YieldBaseline: "3-5 kg per plant",
		Ripening: RipenessProfile{
			Stages: []RipenessStage{
				{Color: "Young", Description: "Small, pale, seeds undeveloped.", DaysFromStart: 0, Percent: 0},
				{Color: "Glossy", Description: "Deep purple shine, ideal for harvest.", DaysFromStart: 3, Percent: 40},
				{Color: "Mature", Description: "Full size, skin still springs back.", DaysFromStart: 6, Percent: 75},
				{Color: "Dull", Description: "Shine fades, seeds harden, flesh turns bitter.", DaysFromStart: 8, Percent: 100},
			},
			Temperature:     Range{Min: 22, Max: 30},
			OverheatFast:    1.1,
			OverheatSlow:    0.75,
			MaxRipeningDays: 8,
		},
		Diseases: []Disease{
			{
				Name:       "Phomopsis Blight",
				Conditions: []Condition{CondHighHumidity, CondHighTemperature},
				Symptoms:   []string{"Circular gray spots on leaves", "Soft rot spreading on fruit"},
				Prevention: []string{"Use resistant varieties", "Destroy infected debris"},
			},
			{
				Name:       "Little Leaf",
				Conditions: []Condition{CondLowMoisture, CondHighTemperature},
				Symptoms:   []string{"Severely stunted plants with tiny leaves"},
				Prevention: []string{"Control leafhopper vectors", "Remove infected plants"},
			},
			{
				Name:       "Shoot and Fruit Borer",
				Conditions: []Condition{CondHighTemperature, CondLowHumidity},
				Symptoms:   []string{"Wilted drooping shoots", "Bore holes plugged with frass in fruit"},
				Prevention: []string{"Clip and destroy infested shoots", "Install pheromone traps"},
			},
			{
				Name:       "Verticillium Wilt",
				Conditions: []Condition{CondLowTemperature, CondHighMoisture, CondHighPH},
				Symptoms:   []string{"One-sided yellowing and wilting", "Brown streaks inside the stem"},
				Prevention: []string{"Rotate with non-host crops", "Avoid cold, wet soils at transplant"},
			},
		},
		Characteristics: []Characteristic{
			{Name: "firmness", Unit: "kgf", Start: 9, End: 3},
			{Name: "gloss", Unit: "index", Start: 9, End: 2},
		},
	}
}
