package agro

// Factor identifies one field of the reading vector.
type Factor string

const (
	FactorMoisture       Factor = "moisture"
	FactorTemperature    Factor = "temperature"
	FactorHumidity       Factor = "humidity"
	FactorSoilPH         Factor = "soil_ph"
	FactorLightIntensity Factor = "light_intensity"
	FactorAirPressure    Factor = "air_pressure"
	FactorSolarRadiation Factor = "solar_radiation"
	FactorWindSpeed      Factor = "wind_speed"
	FactorRainfallToday  Factor = "rainfall_today"
	FactorRainfallTotal  Factor = "rainfall_total"
)

// Readings is the live environmental vector driving every derived
// computation. It is caller-owned; engine functions never retain or mutate
// the value they receive.
type Readings struct {
	Moisture       float64 `json:"moisture"`
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	SoilPH         float64 `json:"soil_ph"`
	LightIntensity float64 `json:"light_intensity"`
	AirPressure    float64 `json:"air_pressure"`
	SolarRadiation float64 `json:"solar_radiation"`
	WindSpeed      float64 `json:"wind_speed"`
	RainfallToday  float64 `json:"rainfall_today"`
	RainfallTotal  float64 `json:"rainfall_total"`
}

// factorBounds are the physical limits for each reading field. Derived
// updates from the propagator clamp to these immediately.
var factorBounds = map[Factor]Range{
	FactorMoisture:       {Min: 0, Max: 100},
	FactorTemperature:    {Min: -10, Max: 60},
	FactorHumidity:       {Min: 0, Max: 100},
	FactorSoilPH:         {Min: 0, Max: 14},
	FactorLightIntensity: {Min: 0, Max: 100},
	FactorAirPressure:    {Min: 950, Max: 1050},
	FactorSolarRadiation: {Min: 0, Max: 1200},
	FactorWindSpeed:      {Min: 0, Max: 40},
	FactorRainfallToday:  {Min: 0, Max: 500},
	FactorRainfallTotal:  {Min: 0, Max: 500},
}

// Bounds returns the valid range for a factor. Unknown factors report false.
func Bounds(f Factor) (Range, bool) {
	b, ok := factorBounds[f]
	return b, ok
}

// ValidFactor reports whether f names a reading field.
func ValidFactor(f Factor) bool {
	_, ok := factorBounds[f]
	return ok
}

// Get reads one factor from the vector. Unknown factors read as 0.
func (r Readings) Get(f Factor) float64 {
	switch f {
	case FactorMoisture:
		return r.Moisture
	case FactorTemperature:
		return r.Temperature
	case FactorHumidity:
		return r.Humidity
	case FactorSoilPH:
		return r.SoilPH
	case FactorLightIntensity:
		return r.LightIntensity
	case FactorAirPressure:
		return r.AirPressure
	case FactorSolarRadiation:
		return r.SolarRadiation
	case FactorWindSpeed:
		return r.WindSpeed
	case FactorRainfallToday:
		return r.RainfallToday
	case FactorRainfallTotal:
		return r.RainfallTotal
	}
	return 0
}

// set writes one factor, clamped to its bounds, and returns the new vector.
func (r Readings) set(f Factor, v float64) Readings {
	if b, ok := factorBounds[f]; ok {
		v = clamp(v, b.Min, b.Max)
	}
	switch f {
	case FactorMoisture:
		r.Moisture = v
	case FactorTemperature:
		r.Temperature = v
	case FactorHumidity:
		r.Humidity = v
	case FactorSoilPH:
		r.SoilPH = v
	case FactorLightIntensity:
		r.LightIntensity = v
	case FactorAirPressure:
		r.AirPressure = v
	case FactorSolarRadiation:
		r.SolarRadiation = v
	case FactorWindSpeed:
		r.WindSpeed = v
	case FactorRainfallToday:
		r.RainfallToday = v
	case FactorRainfallTotal:
		r.RainfallTotal = v
	}
	return r
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
