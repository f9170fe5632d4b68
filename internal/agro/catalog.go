package agro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownCrop is returned when a crop id has no catalog entry. It is the
// only failure the engine reports; a week past a crop's duration is a normal
// saturating case, not an error.
var ErrUnknownCrop = errors.New("unknown crop")

// Range is an inclusive optimal band for an environmental factor.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v sits inside the band, boundaries included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the midpoint of the band.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Stage is one time-bounded phase of a crop's life cycle. Stages are
// contiguous: EndWeek+1 of one stage is StartWeek of the next.
type Stage struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	StartWeek        int      `json:"start_week"`
	EndWeek          int      `json:"end_week"`
	Temperature      Range    `json:"temperature"`
	Moisture         Range    `json:"moisture"`
	SoilPH           Range    `json:"soil_ph"`
	HeightMinCm      float64  `json:"height_min_cm"`
	HeightMaxCm      float64  `json:"height_max_cm"`
	WaterRequirement string   `json:"water_requirement"`
	Activities       []string `json:"activities"`
}

// HealthWeights are the per-crop deviation penalties applied by the health
// scorer. Weights differ per factor and per direction (above vs. below the
// optimal band); light only penalizes below the floor.
type HealthWeights struct {
	MoistureLow  float64
	MoistureHigh float64
	TempLow      float64
	TempHigh     float64
	PHLow        float64
	PHHigh       float64
	HumidityLow  float64
	HumidityHigh float64
	LightLow     float64
}

// RipenessStage is one entry of a crop's ripening timeline. DaysFromStart
// thresholds are strictly increasing and Percent is non-decreasing, starting
// at 0 and reaching 100 on the last entry.
type RipenessStage struct {
	Color         string  `json:"color"`
	Description   string  `json:"description"`
	DaysFromStart float64 `json:"days_from_start"`
	Percent       float64 `json:"percent"`
}

// RipenessProfile describes how a crop's fruit advances through ripeness
// stages as a function of elapsed days and ambient temperature.
type RipenessProfile struct {
	Stages          []RipenessStage `json:"stages"`
	Temperature     Range           `json:"temperature"`
	OverheatFast    float64         `json:"overheat_fast"`
	OverheatSlow    float64         `json:"overheat_slow"`
	MaxRipeningDays float64         `json:"max_ripening_days"`
}

// Condition is one entry of the fixed trigger vocabulary the disease risk
// engine evaluates against widened stage ranges.
type Condition string

const (
	CondHighMoisture    Condition = "high_moisture"
	CondLowMoisture     Condition = "low_moisture"
	CondHighHumidity    Condition = "high_humidity"
	CondLowHumidity     Condition = "low_humidity"
	CondHighTemperature Condition = "high_temperature"
	CondLowTemperature  Condition = "low_temperature"
	CondHighPH          Condition = "high_ph"
	CondLowPH           Condition = "low_ph"
	CondLowLight        Condition = "low_light"
)

// Margins applied when deriving condition flags from optimal ranges. The
// source material scattered these per call site; here they are the single
// canonical set for every crop.
const (
	MoistureMargin = 10.0
	TempMargin     = 5.0
	HumidityMargin = 10.0
	PHMargin       = 0.5
	LightMargin    = 10.0
)

// Disease is a named disease or pest with its trigger conditions.
type Disease struct {
	Name       string      `json:"name"`
	Conditions []Condition `json:"conditions"`
	Symptoms   []string    `json:"symptoms"`
	Prevention []string    `json:"prevention"`
}

// Characteristic is a presentation-derived fruit property (firmness, sugar,
// heat level) interpolated linearly from ripeness percentage alone.
type Characteristic struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Crop is a tracked plant species with its full phenological timeline and
// per-crop coefficient tables. Loaded once at process start, never mutated.
type Crop struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ScientificName  string           `json:"scientific_name"`
	TotalWeeks      int              `json:"total_weeks"`
	Stages          []Stage          `json:"stages"`
	Temperature     Range            `json:"temperature"`
	Moisture        Range            `json:"moisture"`
	SoilPH          Range            `json:"soil_ph"`
	Humidity        Range            `json:"humidity"`
	MinLight        float64          `json:"min_light"`
	Weights         HealthWeights    `json:"-"`
	YieldBaseline   string           `json:"yield_baseline"`
	Ripening        RipenessProfile  `json:"ripening"`
	Diseases        []Disease        `json:"diseases"`
	Characteristics []Characteristic `json:"characteristics"`
}

// Catalog holds the static crop reference data.
type Catalog struct {
	crops []Crop
	byID  map[string]*Crop
}

// NewCatalog builds a catalog over the given crops.
func NewCatalog(crops []Crop) *Catalog {
	c := &Catalog{crops: crops, byID: make(map[string]*Crop, len(crops))}
	for i := range c.crops {
		c.byID[c.crops[i].ID] = &c.crops[i]
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(builtinCrops())
}

// Crops lists every catalog entry in declaration order.
func (c *Catalog) Crops() []Crop {
	return c.crops
}

// Get resolves a crop id. Unknown ids yield ErrUnknownCrop, with a
// did-you-mean hint when a close match exists.
func (c *Catalog) Get(id string) (*Crop, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if crop, ok := c.byID[key]; ok {
		return crop, nil
	}
	if suggestion := c.Suggest(key); suggestion != "" {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownCrop, id, suggestion)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCrop, id)
}

// Suggest returns the closest catalog id within a small edit distance, or
// empty when nothing is close enough.
func (c *Catalog) Suggest(id string) string {
	best := ""
	bestDist := 0
	for candidate := range c.byID {
		dist := levenshtein.ComputeDistance(id, candidate)
		if dist > suggestLimit(len(candidate)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
