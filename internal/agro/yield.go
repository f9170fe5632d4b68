package agro

import "math"

// flowering gate: yield is unestimable before the third stage of any crop.
const minYieldStageIndex = 2

// YieldEstimate pairs a projected yield percentage with the crop's static
// per-area baseline label.
type YieldEstimate struct {
	Percent  int    `json:"percent"`
	Baseline string `json:"baseline"`
	TooEarly bool   `json:"too_early"`
	Message  string `json:"message,omitempty"`
}

// EstimateYield projects yield from the health index and overall progress.
// Before the flowering gate it reports 0% with a too-early marker,
// regardless of health. Elapsed time past the total duration caps progress
// at 100%. The percentage is rounded to the nearest integer; this is the
// single place derived output rounds.
func EstimateYield(crop *Crop, health float64, week int) YieldEstimate {
	if crop == nil {
		return YieldEstimate{TooEarly: true, Message: "unknown crop"}
	}

	_, index, ok := ResolveStage(crop, week)
	if ok && index < minYieldStageIndex {
		return YieldEstimate{
			Percent:  0,
			Baseline: crop.YieldBaseline,
			TooEarly: true,
			Message:  "too early to estimate",
		}
	}

	health = clamp(health, 0, 100)
	progress := OverallProgress(crop, week)
	percent := int(math.Round(health / 100 * progress * 100))

	return YieldEstimate{Percent: percent, Baseline: crop.YieldBaseline}
}
