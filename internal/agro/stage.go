package agro

// ResolveStage returns the stage whose week span contains w, along with its
// 0-based index. ok is false when w falls past the crop's total duration;
// callers treat that as "cycle complete" and saturate. Weeks below 1 clamp
// into the first stage.
func ResolveStage(crop *Crop, week int) (*Stage, int, bool) {
	if crop == nil || len(crop.Stages) == 0 {
		return nil, -1, false
	}
	if week < 1 {
		week = 1
	}
	if week > crop.TotalWeeks {
		return nil, -1, false
	}
	for i := range crop.Stages {
		st := &crop.Stages[i]
		if week >= st.StartWeek && week <= st.EndWeek {
			return st, i, true
		}
	}
	return nil, -1, false
}

// StageProgress is the fraction of the current stage's duration elapsed,
// clamped to [0,1]. Past the total duration it reports 1.
func StageProgress(crop *Crop, week int) float64 {
	st, _, ok := ResolveStage(crop, week)
	if !ok {
		return 1
	}
	span := float64(st.EndWeek - st.StartWeek + 1)
	progress := float64(week-st.StartWeek+1) / span
	return clamp(progress, 0, 1)
}

// OverallProgress is the fraction of the crop's total duration elapsed,
// capped at 1.
func OverallProgress(crop *Crop, week int) float64 {
	if crop == nil || crop.TotalWeeks <= 0 {
		return 0
	}
	if week < 0 {
		week = 0
	}
	progress := float64(week) / float64(crop.TotalWeeks)
	return clamp(progress, 0, 1)
}
