package agro

// ExpectedHeight interpolates the plant height (cm) within the current
// stage's bounds using stage progress. Past the total duration it saturates
// at the final stage's upper bound.
func ExpectedHeight(crop *Crop, week int) float64 {
	if crop == nil || len(crop.Stages) == 0 {
		return 0
	}

	st, _, ok := ResolveStage(crop, week)
	if !ok {
		return crop.Stages[len(crop.Stages)-1].HeightMaxCm
	}

	progress := StageProgress(crop, week)
	return st.HeightMinCm + (st.HeightMaxCm-st.HeightMinCm)*progress
}
