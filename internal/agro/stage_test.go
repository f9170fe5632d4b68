package agro

import (
	"math"
	"testing"
)

func mustCrop(t *testing.T, id string) *Crop {
	t.Helper()
	crop, err := Default().Get(id)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return crop
}

func TestResolveStageWeekNine(t *testing.T) {
	tomato := mustCrop(t, "tomato")

	st, index, ok := ResolveStage(tomato, 9)
	if !ok {
		t.Fatal("week 9 should resolve")
	}
	if st.Name != "Flowering Stage" {
		t.Fatalf("week 9 resolved to %q", st.Name)
	}
	if index != 3 {
		t.Fatalf("flowering index = %d, want 3", index)
	}
	if st.Temperature.Min != 21 || st.Temperature.Max != 27 {
		t.Fatalf("flowering temp range = %+v", st.Temperature)
	}
}

func TestResolveStagePastDurationSaturates(t *testing.T) {
	for _, crop := range Default().Crops() {
		c := crop
		if _, _, ok := ResolveStage(&c, c.TotalWeeks); !ok {
			t.Fatalf("%s: final week should resolve", c.ID)
		}
		if _, _, ok := ResolveStage(&c, c.TotalWeeks+1); ok {
			t.Fatalf("%s: week past duration should not resolve", c.ID)
		}
		if got := OverallProgress(&c, c.TotalWeeks+5); got != 1 {
			t.Fatalf("%s: overall progress past duration = %v, want 1", c.ID, got)
		}
		if got := StageProgress(&c, c.TotalWeeks+5); got != 1 {
			t.Fatalf("%s: stage progress past duration = %v, want 1", c.ID, got)
		}
	}
}

func TestStageProgressWithinStage(t *testing.T) {
	tomato := mustCrop(t, "tomato")

	// Vegetative runs weeks 5-7: week 5 is a third in, week 7 completes it.
	if got := StageProgress(tomato, 5); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("week 5 progress = %v", got)
	}
	if got := StageProgress(tomato, 7); got != 1 {
		t.Fatalf("week 7 progress = %v, want 1", got)
	}
}

func TestExpectedHeightInterpolates(t *testing.T) {
	tomato := mustCrop(t, "tomato")

	// Germination weeks 1-2, bounds 0-5cm: week 1 is halfway through.
	if got := ExpectedHeight(tomato, 1); math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("week 1 height = %v, want 2.5", got)
	}
	if got := ExpectedHeight(tomato, 12); got != 120 {
		t.Fatalf("final week height = %v, want 120", got)
	}
}

func TestExpectedHeightSaturatesPastDuration(t *testing.T) {
	for _, crop := range Default().Crops() {
		c := crop
		want := c.Stages[len(c.Stages)-1].HeightMaxCm
		if got := ExpectedHeight(&c, c.TotalWeeks+10); got != want {
			t.Fatalf("%s: saturated height = %v, want %v", c.ID, got, want)
		}
	}
}

func TestEstimateYieldTooEarlyBeforeFlowering(t *testing.T) {
	for _, crop := range Default().Crops() {
		c := crop
		for week := 1; week <= c.TotalWeeks; week++ {
			_, index, ok := ResolveStage(&c, week)
			if !ok || index >= 2 {
				continue
			}
			est := EstimateYield(&c, 100, week)
			if !est.TooEarly || est.Percent != 0 {
				t.Fatalf("%s week %d: expected too-early 0%%, got %+v", c.ID, week, est)
			}
		}
	}
}

func TestEstimateYieldScalesWithHealthAndProgress(t *testing.T) {
	tomato := mustCrop(t, "tomato")

	est := EstimateYield(tomato, 100, tomato.TotalWeeks)
	if est.TooEarly || est.Percent != 100 {
		t.Fatalf("full health at final week = %+v", est)
	}
	if est.Baseline != tomato.YieldBaseline {
		t.Fatalf("baseline = %q", est.Baseline)
	}

	// Week 9 of 12 at health 80: 0.8 x 0.75 -> 60%.
	est = EstimateYield(tomato, 80, 9)
	if est.Percent != 60 {
		t.Fatalf("week 9 health 80 = %d%%, want 60", est.Percent)
	}

	// Past the duration progress caps at 100%.
	est = EstimateYield(tomato, 80, tomato.TotalWeeks+4)
	if est.Percent != 80 {
		t.Fatalf("past-duration health 80 = %d%%, want 80", est.Percent)
	}
}
