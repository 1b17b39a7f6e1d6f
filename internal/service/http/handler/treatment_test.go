package handler

import "testing"

func TestTreatmentPlan(t *testing.T) {
	cases := []struct {
		level    int
		expected []string
	}{
		{1, mildTreatment},
		{33, mildTreatment},
		{34, moderateTreatment},
		{66, moderateTreatment},
		{67, severeTreatment},
		{100, severeTreatment},
	}
	for _, c := range cases {
		plan := treatmentPlan(c.level)
		if len(plan) != 3 {
			t.Fatalf("level %d: expected 3 treatment points, got %d", c.level, len(plan))
		}
		if plan[0] != c.expected[0] {
			t.Fatalf("level %d: wrong band, got %q", c.level, plan[0])
		}
	}
}

func TestTreatmentPlanDeterministic(t *testing.T) {
	// a record must read the same on every revisit
	first := treatmentPlan(80)
	second := treatmentPlan(80)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("plan changed between calls at index %d", i)
		}
	}
}

func TestBuildDetoxPrompt(t *testing.T) {
	prompt := buildDetoxPrompt("a castle floating above the clouds")
	if prompt[:7] != "Scene: " {
		t.Fatalf("prompt must lead with the scene: %q", prompt)
	}
}
