package request

import "testing"

func TestGenerateValid(t *testing.T) {
	cases := []struct {
		name string
		form Generate
		ok   bool
	}{
		{"complete", Generate{OriginalImageKey: "detox/a.png", PromptForDalle: "Scene: a meadow"}, true},
		{"missing key", Generate{PromptForDalle: "Scene: a meadow"}, false},
		{"missing prompt", Generate{OriginalImageKey: "detox/a.png"}, false},
		{"empty", Generate{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.form.Valid()
			if c.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestGenerateFullWithDefault(t *testing.T) {
	t.Run("zero level gets the default", func(t *testing.T) {
		form := Generate{}
		form.FullWithDefault()
		if form.ContaminationLevel != 50 {
			t.Fatalf("expected 50, got %d", form.ContaminationLevel)
		}
		if form.DiagnosisPoints == nil {
			t.Fatalf("diagnosis points should be initialized")
		}
	})
	t.Run("out of range levels are clamped", func(t *testing.T) {
		low := Generate{ContaminationLevel: -3}
		low.FullWithDefault()
		if low.ContaminationLevel != 1 {
			t.Fatalf("expected 1, got %d", low.ContaminationLevel)
		}
		high := Generate{ContaminationLevel: 400}
		high.FullWithDefault()
		if high.ContaminationLevel != 100 {
			t.Fatalf("expected 100, got %d", high.ContaminationLevel)
		}
	})
	t.Run("in range level untouched", func(t *testing.T) {
		form := Generate{ContaminationLevel: 73}
		form.FullWithDefault()
		if form.ContaminationLevel != 73 {
			t.Fatalf("expected 73, got %d", form.ContaminationLevel)
		}
	})
}
