package vision

import (
	"testing"
)

func chatBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + content + `}}]}`
}

func TestParseReport(t *testing.T) {
	t.Run("complete report", func(t *testing.T) {
		body := chatBody(`"{\"diagnosis_points\":[\"Unrealistic cloud density\",\"Suspicious forest spirit activity\"],\"treatment_points\":[\"Reduce whimsy\"],\"description\":\"a rolling green meadow\",\"contamination_level\":87}"`)
		report, err := ParseReport([]byte(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.DiagnosisPoints) != 2 {
			t.Fatalf("expected 2 diagnosis points, got %d", len(report.DiagnosisPoints))
		}
		if report.ContaminationLevel != 87 {
			t.Fatalf("expected level 87, got %d", report.ContaminationLevel)
		}
		if report.Description != "a rolling green meadow" {
			t.Fatalf("unexpected description: %q", report.Description)
		}
	})

	t.Run("missing fields default", func(t *testing.T) {
		body := chatBody(`"{\"description\":\"a house\"}"`)
		report, err := ParseReport([]byte(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.DiagnosisPoints == nil || len(report.DiagnosisPoints) != 0 {
			t.Fatalf("expected empty diagnosis points, got %v", report.DiagnosisPoints)
		}
		if report.TreatmentPoints == nil || len(report.TreatmentPoints) != 0 {
			t.Fatalf("expected empty treatment points, got %v", report.TreatmentPoints)
		}
		if report.ContaminationLevel != 50 {
			t.Fatalf("expected default level 50, got %d", report.ContaminationLevel)
		}
	})

	t.Run("level clamped low and high", func(t *testing.T) {
		low, err := ParseReport([]byte(chatBody(`"{\"contamination_level\":-5}"`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if low.ContaminationLevel != 1 {
			t.Fatalf("expected clamp to 1, got %d", low.ContaminationLevel)
		}
		high, err := ParseReport([]byte(chatBody(`"{\"contamination_level\":250}"`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if high.ContaminationLevel != 100 {
			t.Fatalf("expected clamp to 100, got %d", high.ContaminationLevel)
		}
	})

	t.Run("non-JSON content degrades to defaults", func(t *testing.T) {
		body := chatBody(`"I cannot analyze this image."`)
		report, err := ParseReport([]byte(body))
		if err != nil {
			t.Fatalf("content that is not JSON must not error: %v", err)
		}
		if report.ContaminationLevel != 50 {
			t.Fatalf("expected default level 50, got %d", report.ContaminationLevel)
		}
		if report.Description != "" {
			t.Fatalf("expected empty description, got %q", report.Description)
		}
	})

	t.Run("no choices is an error", func(t *testing.T) {
		_, err := ParseReport([]byte(`{"choices":[]}`))
		if err == nil {
			t.Fatalf("expected error for empty choices")
		}
	})

	t.Run("invalid envelope is an error", func(t *testing.T) {
		_, err := ParseReport([]byte(`not json at all`))
		if err == nil {
			t.Fatalf("expected error for invalid body")
		}
	})
}
