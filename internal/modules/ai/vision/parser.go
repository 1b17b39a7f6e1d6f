package vision

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/ghibli-detox/internal/consts"
)

// Report is the clinic's read of an image. Every field is
// optional-with-default: the model's JSON goes through exactly one
// lenient parse and malformed output degrades to neutral values instead
// of failing the request. TreatmentPoints is decoded because the
// instruction prompt asks for it, but the treatment plan that gets
// persisted is derived server-side at generate time, not taken from the
// model.
type Report struct {
	DiagnosisPoints    []string `json:"diagnosis_points"`
	TreatmentPoints    []string `json:"treatment_points"`
	Description        string   `json:"description"`
	ContaminationLevel int      `json:"contamination_level"`
}

// ParseReport extracts the assistant message from a chat-completions
// body and decodes the report out of it, applying defaults.
func ParseReport(body []byte) (Report, error) {
	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := jsoniter.Unmarshal(body, &chatResp); err != nil {
		return defaultReport(), fmt.Errorf("decode chat completion: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return defaultReport(), fmt.Errorf("chat completion has no choices")
	}
	return parseReportContent([]byte(chatResp.Choices[0].Message.Content)), nil
}

func parseReportContent(content []byte) Report {
	var raw struct {
		DiagnosisPoints    []string `json:"diagnosis_points"`
		TreatmentPoints    []string `json:"treatment_points"`
		Description        string   `json:"description"`
		ContaminationLevel *int     `json:"contamination_level"`
	}
	// malformed content falls through to all-defaults
	_ = jsoniter.Unmarshal(content, &raw)

	report := Report{
		DiagnosisPoints:    raw.DiagnosisPoints,
		TreatmentPoints:    raw.TreatmentPoints,
		Description:        raw.Description,
		ContaminationLevel: consts.DefaultContaminationLevel,
	}
	if report.DiagnosisPoints == nil {
		report.DiagnosisPoints = []string{}
	}
	if report.TreatmentPoints == nil {
		report.TreatmentPoints = []string{}
	}
	if raw.ContaminationLevel != nil {
		report.ContaminationLevel = clampLevel(*raw.ContaminationLevel)
	}
	return report
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 100 {
		return 100
	}
	return level
}

func defaultReport() Report {
	return Report{
		DiagnosisPoints:    []string{},
		TreatmentPoints:    []string{},
		ContaminationLevel: consts.DefaultContaminationLevel,
	}
}
