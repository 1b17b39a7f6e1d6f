package response

import jsoniter "github.com/json-iterator/go"

// Wire types shared between the handlers and the Go upload client.

// PartialAnalysis is the phase-1 result. It carries the storage key so
// phase 2 never has to re-upload the original, and the exact prompt
// phase 2 should use.
type PartialAnalysis struct {
	DiagnosisPoints    []string `json:"diagnosisPoints"`
	ContaminationLevel int      `json:"contaminationLevel"`
	OriginalImageUrl   string   `json:"originalImageUrl"`
	OriginalImageKey   string   `json:"originalImageKey"`
	Description        string   `json:"description"`
	PromptForDalle     string   `json:"promptForDalle"`
}

// Creation is the phase-2 result.
type Creation struct {
	Id                 int      `json:"id"`
	TreatmentPoints    []string `json:"treatmentPoints"`
	DetoxifiedImageUrl string   `json:"detoxifiedImageUrl"`
	ShareableUrl       string   `json:"shareableUrl"`
}

// AnalysisRecord is the full persisted record with freshly signed URLs.
type AnalysisRecord struct {
	Id                 int      `json:"id"`
	DiagnosisPoints    []string `json:"diagnosisPoints"`
	TreatmentPoints    []string `json:"treatmentPoints"`
	ContaminationLevel int      `json:"contaminationLevel"`
	OriginalImageUrl   string   `json:"originalImageUrl"`
	DetoxifiedImageUrl string   `json:"detoxifiedImageUrl"`
	Description        string   `json:"description"`
	ShareableUrl       string   `json:"shareableUrl"`
	CreatedAt          string   `json:"createdAt"`
}

type GalleryItem struct {
	Id                 int    `json:"id"`
	OriginalImageUrl   string `json:"originalImageUrl"`
	DetoxifiedImageUrl string `json:"detoxifiedImageUrl"`
	ContaminationLevel int    `json:"contaminationLevel"`
}

type Count struct {
	Count int64 `json:"count"`
}

func UnmarshalPartialAnalysis(data []byte) (*PartialAnalysis, error) {
	var result PartialAnalysis
	err := jsoniter.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func UnmarshalCreation(data []byte) (*Creation, error) {
	var result Creation
	err := jsoniter.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func UnmarshalError(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := jsoniter.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
