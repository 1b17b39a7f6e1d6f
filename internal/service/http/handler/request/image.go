package request

import (
	"fmt"

	"github.com/reusedev/ghibli-detox/internal/consts"
)

// Generate is the phase-2 body. The key and prompt must come from a
// prior analyze response; the diagnosis data is echoed back so the
// record can be assembled without server-side session state.
type Generate struct {
	OriginalImageKey   string   `json:"originalImageKey"`
	PromptForDalle     string   `json:"promptForDalle"`
	DiagnosisPoints    []string `json:"diagnosisPoints"`
	ContaminationLevel int      `json:"contaminationLevel"`
	Description        string   `json:"description"`
}

func (g *Generate) Valid() error {
	if g.OriginalImageKey == "" {
		return fmt.Errorf("originalImageKey must not be empty")
	}
	if g.PromptForDalle == "" {
		return fmt.Errorf("promptForDalle must not be empty")
	}
	return nil
}

func (g *Generate) FullWithDefault() {
	if g.DiagnosisPoints == nil {
		g.DiagnosisPoints = []string{}
	}
	if g.ContaminationLevel == 0 {
		g.ContaminationLevel = consts.DefaultContaminationLevel
	}
	if g.ContaminationLevel < 1 {
		g.ContaminationLevel = 1
	}
	if g.ContaminationLevel > 100 {
		g.ContaminationLevel = 100
	}
}
