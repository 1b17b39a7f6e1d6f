package genimage

import (
	"bytes"
	"encoding/json"
	"io"
)

// GenerateRequest is one images/generations call. A single image per
// prompt is all the workflow ever needs.
type GenerateRequest struct {
	Model   string
	Prompt  string
	Size    string
	Quality string
}

func (g *GenerateRequest) Body() (io.Reader, error) {
	body := map[string]any{
		"model":   g.Model,
		"prompt":  g.Prompt,
		"n":       1,
		"size":    g.Size,
		"quality": g.Quality,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(b), nil
}

func (g *GenerateRequest) ContentType() string {
	return "application/json"
}

func (g *GenerateRequest) Path() string {
	return "v1/images/generations"
}
