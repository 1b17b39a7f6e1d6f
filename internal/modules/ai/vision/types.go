package vision

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
)

const systemPrompt = "You're an AI physician at the Ghibli Detox Clinic. " +
	"Analyze the provided image to detect Ghibli-style elements (like Totoro, soot sprites, " +
	"whimsical landscapes, magical creatures, fantasy elements, etc.). Respond in JSON format " +
	"with 3 diagnosis points, 3 treatment points, a scene description with an entirely accurate " +
	"description of the scene - make this description pixel perfect, add every detail in every " +
	"inch since this will be used to recreate a version of this image, and a contamination level " +
	"from 1-100. The keys in the json must be diagnosis_points, treatment_points, description, " +
	"contamination_level"

const userPrompt = "Analyze this image and provide a humorous medical diagnosis of its " +
	"Ghibli-style contamination. Be creative and funny while providing specific details about " +
	"what Ghibli elements you detect."

// AnalyzeRequest is one chat-completions call carrying the image inline
// as a data URI.
type AnalyzeRequest struct {
	Model      string
	ImageBytes []byte
	Mime       string
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

func (a *AnalyzeRequest) Body() (io.Reader, error) {
	dataURI := "data:" + a.Mime + ";base64," + base64.StdEncoding.EncodeToString(a.ImageBytes)
	body := map[string]any{
		"model": a.Model,
		"messages": []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
			}},
		},
		"response_format": map[string]string{"type": "json_object"},
		"max_tokens":      500,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(b), nil
}

func (a *AnalyzeRequest) ContentType() string {
	return "application/json"
}

func (a *AnalyzeRequest) Path() string {
	return "v1/chat/completions"
}
