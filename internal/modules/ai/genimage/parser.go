package genimage

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ExtractURL pulls the first image URL out of an images/generations
// response body.
func ExtractURL(body []byte) (string, error) {
	var s struct {
		Data []struct {
			URL           string `json:"url,omitempty"`
			RevisedPrompt string `json:"revised_prompt,omitempty"`
		} `json:"data"`
	}
	err := jsoniter.Unmarshal(body, &s)
	if err != nil {
		return "", err
	}
	for _, v := range s.Data {
		if v.URL != "" {
			return v.URL, nil
		}
	}
	return "", fmt.Errorf("no image URL found in response")
}
