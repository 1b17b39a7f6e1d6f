package tools

import "testing"

func TestFullURL(t *testing.T) {
	cases := []struct {
		name     string
		baseURL  string
		path     string
		expected string
	}{
		{"plain join", "https://api.openai.com", "v1/chat/completions", "https://api.openai.com/v1/chat/completions"},
		{"trailing slash on base", "https://api.openai.com/", "v1/images/generations", "https://api.openai.com/v1/images/generations"},
		{"leading slash on path", "http://localhost:8080", "/api/analyze", "http://localhost:8080/api/analyze"},
		{"both slashes", "http://localhost:8080/", "/api/generate", "http://localhost:8080/api/generate"},
		{"empty path", "https://api.openai.com", "", "https://api.openai.com"},
		{"empty base", "", "v1/chat/completions", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FullURL(c.baseURL, c.path)
			if got != c.expected {
				t.Fatalf("expected %s, got %s", c.expected, got)
			}
		})
	}
}
