package genimage

import "testing"

func TestExtractURL(t *testing.T) {
	t.Run("url present", func(t *testing.T) {
		body := `{"created":1713833628,"data":[{"url":"https://oaidalleapiprodscus.blob.core.windows.net/private/img-abc.png","revised_prompt":"a gray office"}]}`
		url, err := ExtractURL([]byte(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := "https://oaidalleapiprodscus.blob.core.windows.net/private/img-abc.png"
		if url != expected {
			t.Fatalf("expected %s, got %s", expected, url)
		}
	})

	t.Run("skips entries without url", func(t *testing.T) {
		body := `{"data":[{"b64_json":"abcd"},{"url":"https://example.com/second.png"}]}`
		url, err := ExtractURL([]byte(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://example.com/second.png" {
			t.Fatalf("expected second entry url, got %s", url)
		}
	})

	t.Run("empty data is an error", func(t *testing.T) {
		_, err := ExtractURL([]byte(`{"data":[]}`))
		if err == nil {
			t.Fatalf("expected error for empty data")
		}
	})

	t.Run("invalid body is an error", func(t *testing.T) {
		_, err := ExtractURL([]byte(`<!doctype html>`))
		if err == nil {
			t.Fatalf("expected error for invalid body")
		}
	})
}
