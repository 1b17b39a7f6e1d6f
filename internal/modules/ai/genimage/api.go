package genimage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/internal/modules/http_client"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/tools"
)

// Generate asks the image model for one image and returns the URL it
// was published under. Generation is slow; without a generous timeout
// the connection drops while the provider still bills the call.
func Generate(ctx context.Context, prompt string) (string, error) {
	cfg := config.GConfig.OpenAI
	request := &GenerateRequest{
		Model:   cfg.ImageModel,
		Prompt:  prompt,
		Size:    cfg.ImageSize,
		Quality: cfg.ImageQuality,
	}
	client := http_client.NewWithTimeout(6 * time.Minute)
	body, err := request.Body()
	if err != nil {
		return "", err
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(cfg.BaseURL, request.Path()),
		http_client.WithHeader("Authorization", "Bearer "+cfg.Token),
		http_client.WithHeader("Content-Type", request.ContentType()),
		http_client.WithBody(body),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return "", err
	}
	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Str("model", cfg.ImageModel).
		Str("path", request.Path()).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("image request")
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		logs.Logger.Warn().
			Str("model", cfg.ImageModel).
			Int("status_code", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("image request failed")
		return "", fmt.Errorf("image request failed, status code: %d", resp.StatusCode)
	}
	return ExtractURL(respBody)
}
