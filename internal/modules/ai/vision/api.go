package vision

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

// Analyze sends the image to the vision model and returns the parsed
// clinic report. Transport failures and non-200 statuses are errors;
// partial model output is not (see ParseReport).
func Analyze(ctx context.Context, imageBytes []byte, mime string) (Report, error) {
	cfg := config.GConfig.OpenAI
	request := &AnalyzeRequest{
		Model:      cfg.VisionModel,
		ImageBytes: imageBytes,
		Mime:       mime,
	}
	client := http_client.NewWithTimeout(2 * time.Minute)
	body, err := request.Body()
	if err != nil {
		return Report{}, err
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
		return Report{}, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Str("model", cfg.VisionModel).
		Str("path", request.Path()).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("vision request")
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, err
	}
	if resp.StatusCode != http.StatusOK {
		logs.Logger.Warn().
			Str("model", cfg.VisionModel).
			Int("status_code", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("vision request failed")
		return Report{}, fmt.Errorf("vision request failed, status code: %d", resp.StatusCode)
	}
	return ParseReport(respBody)
}
