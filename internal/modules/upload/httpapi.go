package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/reusedev/ghibli-detox/internal/modules/http_client"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/request"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
	"github.com/reusedev/ghibli-detox/tools"
)

// StatusError is a non-200 answer from the server. Message is the body's
// message field when one was present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
}

// HTTPClient implements API against a running server. The timeout has
// to cover image generation, which routinely takes minutes.
type HTTPClient struct {
	baseURL string
	client  *http_client.HttpClient
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  http_client.NewWithTimeout(8 * time.Minute),
	}
}

func (h *HTTPClient) Analyze(ctx context.Context, filename string, data []byte) (*response.PartialAnalysis, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(data); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	req, err := h.client.NewRequest(
		http.MethodPost,
		tools.FullURL(h.baseURL, "api/analyze"),
		http_client.WithHeader("Content-Type", writer.FormDataContentType()),
		http_client.WithBody(&buf),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	body, err := h.do(req)
	if err != nil {
		return nil, err
	}
	return response.UnmarshalPartialAnalysis(body)
}

func (h *HTTPClient) Generate(ctx context.Context, form *request.Generate) (*response.Creation, error) {
	req, err := h.client.NewRequest(
		http.MethodPost,
		tools.FullURL(h.baseURL, "api/generate"),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBody(form),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	body, err := h.do(req)
	if err != nil {
		return nil, err
	}
	return response.UnmarshalCreation(body)
}

func (h *HTTPClient) Delete(ctx context.Context, id int) error {
	req, err := h.client.NewRequest(
		http.MethodDelete,
		tools.FullURL(h.baseURL, "api/images/"+strconv.Itoa(id)),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	_, err = h.do(req)
	return err
}

func (h *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    response.UnmarshalError(body),
		}
	}
	return body, nil
}
