package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// EntityRecognizer supplies named entities for the skill extraction's
// entity signal. Implementations must be safe for concurrent use.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// HTTPRecognizer talks to the NER sidecar's HTTP API.
type HTTPRecognizer struct {
	baseURL       string
	serviceSecret string
	http          *http.Client
}

// NewHTTPRecognizer creates a recognizer client.
func NewHTTPRecognizer(baseURL, serviceSecret string) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL:       baseURL,
		serviceSecret: serviceSecret,
		http:          serviceClient(30 * time.Second),
	}
}

// serviceClient returns the shared internal-service HTTP client when one
// is configured, otherwise a dedicated client with the service timeout.
func serviceClient(fallback time.Duration) *http.Client {
	if engine.Cfg.HTTPClient != nil {
		return engine.Cfg.HTTPClient
	}
	timeout := engine.Cfg.ServiceTimeout
	if timeout <= 0 {
		timeout = fallback
	}
	return &http.Client{Timeout: timeout}
}

// Recognize posts text to the sidecar and returns its entities.
func (c *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	engine.IncrNERCalls()

	resp, err := postJSON(ctx, c.http, c.baseURL+"/entities", c.serviceSecret, map[string]any{
		"text": text,
	})
	if err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("ner recognize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrNERErrors()
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ner recognize: status %d: %s", resp.StatusCode, string(b))
	}

	var raw struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("ner recognize decode: %w", err)
	}
	return raw.Entities, nil
}

// postJSON sends a JSON body with the internal service header, retrying
// transient failures. A fresh request is built per attempt because the
// body reader is consumed.
func postJSON(ctx context.Context, client *http.Client, url, secret string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set("X-Internal-Service", secret)
		}
		return client.Do(req)
	})
}
