package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "mistral"
	defaultTimeout = 30 * time.Second
)

// HTTP calls an Ollama-style generate endpoint.
type HTTP struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewHTTP creates an HTTP generator with sane defaults.
func NewHTTP(baseURL, model string, timeout time.Duration) *HTTP {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTP{
		BaseURL: baseURL,
		Model:   model,
		Client:  &http.Client{Timeout: timeout},
	}
}

// Generate posts the prompt and returns the trimmed response text.
func (g *HTTP) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":  g.Model,
		"prompt": prompt,
		"stream": false,
	}
	data, _ := json.Marshal(body)

	url := strings.TrimRight(g.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate returned %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse generate response: %w", err)
	}
	return strings.TrimSpace(parsed.Response), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
