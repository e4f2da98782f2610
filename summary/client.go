package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/config"
)

const msgGenerationFailed = "Generation service unavailable."

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// OllamaClient calls an Ollama-compatible /api/generate endpoint and waits for the whole,
// non-streamed answer.
type OllamaClient struct {
	url        string
	model      string
	httpClient *http.Client
}

// NewOllamaClient builds a client for cfg. Deadlines come from the caller's context.
func NewOllamaClient(cfg *config.GenerationConfig) *OllamaClient {
	return &OllamaClient{
		url:        cfg.URL,
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

// Generate sends prompt and returns the "response" field of the reply.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.NewExternalServiceError(msgGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperror.NewExternalServiceError(msgGenerationFailed,
			fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.NewExternalServiceError(msgGenerationFailed,
			fmt.Errorf("decode generate response: %w", err))
	}
	return out.Response, nil
}
