package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/aura-ai/aura-backend/pkg/config"
)

// Client is a minimal client for the generative language API
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxRetries  int
	client      *http.Client
}

// NewClient creates a generation client from config
func NewClient(cfg *config.GenerationConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
}

// WithKey returns a copy of the client using the given API key.
// Users may bring their own generation key via settings; an empty key
// keeps the server-wide default.
func (c *Client) WithKey(apiKey string) *Client {
	if apiKey == "" {
		return c
	}
	clone := *c
	clone.apiKey = apiKey
	return &clone
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   *genCfg   `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genCfg struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the generated text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateWithHistory(ctx, nil, prompt)
}

// Turn is one prior exchange in a conversation
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// GenerateWithHistory sends a prompt preceded by prior conversation turns
func (c *Client) GenerateWithHistory(ctx context.Context, history []Turn, prompt string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{Role: turn.Role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: prompt}}})

	reqBody := generateRequest{
		Contents: contents,
		Config:   &genCfg{Temperature: c.temperature},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var text string
	callFn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("generation API returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("generation API returned status %d: %s", resp.StatusCode, string(body)))
		}

		var gr generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode generation response: %w", err))
		}
		if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from generation API"))
		}
		text = gr.Candidates[0].Content.Parts[0].Text
		return nil
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	retries := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), uint64(c.maxRetries))
	if err := backoff.Retry(callFn, retries); err != nil {
		return "", err
	}

	return text, nil
}
