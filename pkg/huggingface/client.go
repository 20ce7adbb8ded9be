package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "distilbert-base-uncased-finetuned-sst-2-english"
	DefaultTimeout = 30 * time.Second
)

// Client is the Hugging Face Inference API text-classification client.
type Client struct {
	apiToken   string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ IClassifier = (*Client)(nil)

// New creates a new Inference API client.
func New(apiToken string) (*Client, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("huggingface API token is required")
	}

	return &Client{
		apiToken:   apiToken,
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithModel sets a custom pretrained model identifier.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// WithBaseURL overrides the default Inference API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Model returns the pretrained model identifier being used.
func (c *Client) Model() string {
	return c.model
}

// Classify scores a single text span and returns the top-scoring label.
func (c *Client) Classify(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return Result{}, fmt.Errorf("no text provided")
	}

	bodyBytes, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call Inference API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error != "" {
			return Result{}, fmt.Errorf("inference API error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return Result{}, fmt.Errorf("inference API error: %d", resp.StatusCode)
	}

	var rows [][]classification
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return Result{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return Result{}, fmt.Errorf("inference API returned no classifications")
	}

	top := rows[0][0]
	for _, cand := range rows[0][1:] {
		if cand.Score > top.Score {
			top = cand
		}
	}

	return Result{Label: top.Label, Score: top.Score}, nil
}
