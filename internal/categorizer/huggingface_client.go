package categorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fjacquet/expense-tracker/internal/logging"
)

// DefaultHuggingFaceEndpoint is the base URL of the hosted inference API.
const DefaultHuggingFaceEndpoint = "https://api-inference.huggingface.co/models"

// HuggingFaceClient runs zero-shot classification on the Hugging Face
// inference API (facebook/bart-large-mnli by default).
type HuggingFaceClient struct {
	endpoint   string
	model      string
	token      string
	httpClient *http.Client
	logger     logging.Logger
}

// NewHuggingFaceClient creates a client for model served under endpoint.
// httpClient may be nil.
func NewHuggingFaceClient(endpoint, model, token string, httpClient *http.Client, logger logging.Logger) (*HuggingFaceClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("huggingface: %w (set HF_API_TOKEN)", ErrMissingAPIKey)
	}
	if endpoint == "" {
		endpoint = DefaultHuggingFaceEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HuggingFaceClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		model:      model,
		token:      token,
		httpClient: httpClient,
		logger:     logging.OrDiscard(logger),
	}, nil
}

// Name returns "huggingface".
func (c *HuggingFaceClient) Name() string {
	return "huggingface"
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
	Error  string    `json:"error"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the highest scoring candidate label.
func (c *HuggingFaceClient) Classify(ctx context.Context, text string, labels []string) (string, error) {
	body, err := json.Marshal(zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	url := c.endpoint + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Sending entry to Hugging Face",
		logging.Field{Key: logging.FieldModel, Value: c.model},
		logging.Field{Key: logging.FieldDescription, Value: text})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WithError(closeErr).Warn("Failed to close response body")
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr zeroShotResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("inference API returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("inference API returned %d", resp.StatusCode)
	}

	return parseZeroShotResponse(data)
}

// parseZeroShotResponse accepts both the {"labels": [...], "scores": [...]}
// layout and a list of {"label", "score"} pairs.
func parseZeroShotResponse(data []byte) (string, error) {
	var result zeroShotResponse
	if err := json.Unmarshal(data, &result); err == nil {
		if result.Error != "" {
			return "", errors.New(result.Error)
		}
		if len(result.Labels) > 0 {
			return result.Labels[0], nil
		}
		return "", nil
	}

	var pairs []labelScore
	if err := json.Unmarshal(data, &pairs); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	best := ""
	bestScore := -1.0
	for _, p := range pairs {
		if p.Score > bestScore {
			best, bestScore = p.Label, p.Score
		}
	}
	return best, nil
}
