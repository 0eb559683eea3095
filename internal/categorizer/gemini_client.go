package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when a remote provider has no credentials.
var ErrMissingAPIKey = errors.New("API key not set")

// contentGenerator is the part of *genai.GenerativeModel used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient classifies entries with a Google Gemini model.
type GeminiClient struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
	logger    logging.Logger
}

// NewGeminiClient connects to the Gemini API with apiKey.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY)", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
		logger:    logging.OrDiscard(logger),
	}, nil
}

// Name returns "gemini".
func (c *GeminiClient) Name() string {
	return "gemini"
}

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Classify asks the model to pick one of labels for text.
func (c *GeminiClient) Classify(ctx context.Context, text string, labels []string) (string, error) {
	c.logger.Debug("Sending entry to Gemini",
		logging.Field{Key: logging.FieldModel, Value: c.modelName},
		logging.Field{Key: logging.FieldDescription, Value: text})

	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(text, labels)))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	var answer strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			answer.WriteString(string(t))
		}
	}

	return parseCategoryAnswer(answer.String(), labels), nil
}

func buildPrompt(text string, labels []string) string {
	return fmt.Sprintf(`Categorize the following personal expense:
%s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`, text, strings.Join(labels, ", "))
}

// parseCategoryAnswer extracts the "Category:" line of a model answer. When
// the model ignored the format, the first label mentioned anywhere in the
// answer is used.
func parseCategoryAnswer(answer string, labels []string) string {
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Category:"); ok {
			return strings.TrimSpace(rest)
		}
	}

	lower := strings.ToLower(answer)
	for _, label := range labels {
		if strings.Contains(lower, strings.ToLower(label)) {
			return label
		}
	}
	return strings.TrimSpace(answer)
}
