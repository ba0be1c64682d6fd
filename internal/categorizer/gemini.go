package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ranjeetkulkarni/ExpenseNinja/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient backs both external service boundaries (zero-shot
// classification and entity recognition) with the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a GeminiClient for the given API key and model
// name (e.g. "gemini-2.0-flash").
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Classify implements ZeroShotClassifier. The model is asked for the single
// best label from the candidate list; the response is parsed from a
// "Category:" line, with a substring scan as a fallback.
func (g *GeminiClient) Classify(ctx context.Context, text string, candidates []string) ([]string, error) {
	prompt := fmt.Sprintf(`Classify the following expense description:
%s

Please assign this expense to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		text,
		strings.Join(candidates, ", "))

	responseText, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	label := extractLabel(responseText, candidates)
	if label == "" {
		return nil, fmt.Errorf("no candidate label found in Gemini response")
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_classify"},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Gemini returned classification")

	return []string{label}, nil
}

// Entities implements EntityRecognizer. The model is asked for the named
// entities in the text, one per line.
func (g *GeminiClient) Entities(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf(`Extract the named entities (merchants, brands, products, places) from the following expense description:
%s

Respond with one entity per line and nothing else. If there are no entities, respond with an empty message.`,
		text)

	responseText, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var spans []string
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			spans = append(spans, line)
		}
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_entities"},
		logging.Field{Key: logging.FieldCount, Value: len(spans)},
	).Debug("Gemini returned entities")

	return spans, nil
}

// generate runs one prompt and returns the first candidate's text.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// extractLabel parses the "Category:" line from a model response. If no
// structured line is present, the first candidate mentioned anywhere in the
// response wins.
func extractLabel(response string, candidates []string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			label := strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			label = strings.Trim(label, "[]")
			for _, candidate := range candidates {
				if strings.EqualFold(label, candidate) {
					return candidate
				}
			}
		}
	}

	lower := strings.ToLower(response)
	for _, candidate := range candidates {
		if strings.Contains(lower, strings.ToLower(candidate)) {
			return candidate
		}
	}

	return ""
}
