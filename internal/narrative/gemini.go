package narrative

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

const systemInstruction = "You are a senior healthcare policy advisor with deep experience in workforce planning for India. " +
	"Provide evidence-based, practical recommendations with implementation steps, cost estimates and measurable outcomes."

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator calls Google Gemini through the genai SDK.
type GeminiGenerator struct {
	models  contentGenerator
	model   string
	prompts *Prompts
}

// NewGeminiGenerator creates a client for the Gemini API. An empty model
// selects DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingCredentials
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGeminiGenerator(client.Models, model), nil
}

func newGeminiGenerator(models contentGenerator, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{
		models:  models,
		model:   model,
		prompts: MustPrompts(),
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	prompt, err := g.prompts.Render(req)
	if err != nil {
		return "", err
	}

	zap.S().Named("narrative").Debugw("calling model", "model", g.model, "kind", req.Kind, "prompt_bytes", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrRemoteService, g.model)
	}
	return text, nil
}
