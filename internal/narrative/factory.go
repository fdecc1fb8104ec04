package narrative

import (
	"context"

	"go.uber.org/zap"
)

type Config struct {
	APIKey string
	Model  string
}

// New returns a Gemini generator, or Unavailable when cfg carries no API key
// or the client cannot be created.
func New(ctx context.Context, cfg Config) Generator {
	if cfg.APIKey == "" {
		zap.S().Named("narrative").Infow("no API key configured, narratives disabled")
		return Unavailable{}
	}
	g, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		zap.S().Named("narrative").Warnw("failed to create narrative generator, narratives disabled", "error", err)
		return Unavailable{}
	}
	return g
}
