package generation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig configures the Gemini-backed text generator. APIKey is
// mandatory; Timeout bounds each underlying HTTP call and is the only timeout
// in the pipeline.
type GeminiConfig struct {
	APIKey  string
	Timeout time.Duration
}

// GeminiGenerator calls the Gemini API with a JSON response directive and the
// declared output schema.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{client: client}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
		Temperature:      genai.Ptr(req.Temperature),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model returned an empty response")
	}

	return text, nil
}
