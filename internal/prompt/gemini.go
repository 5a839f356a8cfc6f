package prompt

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type GeminiConfig struct {
	APIKey            string
	Model             string
	RequestsPerMinute int
	Burst             int
}

// GeminiModel submits prompts to the Gemini API and asks for JSON output
// constrained by the template's response schema.
type GeminiModel struct {
	client    *genai.Client
	modelName string
	limiter   *rate.Limiter
	log       logrus.FieldLogger
}

func NewGeminiModel(ctx context.Context, cfg GeminiConfig, log logrus.FieldLogger) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &GeminiModel{
		client:    client,
		modelName: modelName,
		limiter:   rate.NewLimiter(limit, burst),
		log:       log,
	}, nil
}

func (g *GeminiModel) Generate(ctx context.Context, req Request) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	g.log.WithFields(logrus.Fields{
		"template": req.Template,
		"model":    g.modelName,
	}).Debug("calling gemini")

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return resp.Text(), nil
}
