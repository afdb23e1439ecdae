package advisory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resident_service/internal/usecase/interfaces"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.0-flash-001"

	systemPrompt = "You are a concise assistant for an apartment building maintenance desk."
)

var ErrMissingAPIKey = errors.New("missing ADVISORY_API_KEY")

// chatCompleter is the part of *openai.Client the gateway uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Mock    bool
}

// OpenAIGateway is an AdvisoryClient backed by any OpenAI-compatible chat
// completion endpoint. In mock mode it answers locally with canned text.
type OpenAIGateway struct {
	client   chatCompleter
	model    string
	mockMode bool
}

var _ interfaces.IAdvisoryClient = (*OpenAIGateway)(nil)

func NewOpenAIGateway(opts Options) (*OpenAIGateway, error) {
	if opts.Mock {
		zap.L().Info("[advisory][gateway] mock mode enabled")
		return &OpenAIGateway{mockMode: true}, nil
	}

	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		zap.L().Warn("[advisory][gateway] missing ADVISORY_API_KEY")
		return nil, ErrMissingAPIKey
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}

	zap.L().Info("[advisory][gateway] client initialized", zap.String("base_url", cfg.BaseURL), zap.String("model", model))
	return &OpenAIGateway{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// Generate sends one chat completion. Any transport or provider failure is
// wrapped in ErrAdvisoryUnavailable; an answer without choices is "".
func (g *OpenAIGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.mockMode {
		return mockReply(prompt), nil
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		zap.L().Warn("[advisory][gateway] completion failed", zap.String("model", g.model), zap.Error(err))
		return "", fmt.Errorf("%w: %w", interfaces.ErrAdvisoryUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		zap.L().Debug("[advisory][gateway] completion returned no choices", zap.String("model", g.model))
		return "", nil
	}
	zap.L().Debug("[advisory][gateway] completion received", zap.String("finish_reason", string(resp.Choices[0].FinishReason)))
	return resp.Choices[0].Message.Content, nil
}

func mockReply(prompt string) string {
	if strings.Contains(prompt, "troubleshooting steps") {
		return "1. Check that the appliance has power.\n2. Look for anything blocking doors, vents or drains.\n3. Leave it off until the technician arrives if you notice water, sparks or a gas smell."
	}
	return "Inspect seals, hoses and fuses"
}
