package brief

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/adlens/campaign-brief-go/internal/config"
	"github.com/adlens/campaign-brief-go/internal/utils"
)

// Generator is the single operation the service needs from the external
// text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAI struct {
	client  *openai.Client
	model   string
	log     *slog.Logger
	bo      utils.Backoff
	timeout time.Duration
}

func NewOpenAI(cfg config.Config, log *slog.Logger) *OpenAI {
	return &OpenAI{
		client:  openai.NewClient(cfg.OpenAIKey),
		model:   cfg.OpenAIModel,
		log:     log,
		bo:      utils.NewBackoff(200*time.Millisecond, 2),
		timeout: cfg.OpenAITimeout,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a concise marketing analyst."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	}

	// intento inicial + MaxRetries reintentos, cada uno acotado por el timeout
	var lastErr error
	for i := 0; i <= o.bo.MaxRetries; i++ {
		resp, err := o.createCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("openai: empty choices")
			}
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err
		o.log.Warn("openai call failed", slog.Int("attempt", i+1), slog.String("err", err.Error()))
		if i == o.bo.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(o.bo.Delay(i)):
		}
	}
	return "", fmt.Errorf("openai: %w", lastErr)
}

func (o *OpenAI) createCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	return o.client.CreateChatCompletion(ctx, req)
}
