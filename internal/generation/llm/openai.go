package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// OpenAI is the live Generator. It returns only the BRD markdown; the
// orchestrator derives the remaining analysis blocks.
type OpenAI struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

var _ generation.Generator = (*OpenAI)(nil)

// NewOpenAI builds the live client. rpm caps outgoing completion calls;
// rpm <= 0 disables the limiter.
func NewOpenAI(apiKey, model string, rpm int) *OpenAI {
	var limiter *rate.Limiter
	if rpm > 0 {
		limiter = rate.NewLimiter(rate.Limit(rpm)/60.0, 1)
	}
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		limiter: limiter,
	}
}

func (o *OpenAI) Generate(ctx context.Context, intake domain.Intake, references []string) (*generation.Result, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(intake, references)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion: empty response")
	}

	return &generation.Result{BRDMarkdown: resp.Choices[0].Message.Content}, nil
}
