package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIChat is the production ChatCompleter: one chat-completions call
// against the fine-tuned model, bounded by a per-request timeout.
type OpenAIChat struct {
	client openai.Client
	cfg    Config
}

func NewOpenAIChat(apiKey string, cfg Config, timeout time.Duration) *OpenAIChat {
	cfg.applyDefaults()
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	)
	return &OpenAIChat{client: client, cfg: cfg}
}

func (o *OpenAIChat) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(o.cfg.Temperature),
		MaxTokens:   openai.Int(int64(o.cfg.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion: no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}
