package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Completer sends a chat completion request and returns the reply text.
type Completer interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}
