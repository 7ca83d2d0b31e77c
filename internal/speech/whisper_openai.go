package speech

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIWhisper uses the hosted translations endpoint.
type OpenAIWhisper struct {
	client *openai.Client
	model  string
}

func NewOpenAIWhisper(apiKey string) *OpenAIWhisper {
	return &OpenAIWhisper{client: openai.NewClient(apiKey), model: openai.Whisper1}
}

func NewOpenAIWhisperWithBaseURL(apiKey, baseURL string) *OpenAIWhisper {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAIWhisper{client: openai.NewClientWithConfig(cfg), model: openai.Whisper1}
}

func (w *OpenAIWhisper) Translate(ctx context.Context, audioPath string) ([]Segment, error) {
	resp, err := w.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai translation: %w", err)
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, Segment{Start: s.Start, End: s.End, Text: s.Text})
	}
	return segments, nil
}
