package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/ai"
	"github.com/Vovarama1992/lead_scout/internal/error_notificator"
	openai "github.com/sashabaranov/go-openai"
)

type Service struct {
	completer ai.Completer
	notifier  error_notificator.Notificator
	log       *logger.ZapLogger
}

func NewService(completer ai.Completer, notifier error_notificator.Notificator, log *logger.ZapLogger) *Service {
	return &Service{
		completer: completer,
		notifier:  notifier,
		log:       log,
	}
}

func (s *Service) Analyze(ctx context.Context, transcript string) (Verdict, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return Verdict{}, ErrEmptyTranscript
	}

	start := time.Now()
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(transcript)},
	}

	output, err := s.completer.GetCompletion(ctx, messages)
	if err != nil {
		_ = s.notifier.Notify(ctx, err, fmt.Sprintf("lead analysis: completion failed (%d chars)", len(transcript)))
		return Verdict{}, fmt.Errorf("completion: %w", err)
	}

	v, err := ParseVerdict(output)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("unparseable model output: %q", output),
			Error:   err,
			Service: "lead",
		})
		return Verdict{}, err
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[lead][%.1fs] possibility=%t", time.Since(start).Seconds(), v.Possibility),
		Service: "lead",
	})
	return v, nil
}
