package error_notificator

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
)

type Service struct {
	infra Notificator
	log   *logger.ZapLogger
}

// NewService wraps infra; a nil infra only logs.
func NewService(infra Notificator, log *logger.ZapLogger) *Service {
	return &Service{infra: infra, log: log}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	s.log.Log(logger.LogEntry{
		Level:   "error",
		Message: details,
		Error:   err,
		Service: "error_notificator",
	})
	if s.infra == nil {
		return nil
	}
	if sendErr := s.infra.Notify(ctx, err, details); sendErr != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "failed to deliver error notification",
			Error:   sendErr,
			Service: "error_notificator",
		})
		return sendErr
	}
	return nil
}
