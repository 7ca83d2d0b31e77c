package speech

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/error_notificator"
	"github.com/Vovarama1992/lead_scout/internal/media"
)

type Service struct {
	downloader Downloader
	translator Translator
	notifier   error_notificator.Notificator
	log        *logger.ZapLogger
}

func NewService(
	downloader Downloader,
	translator Translator,
	notifier error_notificator.Notificator,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		downloader: downloader,
		translator: translator,
		notifier:   notifier,
		log:        log,
	}
}

// Transcribe downloads the audio at audioURL and returns its English text with timestamps.
func (s *Service) Transcribe(ctx context.Context, audioURL string) (string, error) {
	audioURL = strings.TrimSpace(audioURL)
	if audioURL == "" {
		return "", ErrMissingURL
	}

	start := time.Now()

	file, err := s.downloader.Download(ctx, audioURL)
	if err != nil {
		_ = s.notifier.Notify(ctx, err, "transcribe: download "+redactURL(audioURL))
		return "", err
	}
	defer func() {
		if err := file.Remove(); err != nil {
			s.warn("remove tmp "+file.Path, err)
		}
	}()

	if d, err := media.Duration(file.Path); err == nil {
		s.info(fmt.Sprintf("[speech] audio duration %s", d.Round(time.Second)))
	}

	segments, err := s.translator.Translate(ctx, file.Path)
	if err != nil {
		_ = s.notifier.Notify(ctx, err, "transcribe: model "+redactURL(audioURL))
		return "", err
	}

	s.info(fmt.Sprintf("[speech][%.1fs] %d segments", time.Since(start).Seconds(), len(segments)))
	return FormatSegments(segments), nil
}

// redactURL drops credentials, query and fragment, which may carry signed tokens.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery, u.ForceQuery, u.Fragment, u.RawFragment = "", false, "", ""
	return u.Redacted()
}

func (s *Service) info(msg string) {
	s.log.Log(logger.LogEntry{Level: "info", Message: msg, Service: "speech"})
}

func (s *Service) warn(msg string, err error) {
	s.log.Log(logger.LogEntry{Level: "warn", Message: msg, Error: err, Service: "speech"})
}
