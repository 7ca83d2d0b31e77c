package app

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/ai"
	"github.com/Vovarama1992/lead_scout/internal/config"
	"github.com/Vovarama1992/lead_scout/internal/delivery"
	"github.com/Vovarama1992/lead_scout/internal/error_notificator"
	"github.com/Vovarama1992/lead_scout/internal/lead"
	"github.com/Vovarama1992/lead_scout/internal/media"
	"github.com/Vovarama1992/lead_scout/internal/speech"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Kind int

const (
	// Analyzer serves /analyze only.
	Analyzer Kind = iota
	// Transcriber serves /analyze and /transcribe.
	Transcriber
)

func (k Kind) Name() string {
	if k == Transcriber {
		return "transcriber"
	}
	return "lead_analyzer"
}

func (k Kind) liveness() string {
	if k == Transcriber {
		return "Lead analyzer and transcriber service is running"
	}
	return "Lead analyzer service is running"
}

type App struct {
	Handler http.Handler
	closers []func() error
	log     *logger.ZapLogger
}

// New builds the service graph for kind from cfg.
func New(cfg config.Config, kind Kind, zl *logger.ZapLogger) (*App, error) {
	a := &App{log: zl}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var notifyInfra error_notificator.Notificator
	if cfg.NotifyEnabled() {
		infra, err := error_notificator.NewInfra(cfg.TelegramToken, cfg.TelegramAdminChatID, kind.Name())
		if err != nil {
			return nil, err
		}
		notifyInfra = infra
	}
	errService := error_notificator.NewService(notifyInfra, zl)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIMaxTokens)
	leadService := lead.NewService(openAIClient, errService, zl)

	var hTranscribe *delivery.TranscribeHandler
	if kind == Transcriber {
		translator, err := newTranslator(cfg)
		if err != nil {
			return nil, err
		}
		if c, ok := translator.(interface{ Close() error }); ok {
			a.closers = append(a.closers, c.Close)
		}
		downloader := media.NewDownloader(cfg.TmpDir, cfg.DownloadTimeout, cfg.DownloadMaxBytes, zl)
		speechService := speech.NewService(downloader, translator, errService, zl)
		hTranscribe = delivery.NewTranscribeHandler(speechService, zl)
	}

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a.Handler = delivery.NewRouter(delivery.RouterOptions{
		Liveness:           kind.liveness(),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Metrics:            delivery.NewMetrics(kind.Name(), reg),
	}, delivery.NewAnalyzeHandler(leadService, zl), hTranscribe)

	return a, nil
}

func newTranslator(cfg config.Config) (speech.Translator, error) {
	switch cfg.SpeechBackend {
	case config.SpeechBackendOpenAI:
		return speech.NewOpenAIWhisper(cfg.OpenAIKey), nil
	case config.SpeechBackendLocal:
		return speech.NewLocalWhisper(cfg.WhisperPython, cfg.WhisperModel, cfg.TmpDir)
	}
	return nil, fmt.Errorf("unknown speech backend %q", cfg.SpeechBackend)
}

// Serve blocks until the server stops; SIGTERM and SIGINT trigger a graceful shutdown.
func (a *App) Serve(addr string, stdLog *log.Logger) error {
	defer a.Close()

	gracehttp.SetLogger(stdLog)
	return gracehttp.Serve(&http.Server{
		Addr:              addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	})
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Log(logger.LogEntry{Level: "warn", Message: "close failed", Error: err, Service: "app"})
		}
	}
	a.closers = nil
}
