package app

import (
	"log"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/config"
	"go.uber.org/zap"
)

// Run loads configuration from the environment and serves kind until shutdown.
func Run(kind Kind) {

	// =========================================================================
	// ENV / LOGGER INIT
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	a, err := New(cfg, kind, zl)
	if err != nil {
		log.Fatalf("failed to init %s: %v", kind.Name(), err)
	}

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr + " speech=" + cfg.SpeechBackend,
		Service: kind.Name(),
	})

	if err := a.Serve(addr, zap.NewStdLog(baseLogger)); err != nil {
		zl.Log(logger.LogEntry{Level: "error", Message: "server error", Error: err, Service: kind.Name()})
	}
}
