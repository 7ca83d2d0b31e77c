package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig(t *testing.T, backend string) config.Config {
	return config.Config{
		Port:            "0",
		OpenAIKey:       "sk-test",
		OpenAIModel:     "gpt-4o-mini",
		OpenAIMaxTokens: 150,
		SpeechBackend:   backend,
		WhisperModel:    "base",
		WhisperPython:   "python3",
		TmpDir:          t.TempDir(),
	}
}

func TestNew_Routes(t *testing.T) {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	tests := []struct {
		name          string
		kind          Kind
		backend       string
		hasTranscribe bool
	}{
		{name: "analyzer", kind: Analyzer, backend: config.SpeechBackendLocal},
		{name: "transcriber local", kind: Transcriber, backend: config.SpeechBackendLocal, hasTranscribe: true},
		{name: "transcriber openai", kind: Transcriber, backend: config.SpeechBackendOpenAI, hasTranscribe: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(testConfig(t, tt.backend), tt.kind, zl)
			require.NoError(t, err)
			defer a.Close()

			rec := httptest.NewRecorder()
			a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "running")

			rec = httptest.NewRecorder()
			a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(`{}`)))
			if tt.hasTranscribe {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			} else {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			}

			rec = httptest.NewRecorder()
			a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("")))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestApp_Close_LogsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calls := 0
	a := &App{
		log: logger.NewZapLogger(zap.New(core).Sugar()),
		closers: []func() error{
			func() error { calls++; return errors.New("remove helper: permission denied") },
			func() error { calls++; return nil },
		},
	}

	a.Close()
	a.Close()

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, logs.Len())
}
