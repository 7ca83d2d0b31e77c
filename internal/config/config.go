package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SpeechBackendLocal  = "local"
	SpeechBackendOpenAI = "openai"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	Port string

	OpenAIKey       string
	OpenAIModel     string
	OpenAIMaxTokens int

	SpeechBackend string
	WhisperModel  string
	WhisperPython string

	DownloadTimeout  time.Duration
	DownloadMaxBytes int64
	TmpDir           string

	RateLimitPerMinute int

	TelegramToken       string
	TelegramAdminChatID int64
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:          envOr("PORT", "8080"),
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		SpeechBackend: strings.ToLower(envOr("SPEECH_BACKEND", SpeechBackendLocal)),
		WhisperModel:  envOr("WHISPER_MODEL", "base"),
		WhisperPython: envOr("WHISPER_PYTHON", "python3"),
		TmpDir:        envOr("TMP_DIR", os.TempDir()),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.OpenAIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY not set")
	}

	var err error
	if cfg.OpenAIMaxTokens, err = envInt("OPENAI_MAX_TOKENS", 150); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", 0); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("DOWNLOAD_TIMEOUT"); v != "" {
		cfg.DownloadTimeout, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("DOWNLOAD_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("DOWNLOAD_MAX_BYTES"); v != "" {
		cfg.DownloadMaxBytes, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DOWNLOAD_MAX_BYTES: %w", err)
		}
	}
	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		cfg.TelegramAdminChatID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID: %w", err)
		}
	}

	switch cfg.SpeechBackend {
	case SpeechBackendLocal, SpeechBackendOpenAI:
	default:
		return Config{}, fmt.Errorf("unknown SPEECH_BACKEND %q", cfg.SpeechBackend)
	}

	return cfg, nil
}

// NotifyEnabled reports whether failure notifications can be sent to Telegram.
func (c Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramAdminChatID != 0
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
