package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type RouterOptions struct {
	// Liveness is the text served on GET /.
	Liveness           string
	RateLimitPerMinute int
	Metrics            *Metrics
}

// NewRouter wires the HTTP surface. A nil transcribe handler leaves /transcribe unregistered.
func NewRouter(opts RouterOptions, hAnalyze *AnalyzeHandler, hTranscribe *TranscribeHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(opts.Liveness))
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)
		if opts.RateLimitPerMinute > 0 {
			pr.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
		}

		pr.Post("/analyze", hAnalyze.Analyze)
		if hTranscribe != nil {
			pr.Post("/transcribe", hTranscribe.Transcribe)
		}
	})

	return r
}
