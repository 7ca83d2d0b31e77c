package delivery

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/lead"
)

type AnalyzeHandler struct {
	analyzer lead.Analyzer
	log      *logger.ZapLogger
}

func NewAnalyzeHandler(analyzer lead.Analyzer, log *logger.ZapLogger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, log: log}
}

// Analyze takes the raw transcript as the request body.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
		return
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		writeError(w, http.StatusBadRequest, "Empty request body")
		return
	}

	v, err := h.analyzer.Analyze(r.Context(), text)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, v)
	case errors.Is(err, lead.ErrEmptyTranscript):
		writeError(w, http.StatusBadRequest, "Empty request body")
	case errors.Is(err, lead.ErrUnparseable):
		writeError(w, http.StatusInternalServerError, "Could not parse model output")
	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "analyze failed", Error: err, Service: "delivery"})
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
