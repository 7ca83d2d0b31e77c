package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/lead_scout/internal/speech"
	json "github.com/goccy/go-json"
)

type TranscribeHandler struct {
	transcriber speech.Transcriber
	log         *logger.ZapLogger
}

func NewTranscribeHandler(transcriber speech.Transcriber, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{transcriber: transcriber, log: log}
}

type transcribeRequest struct {
	URL string `json:"url"`
}

type transcribeResponse struct {
	Transcription string `json:"transcription_with_timestamps"`
}

func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, speech.ErrMissingURL) {
			writeError(w, http.StatusBadRequest, "No URL provided")
			return
		}
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcribe failed", Error: err, Service: "delivery"})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Transcription: text})
}
