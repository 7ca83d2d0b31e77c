package speech

import (
	"context"
	"errors"

	"github.com/Vovarama1992/lead_scout/internal/media"
)

var ErrMissingURL = errors.New("no URL provided")

// Segment is one recognized utterance, times in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Translator transcribes an audio file and translates it into English.
type Translator interface {
	Translate(ctx context.Context, audioPath string) ([]Segment, error)
}

type Downloader interface {
	Download(ctx context.Context, rawURL string) (*media.TempFile, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (string, error)
}
