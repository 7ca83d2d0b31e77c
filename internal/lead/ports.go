package lead

import (
	"context"
	"errors"
)

var (
	ErrEmptyTranscript = errors.New("empty transcript")
	ErrUnparseable     = errors.New("could not parse model output")
)

// Verdict is the classification of one transcript.
type Verdict struct {
	Possibility bool   `json:"possibility"`
	Reason      string `json:"reason"`
}

type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (Verdict, error)
}
