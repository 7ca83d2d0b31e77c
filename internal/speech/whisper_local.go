package speech

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	json "github.com/goccy/go-json"
)

//go:embed assets/whisper_translate.py
var whisperScript []byte

// LocalWhisper runs the whisper model through a python helper.
type LocalWhisper struct {
	python string
	model  string
	script string
}

// NewLocalWhisper writes the helper script into dir.
func NewLocalWhisper(python, model, dir string) (*LocalWhisper, error) {
	f, err := os.CreateTemp(dir, "whisper_translate_*.py")
	if err != nil {
		return nil, fmt.Errorf("write helper script: %w", err)
	}
	if _, err := f.Write(whisperScript); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write helper script: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &LocalWhisper{python: python, model: model, script: f.Name()}, nil
}

// Close removes the helper script.
func (w *LocalWhisper) Close() error {
	return os.Remove(w.script)
}

type helperOutput struct {
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

func (w *LocalWhisper) Translate(ctx context.Context, audioPath string) ([]Segment, error) {
	cmd := exec.CommandContext(ctx, w.python, w.script,
		"--audio", audioPath,
		"--model", w.model,
		"--task", "translate",
	)
	cmd.Env = os.Environ()

	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return nil, fmt.Errorf("whisper failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("run helper: %w", err)
	}

	var parsed helperOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("parse helper output: %w", err)
	}
	return parsed.Segments, nil
}
