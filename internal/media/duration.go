package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/tcolgate/mp3"
)

// Duration estimates the playing time of an audio file.
func Duration(path string) (time.Duration, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wavDuration(path)
	case ".mp3":
		return mp3Duration(path)
	}
	return probeDuration(path)
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return 0, fmt.Errorf("invalid wav file")
	}
	if err := d.FwdToPCM(); err != nil {
		return 0, err
	}

	bytesPerSec := int64(d.SampleRate) * int64(d.NumChans) * int64(d.BitDepth) / 8
	if bytesPerSec == 0 {
		return 0, fmt.Errorf("invalid wav format")
	}
	return time.Duration(d.PCMLen() * int64(time.Second) / bytesPerSec), nil
}

func mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		d       = mp3.NewDecoder(f)
		frame   mp3.Frame
		skipped int
		total   time.Duration
		frames  int
	)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
		frames++
	}
	if frames == 0 {
		return 0, fmt.Errorf("no mp3 frames")
	}
	return total, nil
}

func probeDuration(path string) (time.Duration, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, err
	}

	sec, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(sec * float64(time.Second)), nil
}
