package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const chunkSize = 8192

var ErrTooLarge = errors.New("audio file exceeds size limit")

// TempFile is a downloaded file owned by one request.
type TempFile struct {
	Path string
	Size int64
}

// Remove deletes the file; safe to call more than once.
func (f *TempFile) Remove() error {
	if f == nil || f.Path == "" {
		return nil
	}
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type Downloader struct {
	client   *http.Client
	dir      string
	maxBytes int64
	log      *logger.ZapLogger
}

// NewDownloader stores files in dir. Zero timeout or maxBytes means no limit.
func NewDownloader(dir string, timeout time.Duration, maxBytes int64, log *logger.ZapLogger) *Downloader {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Downloader{
		client:   &http.Client{Timeout: timeout},
		dir:      dir,
		maxBytes: maxBytes,
		log:      log,
	}
}

// Download streams rawURL into a uniquely named file that keeps the URL's extension.
func (d *Downloader) Download(ctx context.Context, rawURL string) (*TempFile, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}

	tf := &TempFile{Path: filepath.Join(d.dir, uuid.NewString()+Ext(u))}
	out, err := os.Create(tf.Path)
	if err != nil {
		return nil, fmt.Errorf("create tmp: %w", err)
	}

	tf.Size, err = d.copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = tf.Remove()
		return nil, fmt.Errorf("save tmp: %w", err)
	}

	d.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[download] %s -> %s (%s)", u.Redacted(), tf.Path, humanize.Bytes(uint64(tf.Size))),
		Service: "media",
	})
	return tf, nil
}

func (d *Downloader) copy(dst io.Writer, src io.Reader) (int64, error) {
	if d.maxBytes > 0 {
		src = io.LimitReader(src, d.maxBytes+1)
	}
	// plain wrappers keep ReaderFrom/WriterTo from bypassing the chunk buffer
	n, err := io.CopyBuffer(struct{ io.Writer }{dst}, struct{ io.Reader }{src}, make([]byte, chunkSize))
	if err != nil {
		return n, err
	}
	if d.maxBytes > 0 && n > d.maxBytes {
		return n, fmt.Errorf("%w (%s)", ErrTooLarge, humanize.Bytes(uint64(d.maxBytes)))
	}
	return n, nil
}

// Ext returns the extension of the last path segment of u, e.g. ".mp3".
func Ext(u *url.URL) string {
	return path.Ext(path.Base(u.Path))
}
