// Package loader reads descriptor text from a file, stdin or an HTTP endpoint.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-shard/internal/config"
)

// Stdin is the source name that reads standard input.
const Stdin = "-"

// ErrTooLarge is returned when a descriptor exceeds the configured size.
var ErrTooLarge = errors.New("loader: descriptor exceeds size limit")

// StatusError reports a non-200 response from a descriptor endpoint.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("loader: GET %s returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Loader fetches descriptors.
type Loader struct {
	client   *http.Client
	stdin    io.Reader
	timeout  time.Duration
	maxBytes int64
	accept   string
	log      *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithStdin replaces the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.log = logger
	}
}

// New creates a Loader bounded by cfg.
func New(cfg config.LoaderConfig, opts ...Option) *Loader {
	l := &Loader{
		client:   http.DefaultClient,
		stdin:    os.Stdin,
		timeout:  cfg.Timeout,
		maxBytes: cfg.MaxBytes,
		accept:   cfg.Accept,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the descriptor text named by source: "-" for stdin, an
// http(s) URL, or a file path.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	switch {
	case source == Stdin:
		return l.read(l.stdin, "stdin")
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.fetch(ctx, source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return "", fmt.Errorf("loader: %w", err)
		}
		defer f.Close()
		return l.read(f, source)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("loader: %w", err)
	}
	if l.accept != "" {
		req.Header.Set("Accept", l.accept)
	}

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("loader: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	l.log.Debug("fetched descriptor",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}
	return l.read(resp.Body, url)
}

// read consumes r up to the size limit.
func (l *Loader) read(r io.Reader, name string) (string, error) {
	if l.maxBytes > 0 {
		r = io.LimitReader(r, l.maxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("loader: read %s: %w", name, err)
	}
	if l.maxBytes > 0 && int64(len(b)) > l.maxBytes {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, name, l.maxBytes)
	}
	return string(b), nil
}
