// Package ingestion reads job descriptions for keyword matching. A description can
// come from a text or HTML file, standard input, or a job board URL.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// StdinSource is the source name that reads the description from standard input.
const StdinSource = "-"

// DefaultTimeout bounds HTTP fetches and browser rendering.
const DefaultTimeout = 30 * time.Second

const userAgent = "Mozilla/5.0 (compatible; ResumeStudio/1.0)"

// Loader turns a job description source into clean text.
type Loader struct {
	client *http.Client
	stdin  io.Reader
	render RenderFunc
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithStdin replaces standard input.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithRenderer enables the browser fallback for pages whose static HTML carries too
// little text.
func WithRenderer(render RenderFunc) Option {
	return func(l *Loader) { l.render = render }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader reading URLs over plain HTTP with no browser fallback.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: DefaultTimeout},
		stdin:  os.Stdin,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the cleaned description from source: "-" for stdin, an http(s) URL,
// or a file path. Files ending in .html or .htm are treated as HTML. An empty
// source yields empty text, meaning no description was supplied.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	switch {
	case source == "":
		return "", nil
	case source == StdinSource:
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", &ReadError{Source: "stdin", Message: "failed to read", Cause: err}
		}
		return CleanText(string(data)), nil
	case isURL(source):
		return l.loadURL(ctx, source)
	default:
		return l.loadFile(source)
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (l *Loader) loadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ReadError{Source: path, Message: "file not found", Cause: err}
		}
		return "", &ReadError{Source: path, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractText(string(data), postingSelectors, noiseSelectors)
		if err != nil {
			return "", &ReadError{Source: path, Message: "content extraction failed", Cause: err}
		}
		return CleanText(text), nil
	default:
		return CleanText(string(data)), nil
	}
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (string, error) {
	board := DetectBoard(rawURL)
	l.logger.Debug("fetching job posting", zap.String("url", rawURL), zap.String("board", string(board)))

	html, err := l.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	selectors, noise := ContentSelectors(board), NoiseSelectors(board)
	text, err := ExtractText(html, selectors, noise)
	if err != nil {
		return "", &ReadError{Source: rawURL, Message: "content extraction failed", Cause: err}
	}

	if l.render != nil && needsBrowser(text) {
		l.logger.Debug("static page too thin, rendering in browser", zap.Int("chars", len(text)))
		rendered, renderErr := l.render(ctx, rawURL)
		if renderErr != nil {
			l.logger.Warn("browser rendering failed, keeping static text", zap.Error(renderErr))
		} else if richer, extractErr := ExtractText(rendered, selectors, noise); extractErr == nil {
			text = richer
		}
	}
	return CleanText(text), nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &ReadError{Source: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", &ReadError{Source: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &ReadError{Source: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ReadError{Source: rawURL, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}
