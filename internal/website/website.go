// Package website extracts the readable text of a web page and slices it
// into chunks small enough to summarize.
package website

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

var urlPattern = regexp.MustCompile(`https?://[^\s)<>]+`)

// DetectURL returns the first http(s) URL found in text, or the empty string.
func DetectURL(text string) string {
	return urlPattern.FindString(text)
}

const defaultChunkSize = 1500

// Website fetches pages and extracts their readable text.
type Website struct {
	httpClient *http.Client
	chunkSize  int
	logger     *slog.Logger
}

// New creates a fetcher whose requests time out after timeout.
func New(timeout time.Duration, logger *slog.Logger) *Website {
	return &Website{
		httpClient: &http.Client{Timeout: timeout},
		chunkSize:  defaultChunkSize,
		logger:     logger,
	}
}

// ContentChunks fetches rawURL, extracts the article text, and returns it in
// chunks of at most chunkSize runes. A page with no extractable text yields
// zero chunks and no error.
func (w *Website) ContentChunks(ctx context.Context, rawURL string) ([]string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %s", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; gptline/1.0)")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching %s: %s", rawURL, resp.Status)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		w.logger.DebugContext(ctx, "page has no readable text", "url", rawURL)
		return nil, nil
	}

	return chunkText(text, w.chunkSize), nil
}

// chunkText splits text into pieces of at most size runes.
func chunkText(text string, size int) []string {
	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
