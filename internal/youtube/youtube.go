// Package youtube fetches video transcripts by scraping the caption track
// metadata embedded in the watch page.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:[^\s]*&)?v=|embed/|shorts/|live/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// RetrieveVideoID extracts the 11-character video id from a YouTube URL, or
// returns the empty string when rawURL is not a recognizable video link.
func RetrieveVideoID(rawURL string) string {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

var captionTracksPattern = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

type captionTrack struct {
	BaseURL string `json:"baseUrl"`
}

type timedText struct {
	Entries []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
}

const defaultStep = 4

// Youtube retrieves transcripts for videos that carry caption tracks.
type Youtube struct {
	httpClient *http.Client
	baseURL    string
	step       int
	logger     *slog.Logger
}

// New creates a transcript fetcher grouping step caption entries per chunk.
func New(step int, timeout time.Duration, logger *slog.Logger) *Youtube {
	if step < 1 {
		step = defaultStep
	}
	return &Youtube{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://www.youtube.com",
		step:       step,
		logger:     logger,
	}
}

// TranscriptChunks downloads the first caption track of videoID and returns
// the transcript grouped into chunks of step entries. Videos without caption
// tracks return an error.
func (y *Youtube) TranscriptChunks(ctx context.Context, videoID string) ([]string, error) {
	page, err := y.get(ctx, y.baseURL+"/watch?v="+videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}

	m := captionTracksPattern.FindSubmatch(page)
	if m == nil {
		return nil, fmt.Errorf("no caption tracks found for video %s", videoID)
	}

	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return nil, fmt.Errorf("failed to decode caption tracks: %w", err)
	}
	if len(tracks) == 0 || tracks[0].BaseURL == "" {
		return nil, fmt.Errorf("empty caption track list for video %s", videoID)
	}

	raw, err := y.get(ctx, tracks[0].BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caption track: %w", err)
	}

	var transcript timedText
	if err := xml.Unmarshal(raw, &transcript); err != nil {
		return nil, fmt.Errorf("failed to decode caption track: %w", err)
	}

	lines := make([]string, 0, len(transcript.Entries))
	for _, entry := range transcript.Entries {
		text := strings.TrimSpace(html.UnescapeString(entry.Text))
		if text != "" {
			lines = append(lines, text)
		}
	}

	chunks := make([]string, 0, (len(lines)+y.step-1)/y.step)
	for start := 0; start < len(lines); start += y.step {
		end := start + y.step
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, strings.Join(lines[start:end], " "))
	}

	y.logger.DebugContext(ctx, "transcript retrieved",
		"video_id", videoID, "entries", len(lines), "chunks", len(chunks))
	return chunks, nil
}

func (y *Youtube) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
