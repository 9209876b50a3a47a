package website

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDetectURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare url", "https://example.com/post", "https://example.com/post"},
		{"url inside text", "幫我總結 https://example.com/a?id=1 這篇", "https://example.com/a?id=1"},
		{"http scheme", "see http://example.com", "http://example.com"},
		{"no url", "今天天氣真好", ""},
		{"scheme only elsewhere", "https not a link", ""},
		{"stops at closing paren", "(https://example.com/x) 後面", "https://example.com/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectURL(tt.text); got != tt.want {
				t.Errorf("DetectURL(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestChunkText(t *testing.T) {
	chunks := chunkText(strings.Repeat("字", 3200), 1500)
	if len(chunks) != 3 {
		t.Fatalf("chunkText() returned %d chunks, want 3", len(chunks))
	}
	if n := len([]rune(chunks[0])); n != 1500 {
		t.Errorf("first chunk has %d runes, want 1500", n)
	}
	if n := len([]rune(chunks[2])); n != 200 {
		t.Errorf("last chunk has %d runes, want 200", n)
	}
}

func TestContentChunks(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>Test Article</title></head>
<body><article>
<h1>Test Article</h1>
<p>` + strings.Repeat("This is the body of the article. ", 40) + `</p>
</article></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page)) //nolint:errcheck
	}))
	defer srv.Close()

	ws := New(5*time.Second, slog.Default())
	chunks, err := ws.ContentChunks(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ContentChunks() error = %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("ContentChunks() returned no chunks")
	}
	if !strings.Contains(chunks[0], "body of the article") {
		t.Errorf("first chunk %q does not contain article text", chunks[0][:80])
	}
}

func TestContentChunksEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><head></head><body></body></html>")) //nolint:errcheck
	}))
	defer srv.Close()

	ws := New(5*time.Second, slog.Default())
	chunks, err := ws.ContentChunks(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ContentChunks() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("ContentChunks() = %v, want no chunks", chunks)
	}
}

func TestContentChunksBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	ws := New(5*time.Second, slog.Default())
	if _, err := ws.ContentChunks(context.Background(), srv.URL); err == nil {
		t.Fatal("ContentChunks() error = nil, want error on 404")
	}
}
