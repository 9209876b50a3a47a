// Package handlers contains the command and message handlers for incoming
// webhook events, along with their registration and dispatch logic.
package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/gptline/gptline/internal/config"
	"github.com/gptline/gptline/internal/keyword"
	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
	"github.com/gptline/gptline/internal/registry"
	"github.com/gptline/gptline/internal/storage"
)

// URLReader extracts the readable text of a web page as chunks.
type URLReader interface {
	ContentChunks(ctx context.Context, rawURL string) ([]string, error)
}

// TranscriptReader fetches a video transcript as chunks.
type TranscriptReader interface {
	TranscriptChunks(ctx context.Context, videoID string) ([]string, error)
}

// ContentProvider downloads message attachments, such as audio clips.
type ContentProvider interface {
	GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error)
}

// HandlerDeps bundles the dependencies required by message handlers.
// A single instance is created at startup and shared by all handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Memory   *memory.Memory
	Registry *registry.Registry
	Store    storage.Store
	Injector *keyword.Injector
	Website  URLReader
	Youtube  TranscriptReader
	Line     ContentProvider

	// AudioDir is the directory for temporary audio clips. The cleanup task
	// sweeps the same directory, so it must not hold unrelated files.
	AudioDir string

	// NewModel builds a model client from a user-supplied API key.
	NewModel func(apiKey string) openai.Model
}

// HandlerFunc processes one command or message and returns the reply
// messages, which may be empty when there is nothing to send.
type HandlerFunc func(ctx context.Context, userID, text string) []line.SendingMessage

func textReply(text string) []line.SendingMessage {
	return []line.SendingMessage{line.NewTextMessage(text)}
}
