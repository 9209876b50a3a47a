// Package tasks implements the scheduled background tasks of the bot.
package tasks

import (
	"log/slog"

	"github.com/gptline/gptline/internal/storage"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  storage.Store

	// AudioDir is the temporary audio directory shared with the audio
	// handler; the cleanup task only ever touches this directory.
	AudioDir string
}
