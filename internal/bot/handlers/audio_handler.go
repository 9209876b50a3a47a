package handlers

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	gopenai "github.com/sashabaranov/go-openai"

	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
)

// NewAudioHandler returns the handler for audio messages: the clip is
// transcribed with Whisper and the transcript answered by the chat model.
func NewAudioHandler(deps HandlerDeps) HandlerFunc {
	return audioHandler{deps}.Handle
}

type audioHandler struct {
	deps HandlerDeps
}

func (h audioHandler) Handle(ctx context.Context, userID, messageID string) []line.SendingMessage {
	log := h.deps.Logger.With("handler", "audio")

	model, ok := h.deps.Registry.Get(userID)
	if !ok {
		return textReply(msgAudioUnregistered)
	}

	path, err := h.downloadClip(ctx, messageID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to download audio clip", "user_id", userID, "message_id", messageID, "error", err)
		return upstreamReply(err)
	}
	defer os.Remove(path)

	transcription, err := model.AudioTranscriptions(ctx, path, gopenai.Whisper1)
	if err != nil {
		log.ErrorContext(ctx, "Transcription failed", "user_id", userID, "error", err)
		h.deps.Memory.Remove(userID)
		return upstreamReply(err)
	}

	h.deps.Memory.Append(userID, memory.RoleUser, transcription.Text)

	resp, err := model.ChatCompletions(ctx, h.deps.Memory.Get(userID), gopenai.GPT3Dot5Turbo)
	if err != nil {
		log.ErrorContext(ctx, "Chat completion failed", "user_id", userID, "error", err)
		h.deps.Memory.Remove(userID)
		return upstreamReply(err)
	}

	role, content, err := openai.RoleAndContent(resp)
	if err != nil {
		h.deps.Memory.Remove(userID)
		return upstreamReply(err)
	}

	h.deps.Memory.Append(userID, role, content)
	return textReply(content)
}

// downloadClip saves the audio attachment to a temporary m4a file and
// returns its path. The caller removes the file.
func (h audioHandler) downloadClip(ctx context.Context, messageID string) (string, error) {
	body, err := h.deps.Line.GetMessageContent(ctx, messageID)
	if err != nil {
		return "", err
	}
	defer body.Close()

	dir := h.deps.AudioDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	path := filepath.Join(dir, uuid.NewString()+".m4a")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
