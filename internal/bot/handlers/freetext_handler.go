package handlers

import (
	"context"
	"log/slog"

	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/memory"
	"github.com/gptline/gptline/internal/openai"
	"github.com/gptline/gptline/internal/summarizer"
	"github.com/gptline/gptline/internal/website"
	"github.com/gptline/gptline/internal/youtube"
)

// NewFreeTextHandler returns the handler for text that matches no command.
// Messages containing a URL are summarized; everything else goes through the
// chat model with conversation memory.
func NewFreeTextHandler(deps HandlerDeps) HandlerFunc {
	return freeTextHandler{deps}.Handle
}

type freeTextHandler struct {
	deps HandlerDeps
}

func (h freeTextHandler) Handle(ctx context.Context, userID, text string) []line.SendingMessage {
	log := h.deps.Logger.With("handler", "free_text")

	model, ok := h.deps.Registry.Get(userID)
	if !ok {
		return textReply(msgUnregistered)
	}

	h.deps.Memory.Append(userID, memory.RoleUser, text)
	suffix := h.deps.Injector.Inject(text)

	if url := website.DetectURL(text); url != "" {
		return h.summarize(ctx, log, model, userID, url)
	}

	resp, err := model.ChatCompletions(ctx, h.deps.Memory.Get(userID), h.deps.Config.ModelEngine)
	if err != nil {
		log.ErrorContext(ctx, "Chat completion failed", "user_id", userID, "error", err)
		h.deps.Memory.Remove(userID)
		return upstreamReply(err)
	}

	role, content, err := openai.RoleAndContent(resp)
	if err != nil {
		log.ErrorContext(ctx, "Chat completion returned no choices", "user_id", userID)
		h.deps.Memory.Remove(userID)
		return upstreamReply(err)
	}

	h.deps.Memory.Append(userID, role, content)
	return textReply(content + suffix)
}

// summarize handles a URL-bearing message. A page that cannot be fetched is
// recoverable and keeps the conversation, while model failures drop it.
func (h freeTextHandler) summarize(ctx context.Context, log *slog.Logger, model openai.Model, userID, url string) []line.SendingMessage {
	var chunks []string
	var err error

	if videoID := youtube.RetrieveVideoID(url); videoID != "" {
		chunks, err = h.deps.Youtube.TranscriptChunks(ctx, videoID)
		if err != nil {
			log.ErrorContext(ctx, "Transcript retrieval failed", "user_id", userID, "url", url, "error", err)
			h.deps.Memory.Remove(userID)
			return upstreamReply(err)
		}
	} else {
		chunks, err = h.deps.Website.ContentChunks(ctx, url)
		if err != nil || len(chunks) == 0 {
			log.InfoContext(ctx, "Page has no readable text", "user_id", userID, "url", url, "error", err)
			return textReply(msgUnreadableSite)
		}
	}

	resp, err := summarizer.Summarize(ctx, model, h.deps.Config.ModelEngine, chunks)
	if err != nil {
		log.ErrorContext(ctx, "Summarization failed", "user_id", userID, "url", url, "error", err)
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
