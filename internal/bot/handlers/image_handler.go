package handlers

import (
	"context"

	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/memory"
)

// NewImageHandler returns the handler for the /圖像 command, which generates
// an image from the prompt and records the exchange in memory.
func NewImageHandler(deps HandlerDeps) HandlerFunc {
	return imageHandler{deps}.Handle
}

type imageHandler struct {
	deps HandlerDeps
}

func (h imageHandler) Handle(ctx context.Context, userID, prompt string) []line.SendingMessage {
	log := h.deps.Logger.With("handler", "image")

	model, ok := h.deps.Registry.Get(userID)
	if !ok {
		return textReply(msgUnregistered)
	}

	h.deps.Memory.Append(userID, memory.RoleUser, prompt)

	resp, err := model.ImageGenerations(ctx, prompt)
	if err != nil {
		log.ErrorContext(ctx, "Image generation failed", "user_id", userID, "error", err)
		return upstreamReply(err)
	}
	if len(resp.Data) == 0 {
		log.ErrorContext(ctx, "Image generation returned no data", "user_id", userID)
		return textReply(msgOverloaded)
	}

	url := resp.Data[0].URL
	h.deps.Memory.Append(userID, memory.RoleAssistant, url)

	log.InfoContext(ctx, "Image generated", "user_id", userID)
	return []line.SendingMessage{line.NewImageMessage(url, url)}
}
