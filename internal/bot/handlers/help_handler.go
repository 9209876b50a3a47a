package handlers

import (
	"context"

	"github.com/gptline/gptline/internal/line"
)

// NewHelpHandler returns the handler for the /指令說明 command.
func NewHelpHandler(deps HandlerDeps) HandlerFunc {
	return func(ctx context.Context, userID, args string) []line.SendingMessage {
		deps.Logger.DebugContext(ctx, "Handling help command", "user_id", userID)
		return textReply(helpText)
	}
}

// NewCannedHandler returns a handler that always replies with text,
// used for the rich-menu prompts with fixed answers.
func NewCannedHandler(deps HandlerDeps, name, text string) HandlerFunc {
	return func(ctx context.Context, userID, args string) []line.SendingMessage {
		deps.Logger.DebugContext(ctx, "Handling canned prompt", "handler", name, "user_id", userID)
		return textReply(text)
	}
}
