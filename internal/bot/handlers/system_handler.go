package handlers

import (
	"context"

	"github.com/gptline/gptline/internal/line"
)

// NewSystemHandler returns the handler for the /系統訊息 command, which
// replaces the user's system message while keeping conversation history.
func NewSystemHandler(deps HandlerDeps) HandlerFunc {
	return func(ctx context.Context, userID, args string) []line.SendingMessage {
		deps.Logger.InfoContext(ctx, "System message changed", "user_id", userID)
		deps.Memory.ChangeSystemMessage(userID, args)
		return textReply(msgSystemAccepted)
	}
}

// NewClearHandler returns the handler for the /清除 command, which drops the
// user's conversation history.
func NewClearHandler(deps HandlerDeps) HandlerFunc {
	return func(ctx context.Context, userID, args string) []line.SendingMessage {
		deps.Logger.InfoContext(ctx, "Conversation cleared", "user_id", userID)
		deps.Memory.Remove(userID)
		return textReply(msgMemoryCleared)
	}
}
