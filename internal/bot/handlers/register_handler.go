package handlers

import (
	"context"

	"github.com/gptline/gptline/internal/line"
)

// NewRegisterHandler returns the handler for the /註冊 command, which
// validates the supplied API key and installs a model client for the user.
func NewRegisterHandler(deps HandlerDeps) HandlerFunc {
	return registerHandler{deps}.Handle
}

type registerHandler struct {
	deps HandlerDeps
}

func (h registerHandler) Handle(ctx context.Context, userID, args string) []line.SendingMessage {
	log := h.deps.Logger.With("handler", "register")

	model := h.deps.NewModel(args)
	if err := model.CheckTokenValid(ctx); err != nil {
		log.InfoContext(ctx, "Rejected invalid API token", "user_id", userID, "error", err)
		return textReply(msgTokenInvalid)
	}

	h.deps.Registry.Set(userID, model)

	if err := h.deps.Store.Save(ctx, map[string]string{userID: args}); err != nil {
		log.ErrorContext(ctx, "Failed to persist API token", "user_id", userID, "error", err)
		return textReply(err.Error())
	}

	log.InfoContext(ctx, "User registered", "user_id", userID)
	return textReply(msgRegisterSuccess)
}
