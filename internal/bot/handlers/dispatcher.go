package handlers

import (
	"context"
	"strings"

	"github.com/gptline/gptline/internal/line"
)

// Dispatcher routes webhook events to the matching handler.
type Dispatcher struct {
	deps     HandlerDeps
	commands []Command
	freeText HandlerFunc
	audio    HandlerFunc
}

// NewDispatcher builds a dispatcher with all commands registered.
func NewDispatcher(deps HandlerDeps) *Dispatcher {
	return &Dispatcher{
		deps:     deps,
		commands: RegisterAllCommands(deps),
		freeText: NewFreeTextHandler(deps),
		audio:    NewAudioHandler(deps),
	}
}

// HandleEvent processes one webhook event and returns the reply messages.
// Events that are not user messages, or message types the bot does not
// handle, yield no reply.
func (d *Dispatcher) HandleEvent(ctx context.Context, event line.Event) []line.SendingMessage {
	if event.Type != line.EventTypeMessage || event.Source.UserID == "" {
		return nil
	}

	userID := event.Source.UserID
	switch event.Message.Type {
	case line.MessageTypeText:
		return d.handleText(ctx, userID, event.Message.Text)
	case line.MessageTypeAudio:
		return d.audio(ctx, userID, event.Message.ID)
	default:
		d.deps.Logger.DebugContext(ctx, "Ignoring unsupported message type",
			"user_id", userID, "type", event.Message.Type)
		return nil
	}
}

func (d *Dispatcher) handleText(ctx context.Context, userID, text string) []line.SendingMessage {
	text = strings.TrimSpace(text)
	d.deps.Logger.InfoContext(ctx, "Text message received", "user_id", userID, "text", text)

	for _, cmd := range d.commands {
		if args, ok := cmd.match(text); ok {
			return cmd.Handler(ctx, userID, args)
		}
	}
	return d.freeText(ctx, userID, text)
}
