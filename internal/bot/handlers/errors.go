package handlers

import (
	"errors"

	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/openai"
)

// upstreamMessage translates a model error into the stable user-facing text
// for its failure class. Unclassified errors surface their own message.
func upstreamMessage(err error) string {
	var upstream *openai.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.Kind {
		case openai.KindBadKey:
			return msgBadKey
		case openai.KindOverloaded:
			return msgOverloaded
		}
		return upstream.Message
	}
	return err.Error()
}

func upstreamReply(err error) []line.SendingMessage {
	return textReply(upstreamMessage(err))
}
