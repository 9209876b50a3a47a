package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"
)

// UpstreamKind classifies provider failures for the dialog layer. The
// original failure modes were recognized by message substrings; normalizing
// them here keeps that knowledge out of the handlers.
type UpstreamKind int

const (
	// KindOther covers provider failures with no special handling; the raw
	// message is relayed to the user.
	KindOther UpstreamKind = iota
	// KindBadKey means the user's API key was rejected mid-conversation.
	KindBadKey
	// KindOverloaded means the provider is overloaded or the call timed out.
	KindOverloaded
)

// UpstreamError is a provider failure normalized at the client boundary.
type UpstreamError struct {
	Kind    UpstreamKind
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// classify maps an SDK error onto the upstream taxonomy.
func classify(err error) *UpstreamError {
	var apiErr *gopenai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized,
			strings.HasPrefix(apiErr.Message, "Incorrect API key provided"):
			return &UpstreamError{Kind: KindBadKey, Message: apiErr.Message}
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests,
			apiErr.HTTPStatusCode == http.StatusServiceUnavailable,
			strings.Contains(apiErr.Message, "overloaded"):
			return &UpstreamError{Kind: KindOverloaded, Message: apiErr.Message}
		default:
			return &UpstreamError{Kind: KindOther, Message: apiErr.Message}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{Kind: KindOverloaded, Message: "provider request timed out"}
	}
	return &UpstreamError{Kind: KindOther, Message: err.Error()}
}
