// Package openai wraps the OpenAI API behind the capability surface the
// gateway needs: chat completions, image generation, audio transcription,
// and a cheap key-validity probe. Each client is bound to one user's API
// key; failures are normalized into the upstream error taxonomy.
package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/gptline/gptline/internal/memory"
)

// Model is the provider capability surface used by the dialog layer.
type Model interface {
	// CheckTokenValid probes the provider with the bound key; a rejected
	// key returns an error of kind KindBadKey.
	CheckTokenValid(ctx context.Context) error
	ChatCompletions(ctx context.Context, messages []memory.Message, modelID string) (gopenai.ChatCompletionResponse, error)
	ImageGenerations(ctx context.Context, prompt string) (gopenai.ImageResponse, error)
	AudioTranscriptions(ctx context.Context, path, modelID string) (gopenai.AudioResponse, error)
}

// Client implements Model against the OpenAI API.
type Client struct {
	api    *gopenai.Client
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*gopenai.ClientConfig)

// WithBaseURL points the client at an alternate API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(cfg *gopenai.ClientConfig) { cfg.BaseURL = baseURL }
}

// New creates a provider client bound to one API key. Every request carries
// the given timeout.
func New(apiKey string, timeout time.Duration, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	cfg := gopenai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{
		api:    gopenai.NewClientWithConfig(cfg),
		logger: log.With("component", "openai_client"),
	}
}

// CheckTokenValid probes the models listing, the cheapest authenticated call.
func (c *Client) CheckTokenValid(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// ChatCompletions runs one chat completion over the given conversation.
func (c *Client) ChatCompletions(ctx context.Context, messages []memory.Message, modelID string) (gopenai.ChatCompletionResponse, error) {
	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:    modelID,
		Messages: toChatMessages(messages),
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "chat completion failed", "model", modelID, "error", err)
		return gopenai.ChatCompletionResponse{}, classify(err)
	}
	return resp, nil
}

// ImageGenerations generates one image for the prompt; the response payload
// carries the image URL.
func (c *Client) ImageGenerations(ctx context.Context, prompt string) (gopenai.ImageResponse, error) {
	resp, err := c.api.CreateImage(ctx, gopenai.ImageRequest{
		Prompt: prompt,
		N:      1,
		Size:   gopenai.CreateImageSize1024x1024,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "image generation failed", "error", err)
		return gopenai.ImageResponse{}, classify(err)
	}
	return resp, nil
}

// AudioTranscriptions transcribes the audio file at path.
func (c *Client) AudioTranscriptions(ctx context.Context, path, modelID string) (gopenai.AudioResponse, error) {
	resp, err := c.api.CreateTranscription(ctx, gopenai.AudioRequest{
		Model:    modelID,
		FilePath: path,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "audio transcription failed", "model", modelID, "error", err)
		return gopenai.AudioResponse{}, classify(err)
	}
	return resp, nil
}

// RoleAndContent extracts the assistant role and textual content from a chat
// completion envelope.
func RoleAndContent(resp gopenai.ChatCompletionResponse) (role, content string, err error) {
	if len(resp.Choices) == 0 {
		return "", "", errors.New("openai: chat response has no choices")
	}
	msg := resp.Choices[0].Message
	return msg.Role, msg.Content, nil
}

func toChatMessages(messages []memory.Message) []gopenai.ChatCompletionMessage {
	out := make([]gopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, gopenai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
