package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultAPIEndpoint  = "https://api.line.me"
	defaultDataEndpoint = "https://api-data.line.me"

	defaultTimeout = 60 * time.Second
)

// Client calls the LINE Messaging API with a channel access token.
type Client struct {
	channelToken string
	httpClient   *http.Client
	apiEndpoint  string
	dataEndpoint string
	logger       *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithEndpoints overrides the API and data endpoints, mainly for tests.
func WithEndpoints(api, data string) ClientOption {
	return func(c *Client) {
		c.apiEndpoint = api
		c.dataEndpoint = data
	}
}

// NewClient creates a LINE Messaging API client.
func NewClient(channelToken string, log *slog.Logger, opts ...ClientOption) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		channelToken: channelToken,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		apiEndpoint:  defaultAPIEndpoint,
		dataEndpoint: defaultDataEndpoint,
		logger:       log.With("component", "line_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type replyRequest struct {
	ReplyToken string           `json:"replyToken"`
	Messages   []SendingMessage `json:"messages"`
}

// ReplyMessage sends messages through the reply-token API. A reply token is
// single-use, so this is called exactly once per webhook event.
func (c *Client) ReplyMessage(ctx context.Context, replyToken string, messages ...SendingMessage) error {
	payload, err := json.Marshal(replyRequest{ReplyToken: replyToken, Messages: messages})
	if err != nil {
		return fmt.Errorf("line: encode reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiEndpoint+"/v2/bot/message/reply", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("line: build reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("line: send reply: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.ErrorContext(ctx, "reply API rejected request",
			"status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("line: reply API returned status %d", resp.StatusCode)
	}
	return nil
}

// GetMessageContent downloads the binary content of a message (e.g. the audio
// blob of an audio message). The caller must close the returned reader.
func (c *Client) GetMessageContent(ctx context.Context, messageID string) (io.ReadCloser, error) {
	url := fmt.Sprintf("%s/v2/bot/message/%s/content", c.dataEndpoint, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("line: build content request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("line: fetch message content: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("line: content API returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
