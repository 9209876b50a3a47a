// Package line implements the LINE Messaging API surface the gateway needs:
// webhook signature verification and event decoding on the inbound side, and
// the reply-token and message-content endpoints on the outbound side.
package line

// EventTypeMessage is the webhook event type carrying a user message.
const EventTypeMessage = "message"

// Message content types delivered inside a message event.
const (
	MessageTypeText  = "text"
	MessageTypeAudio = "audio"
)

// Source identifies the sender of a webhook event.
type Source struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// EventMessage is the message payload of a message event.
type EventMessage struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Duration int64  `json:"duration,omitempty"`
}

// Event is a single event from the webhook envelope.
type Event struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Timestamp  int64        `json:"timestamp"`
	Source     Source       `json:"source"`
	Message    EventMessage `json:"message"`
}

type webhookBody struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// SendingMessage is an outbound message accepted by the reply API.
type SendingMessage interface {
	sendingMessage()
}

// TextMessage is an outbound text message.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextMessage builds an outbound text message.
func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

func (TextMessage) sendingMessage() {}

// ImageMessage is an outbound image message. LINE requires both a full-size
// and a preview URL; callers usually pass the same URL for both.
type ImageMessage struct {
	Type               string `json:"type"`
	OriginalContentURL string `json:"originalContentUrl"`
	PreviewImageURL    string `json:"previewImageUrl"`
}

// NewImageMessage builds an outbound image message.
func NewImageMessage(originalContentURL, previewImageURL string) ImageMessage {
	return ImageMessage{
		Type:               "image",
		OriginalContentURL: originalContentURL,
		PreviewImageURL:    previewImageURL,
	}
}

func (ImageMessage) sendingMessage() {}
