package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// SignatureHeader is the request header carrying the webhook signature.
const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature is returned when the webhook signature does not match
// the request body under the channel secret.
var ErrInvalidSignature = errors.New("line: invalid signature")

// ValidateSignature reports whether signature is a valid X-Line-Signature
// value for body. The platform signs the raw request body with HMAC-SHA256
// keyed by the channel secret and sends the base64-encoded digest.
func ValidateSignature(channelSecret, signature string, body []byte) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}

// ParseWebhook verifies the signature and decodes the webhook envelope into
// its events. A signature mismatch returns ErrInvalidSignature.
func ParseWebhook(channelSecret, signature string, body []byte) ([]Event, error) {
	if !ValidateSignature(channelSecret, signature, body) {
		return nil, ErrInvalidSignature
	}
	var envelope webhookBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("line: decode webhook body: %w", err)
	}
	return envelope.Events, nil
}
