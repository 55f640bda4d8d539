// Package message builds send-message request bodies around post content.
// It performs no network I/O.
package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alnah/go-md2post/internal/richtext"
)

// TypePost is the msg_type of rich-text post messages.
const TypePost = "post"

// ErrEmptyReceiveID indicates an envelope without a recipient.
var ErrEmptyReceiveID = errors.New("receive id cannot be empty")

// Envelope is the request body of the send-message API. Content carries the
// post serialized as a JSON string, as the API requires.
type Envelope struct {
	ReceiveID string `json:"receive_id"`
	MsgType   string `json:"msg_type"`
	Content   string `json:"content"`
	UUID      string `json:"uuid,omitempty"`
}

// Builder creates envelopes. The zero value generates random v4 UUIDs.
type Builder struct {
	// NewID returns the deduplication key of a message. Nil means uuid.NewString.
	NewID func() string
}

// Build wraps post into an envelope addressed to receiveID.
func (b Builder) Build(receiveID string, post richtext.Post) (*Envelope, error) {
	if receiveID == "" {
		return nil, ErrEmptyReceiveID
	}

	content, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("encoding post: %w", err)
	}

	newID := b.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &Envelope{
		ReceiveID: receiveID,
		MsgType:   TypePost,
		Content:   string(content),
		UUID:      newID(),
	}, nil
}

// Post decodes the post carried in the envelope content.
func (e *Envelope) Post() (richtext.Post, error) {
	var p richtext.Post
	if e.MsgType != TypePost {
		return p, fmt.Errorf("unexpected msg_type %q", e.MsgType)
	}
	if err := json.Unmarshal([]byte(e.Content), &p); err != nil {
		return p, fmt.Errorf("decoding post: %w", err)
	}
	return p, nil
}
