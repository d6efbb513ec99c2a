package core

import (
	"encoding/json"

	"github.com/averin/Lingua/internal/domain"
)

// Outbound event type names on the wire.
const (
	EventRegistrationSuccess = "registration_success"
	EventReceiveMessage      = "receive_message"
	EventMessageSent         = "message_sent"
	EventError               = "error"
	EventPong                = "pong"
)

// ReceiveMessageEvent is what the recipient's client sees.
type ReceiveMessageEvent struct {
	Type string `json:"type"`
	domain.ChatMessage
}

// StatusEvent acknowledges an operation back to its originator.
type StatusEvent struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// ErrorEvent reports a local failure to the originating sender only.
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EncodeEvent marshals an outbound event into a wire frame.
func EncodeEvent(v any) (Frame, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Frame(b), nil
}
