package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
	"github.com/averin/Lingua/internal/translate"
)

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrRecipientUnknown  = errors.New("recipient not found")
	ErrTranslationFailed = errors.New("translation failed")
)

type DeliveryStatus string

const (
	// DeliveryDelivered: translated and pushed to the recipient's live connection.
	DeliveryDelivered DeliveryStatus = "success"
	// DeliveryAccepted: translated, but the recipient had no live connection
	// at delivery time. Best-effort, no retry, no queue.
	DeliveryAccepted DeliveryStatus = "accepted"
)

// MessageRouter resolves a recipient, translates the text into the
// recipient's recorded language and pushes the result to the recipient's
// connection. The returned status is the sender's acknowledgment.
type MessageRouter struct {
	dir        *Directory
	translator translate.Translator
	now        func() time.Time
}

func NewMessageRouter(dir *Directory, translator translate.Translator) *MessageRouter {
	return &MessageRouter{dir: dir, translator: translator, now: time.Now}
}

// Route performs one independent routing call. The recipient's language is
// the one recorded in the directory at this moment, not at send time.
func (r *MessageRouter) Route(ctx context.Context, sender, recipient domain.UserID, text string) (*domain.ChatMessage, DeliveryStatus, error) {
	if sender == "" || recipient == "" || text == "" {
		return nil, "", ErrMissingFields
	}

	snap, ok := r.dir.Lookup(recipient)
	if !ok {
		return nil, "", ErrRecipientUnknown
	}

	res, err := r.translator.Translate(ctx, text, snap.Language)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.router").Str("to", string(recipient)).Msg("translation failed")
		return nil, "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	msg := &domain.ChatMessage{
		From:               sender,
		To:                 recipient,
		OriginalMessage:    text,
		TranslatedMessage:  res.Text,
		OriginalLanguage:   res.DetectedLanguage,
		TranslatedLanguage: snap.Language,
		Timestamp:          r.now(),
	}

	status := DeliveryAccepted
	if snap.Conn != nil {
		if err := r.deliver(snap.Conn, msg); err != nil {
			// The recipient disconnected between lookup and delivery, or
			// its send queue is full. Translation already happened; report
			// the partial outcome, never crash or retry.
			log.Warn().Err(err).Str("module", "app.router").Str("to", string(recipient)).Msg("live delivery failed")
		} else {
			status = DeliveryDelivered
		}
	}

	log.Info().
		Str("module", "app.router").
		Str("from", string(sender)).
		Str("to", string(recipient)).
		Str("status", string(status)).
		Str("language", msg.TranslatedLanguage).
		Msg("routed message")
	return msg, status, nil
}

func (r *MessageRouter) deliver(conn core.Connection, msg *domain.ChatMessage) error {
	frame, err := core.EncodeEvent(core.ReceiveMessageEvent{
		Type:        core.EventReceiveMessage,
		ChatMessage: *msg,
	})
	if err != nil {
		return err
	}
	return conn.TrySend(frame)
}
