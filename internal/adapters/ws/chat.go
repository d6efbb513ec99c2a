package ws

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/app"
	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
)

func (ctl *Controller) handleRegister(c *wsConn, data []byte) {
	type registerPayload struct {
		Type     string `json:"type"`
		UserID   string `json:"user_id"`
		Language string `json:"language"`
	}
	var p registerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("bad register payload")
		ctl.sendError(c, "bad payload")
		return
	}

	user, err := ctl.Lifecycle.HandleRegister(domain.UserID(p.UserID), p.Language, c)
	if err != nil {
		log.Warn().Err(err).Str("module", "adapters.ws").Str("user", p.UserID).Msg("register rejected")
		ctl.sendError(c, err.Error())
		return
	}

	log.Info().Str("module", "adapters.ws").Str("user", string(user.ID)).Str("language", user.Language).Str("conn", string(c.id)).Msg("registered")
	ctl.sendJSON(c, core.StatusEvent{Type: core.EventRegistrationSuccess, Status: "registered"})
}

func (ctl *Controller) handleSendMessage(ctx context.Context, c *wsConn, data []byte) {
	type sendPayload struct {
		Type        string `json:"type"`
		SenderID    string `json:"sender_id"`
		RecipientID string `json:"recipient_id"`
		Message     string `json:"message"`
	}
	var p sendPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("bad send_message payload")
		ctl.sendError(c, "bad payload")
		return
	}

	// A disconnect only cancels future deliveries, never an in-flight
	// translation; the provider call is bounded by its own timeout.
	_, status, err := ctl.Router.Route(context.WithoutCancel(ctx), domain.UserID(p.SenderID), domain.UserID(p.RecipientID), p.Message)
	if err != nil {
		ctl.sendError(c, routeErrorMessage(err))
		return
	}

	ctl.sendJSON(c, core.StatusEvent{Type: core.EventMessageSent, Status: string(status)})
}

// routeErrorMessage keeps wire error strings stable for clients.
func routeErrorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, app.ErrRecipientUnknown):
		return "Recipient not found"
	case errors.Is(err, app.ErrTranslationFailed):
		return "Translation failed"
	}
	return err.Error()
}
