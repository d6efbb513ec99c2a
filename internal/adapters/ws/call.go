package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
)

// handleSignal forwards call-setup envelopes. Only the routing fields are
// decoded; the frame goes to the recipient byte-for-byte as it arrived.
// An undeliverable envelope is dropped without telling the sender.
func (ctl *Controller) handleSignal(c *wsConn, data []byte) {
	var env domain.SignalingEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("bad signaling payload")
		return
	}
	if !env.Type.Valid() || env.To == "" {
		log.Warn().Str("module", "adapters.ws").Str("type", string(env.Type)).Msg("signaling envelope missing recipient")
		return
	}

	ctl.Relay.Relay(env, core.Frame(data))
}
