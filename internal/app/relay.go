package app

import (
	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
)

type RelayOutcome int

const (
	RelayForwarded RelayOutcome = iota
	RelayDropped
)

// SignalingRelay forwards call-setup envelopes (offer, answer,
// ice_candidate) to the recipient's live connection. The frame is the
// sender's original wire bytes and is never inspected or re-encoded.
// An unbound recipient means the envelope is dropped; signaling is
// best-effort and no error reaches the sender.
type SignalingRelay struct {
	dir *Directory
}

func NewSignalingRelay(dir *Directory) *SignalingRelay {
	return &SignalingRelay{dir: dir}
}

func (s *SignalingRelay) Relay(env domain.SignalingEnvelope, frame core.Frame) RelayOutcome {
	snap, ok := s.dir.Lookup(env.To)
	if !ok || snap.Conn == nil {
		log.Debug().Str("module", "app.relay").Str("type", string(env.Type)).Str("to", string(env.To)).Msg("recipient unbound, envelope dropped")
		return RelayDropped
	}
	if err := snap.Conn.TrySend(frame); err != nil {
		log.Debug().Err(err).Str("module", "app.relay").Str("type", string(env.Type)).Str("to", string(env.To)).Msg("envelope send failed")
		return RelayDropped
	}
	log.Debug().Str("module", "app.relay").Str("type", string(env.Type)).Str("from", string(env.From)).Str("to", string(env.To)).Msg("forwarded envelope")
	return RelayForwarded
}
