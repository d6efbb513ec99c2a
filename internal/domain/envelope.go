package domain

type SignalType string

const (
	SignalOffer        SignalType = "offer"
	SignalAnswer       SignalType = "answer"
	SignalICECandidate SignalType = "ice_candidate"
)

func (t SignalType) Valid() bool {
	switch t {
	case SignalOffer, SignalAnswer, SignalICECandidate:
		return true
	}
	return false
}

// SignalingEnvelope carries only the routing fields of a call-setup
// message. The body itself is opaque to the relay and forwarded as the
// original wire frame, never re-encoded.
type SignalingEnvelope struct {
	Type SignalType `json:"type"`
	From UserID     `json:"from"`
	To   UserID     `json:"to"`
}
