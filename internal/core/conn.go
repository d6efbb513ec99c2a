package core

// Frame is a raw wire payload, already encoded.
type Frame []byte

// ConnID identifies one transport session. A reconnecting user gets a
// fresh ConnID; the directory compares IDs to spot stale disconnects.
type ConnID string

// Connection abstracts the transport endpoint of one client.
// Owned by the adapter; the adapter must Close() it.
type Connection interface {
	ID() ConnID
	TrySend(Frame) error
	Close()
}
