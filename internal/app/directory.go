package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
)

// Directory is the authoritative in-memory mapping from user identity to
// preferred language, status and live connection. All state is
// process-lifetime and rebuilt from scratch on restart. Other components
// never see the raw maps, only the operations below.
type Directory struct {
	mu     sync.RWMutex
	users  map[domain.UserID]*domain.User
	conns  map[domain.UserID]core.Connection
	owners map[core.ConnID]domain.UserID
}

func NewDirectory() *Directory {
	return &Directory{
		users:  make(map[domain.UserID]*domain.User),
		conns:  make(map[domain.UserID]core.Connection),
		owners: make(map[core.ConnID]domain.UserID),
	}
}

// Register inserts or updates the user's language and flips it online.
// Idempotent on user identity; validation is the caller's job. The return
// is a detached copy: the stored entry never leaves the lock.
func (d *Directory) Register(id domain.UserID, language string) domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u, ok := d.users[id]; ok {
		u.Language = language
		u.Status = domain.StatusOnline
		log.Info().Str("module", "app.directory").Str("user", string(id)).Str("language", language).Msg("re-registered user")
		return *u
	}
	u := &domain.User{ID: id, Language: language, Status: domain.StatusOnline}
	d.users[id] = u
	log.Info().Str("module", "app.directory").Str("user", string(id)).Str("language", language).Msg("registered user")
	return *u
}

// BindConnection associates conn with id, atomically superseding any prior
// connection for that id (last-registered-wins). The superseded connection
// is returned so the caller can close it.
func (d *Directory) BindConnection(id domain.UserID, conn core.Connection) core.Connection {
	d.mu.Lock()
	defer d.mu.Unlock()
	// The same socket may re-register under a new identity. The old
	// identity loses its binding and goes offline; otherwise it would keep
	// a dead handle forever once the socket disconnects.
	if prevID, ok := d.owners[conn.ID()]; ok && prevID != id {
		delete(d.conns, prevID)
		if u, ok := d.users[prevID]; ok {
			u.Status = domain.StatusOffline
		}
		log.Info().Str("module", "app.directory").Str("user", string(prevID)).Str("conn", string(conn.ID())).Msg("connection rebound to new identity")
	}
	prev := d.conns[id]
	if prev != nil {
		delete(d.owners, prev.ID())
	}
	d.conns[id] = conn
	d.owners[conn.ID()] = id
	log.Info().Str("module", "app.directory").Str("user", string(id)).Str("conn", string(conn.ID())).Msg("bound connection")
	return prev
}

// UnbindConnection removes the binding for conn and flips its user offline,
// but only if conn is still the one on record for that user. A disconnect
// arriving after the user re-registered on a newer connection is a stale
// event and leaves the directory untouched.
func (d *Directory) UnbindConnection(conn core.Connection) (domain.UserID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.owners[conn.ID()]
	if !ok {
		return "", false
	}
	bound := d.conns[id]
	if bound == nil || bound.ID() != conn.ID() {
		return "", false
	}
	delete(d.conns, id)
	delete(d.owners, conn.ID())
	if u, ok := d.users[id]; ok {
		u.Status = domain.StatusOffline
	}
	log.Info().Str("module", "app.directory").Str("user", string(id)).Str("conn", string(conn.ID())).Msg("unbound connection")
	return id, true
}

// Snapshot is a read-only view of one directory entry. Conn is nil when
// the user has no live connection.
type Snapshot struct {
	Language string
	Status   domain.Status
	Conn     core.Connection
}

// Lookup returns a point-in-time snapshot for id. The connection inside
// may die between the lookup and its use; senders must fail softly.
func (d *Directory) Lookup(id domain.UserID) (Snapshot, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{
		Language: u.Language,
		Status:   u.Status,
		Conn:     d.conns[id],
	}, true
}
