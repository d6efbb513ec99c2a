package app

import (
	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/core"
	"github.com/averin/Lingua/internal/domain"
)

// Lifecycle turns transport-level connect/register/disconnect events into
// directory mutations. A freshly connected socket touches nothing; identity
// only enters the directory on a register event.
type Lifecycle struct {
	dir *Directory
}

func NewLifecycle(dir *Directory) *Lifecycle {
	return &Lifecycle{dir: dir}
}

// HandleRegister validates the identity, upserts the user and binds the
// connection in one combined step. A connection superseded by this
// registration is closed; its late disconnect event is then caught by the
// directory's stale guard.
func (l *Lifecycle) HandleRegister(id domain.UserID, language string, conn core.Connection) (domain.User, error) {
	if _, err := domain.NewUser(id, language); err != nil {
		return domain.User{}, err
	}

	user := l.dir.Register(id, language)
	prev := l.dir.BindConnection(id, conn)
	if prev != nil && prev.ID() != conn.ID() {
		log.Info().Str("module", "app.lifecycle").Str("user", string(id)).Str("conn", string(prev.ID())).Msg("closing superseded connection")
		prev.Close()
	}
	return user, nil
}

// HandleDisconnect is the only cancellation signal: it stops future
// deliveries to conn but never cancels in-flight translations.
func (l *Lifecycle) HandleDisconnect(conn core.Connection) {
	id, ok := l.dir.UnbindConnection(conn)
	if !ok {
		log.Debug().Str("module", "app.lifecycle").Str("conn", string(conn.ID())).Msg("disconnect for untracked or superseded connection")
		return
	}
	log.Info().Str("module", "app.lifecycle").Str("user", string(id)).Msg("user disconnected")
}
