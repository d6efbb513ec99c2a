// Package ws is the WebSocket adapter: it owns the sockets and turns wire
// frames into calls on the relay core.
package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/app"
	"github.com/averin/Lingua/internal/config"
	"github.com/averin/Lingua/internal/core"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
)

type Controller struct {
	Cfg       *config.Config
	Lifecycle *app.Lifecycle
	Router    *app.MessageRouter
	Relay     *app.SignalingRelay
}

func NewController(cfg *config.Config, lc *app.Lifecycle, router *app.MessageRouter, relay *app.SignalingRelay) *Controller {
	return &Controller{Cfg: cfg, Lifecycle: lc, Router: router, Relay: relay}
}

// wsConn implements core.Connection on top of one gorilla socket.
type wsConn struct {
	id   core.ConnID
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) ID() core.ConnID { return c.id }

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrConnClosed
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and starts the per-connection pumps. Every
// socket gets a fresh handle id; the directory relies on that to tell a
// stale disconnect from a live one.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	sid := c.GetString("client_token")

	socket, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("ws upgrade")
		return
	}

	conn := &wsConn{
		id:   core.ConnID(uuid.NewString()),
		conn: socket,
		send: make(chan core.Frame, 32),
	}
	log.Info().Str("module", "adapters.ws").Str("sid", sid).Str("conn", string(conn.id)).Msg("new WS connection")

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, conn)
}
