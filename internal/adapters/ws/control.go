package ws

import "github.com/averin/Lingua/internal/core"

func (ctl *Controller) handlePing(
	conn *wsConn,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: core.EventPong,
	}
	ctl.sendJSON(conn, resp)
}
