package signal

import "github.com/dkeye/ShareBridge/internal/core"

func (ctl *SignalWSController) handlePing(
	conn core.SignalConnection,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: TypePong,
	}
	ctl.sendJSON(conn, resp)
}
