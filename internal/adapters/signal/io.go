package signal

import (
	"context"
	"time"

	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/dkeye/ShareBridge/internal/domain"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.Opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(ctl.Opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.Opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(
	ctx context.Context,
	sid core.SessionID,
	c *WsSignalConn,
	endpoint core.ShareChannel,
	cancel context.CancelFunc,
) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		c.Close()
		detachCtx, done := context.WithTimeout(context.Background(), ctl.Opts.WriteWait)
		defer done()
		if err := ctl.Orch.Detach(detachCtx, sid, endpoint); err != nil {
			log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("detach failed")
		}
	}()

	c.conn.SetReadLimit(ctl.Opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(ctl.Opts.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(ctl.Opts.pongWait()))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
			}
			return
		}
		ctl.handleSignal(ctx, sid, c, data)
	}
}

func (ctl *SignalWSController) handleSignal(ctx context.Context, sid core.SessionID, c core.SignalConnection, data []byte) {
	in, err := decodeInbound(data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendJSON(c, errorReply{Type: TypeError, Error: "bad_payload"})
		return
	}

	switch in.Type {
	case TypeInvoke:
		ctl.handleInvoke(ctx, sid, c, in)
	case TypePing:
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", in.Type).Msg("unknown signal")
	}
}

func (ctl *SignalWSController) handleInvoke(ctx context.Context, sid core.SessionID, c core.SignalConnection, in inbound) {
	if in.Channel != domain.ChannelName {
		log.Warn().Str("module", "signal").Str("channel", in.Channel).Msg("invoke on unknown channel")
		ctl.sendJSON(c, errorReply{Type: TypeError, ID: in.ID, Error: "unknown_channel"})
		return
	}

	switch in.Method {
	case domain.MethodGetInitialSharedURL:
		v, ok, err := ctl.Orch.PullInitialShared(ctx)
		if err != nil {
			log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("pull initial share")
			ctl.sendJSON(c, errorReply{Type: TypeError, ID: in.ID, Error: "unavailable"})
			return
		}
		log.Info().Str("module", "signal").Str("sid", string(sid)).Bool("found", ok).Msg("initial share requested")
		if err := ctl.sendJSON(c, newResult(in.ID, in.Method, v, ok)); err != nil && ok {
			ctl.returnUndelivered(sid, v, err)
		}
	default:
		ctl.sendJSON(c, struct {
			Type    string `json:"type"`
			ID      int64  `json:"id"`
			Channel string `json:"channel"`
			Method  string `json:"method"`
		}{TypeNotImplemented, in.ID, domain.ChannelName, in.Method})
	}
}

func (ctl *SignalWSController) sendJSON(c core.SignalConnection, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return err
	}
	if err := c.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("sendJSON dropped")
		return err
	}
	return nil
}

// returnUndelivered runs detached from the connection context, which is
// usually what just ended.
func (ctl *SignalWSController) returnUndelivered(sid core.SessionID, v domain.SharedContent, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), ctl.Opts.WriteWait)
	defer cancel()
	if err := ctl.Orch.ReturnUndelivered(ctx, v, cause); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("initial share lost")
	}
}
