package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/core"
	"github.com/y4pp1/counter/internal/metrics"
	"github.com/y4pp1/counter/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the hub.
type WSHandler struct {
	hub     *core.Hub
	metrics *metrics.Metrics
	log     *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, m *metrics.Metrics, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, metrics: m, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	client := core.NewClient(uuid.NewString())
	h.hub.RegisterClient(client)
	defer h.hub.UnregisterClient(client)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

// readLoop decodes inbound frames and dispatches them to the hub.
// Malformed frames are logged and dropped; the connection stays open.
func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		in, err := proto.Decode(data)
		if err != nil {
			h.metrics.DecodeErrorsTotal.Inc()
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("dropping malformed frame")
			continue
		}

		cmd, err := inboundToCommand(client, in)
		if err != nil {
			h.metrics.DecodeErrorsTotal.Inc()
			h.log.Warn().Err(err).Str("client_id", client.ID).Msg("dropping frame with bad payload")
			continue
		}
		if cmd == nil {
			h.log.Warn().Str("client_id", client.ID).Str("type", in.Type).Msg("unrecognized message type")
			continue
		}

		h.hub.Dispatch(*cmd)
	}
}

// writeLoop drains the client's pre-encoded frames onto the wire.
func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *core.Client) error {
	for {
		select {
		case frame, ok := <-client.Send:
			if !ok {
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
				h.log.Warn().Err(err).Str("client_id", client.ID).Msg("write ws frame")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
