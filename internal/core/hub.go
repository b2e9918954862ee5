package core

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/auth"
	"github.com/y4pp1/counter/internal/metrics"
	"github.com/y4pp1/counter/internal/proto"
)

// ErrHubClosed is returned by Stats when the hub has shut down.
var ErrHubClosed = errors.New("hub closed")

// Stats is a read-only view of the broker state for the status endpoint.
type Stats struct {
	ConnectedClients     int
	AuthenticatedClients int
	People               []Person
}

// Hub owns the board and the session registry. All state mutation
// funnels through its Run goroutine, so commands are applied and
// broadcast in one total order without locks.
type Hub struct {
	log      *zerolog.Logger
	board    *Board
	registry *Registry
	gate     *Gate
	secret   auth.Secret
	metrics  *metrics.Metrics

	register   chan *Client
	unregister chan *Client
	commands   chan Command
	stats      chan chan Stats
	done       chan struct{}
}

// NewHub constructs a hub with an empty board and registry.
func NewHub(secret auth.Secret, m *metrics.Metrics, logger *zerolog.Logger) *Hub {
	registry := NewRegistry()
	return &Hub{
		log:        logger,
		board:      NewBoard(),
		registry:   registry,
		gate:       NewGate(registry),
		secret:     secret,
		metrics:    m,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan Command, 64),
		stats:      make(chan chan Stats),
		done:       make(chan struct{}),
	}
}

// Run processes registration, command, and stats events until the
// context is cancelled, then closes every session and discards state.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case cmd := <-h.commands:
			h.handleCommand(cmd)
		case req := <-h.stats:
			req <- Stats{
				ConnectedClients:     h.registry.Count(),
				AuthenticatedClients: h.registry.AuthenticatedCount(),
				People:               h.board.Snapshot(),
			}
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// RegisterClient hands a freshly accepted connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a closed or errored connection.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Dispatch queues a decoded command for processing.
func (h *Hub) Dispatch(cmd Command) {
	select {
	case h.commands <- cmd:
	case <-h.done:
	}
}

// Stats returns the current connection and board state.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	req := make(chan Stats, 1)
	select {
	case h.stats <- req:
	case <-h.done:
		return Stats{}, ErrHubClosed
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-req:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

func (h *Hub) handleRegister(c *Client) {
	session := h.registry.Register(c)
	h.metrics.ConnectedClients.Set(float64(h.registry.Count()))
	h.log.Info().Str("client_id", c.ID).Str("session_id", session.ID).Msg("client connected")

	h.sendTo(c, proto.Outbound{
		Type: proto.TypeSyncState,
		Payload: proto.SyncStatePayload{
			People:             wirePeople(h.board.Snapshot()),
			AuthenticatedCount: h.registry.AuthenticatedCount(),
			ClientID:           session.ID,
		},
	})
}

func (h *Hub) handleUnregister(c *Client) {
	if !h.registry.Deregister(c) {
		return
	}
	close(c.Send)
	h.metrics.ConnectedClients.Set(float64(h.registry.Count()))
	h.metrics.AuthenticatedClients.Set(float64(h.registry.AuthenticatedCount()))
	h.log.Info().Str("client_id", c.ID).Msg("client disconnected")

	h.broadcastAuthStatus()
}

func (h *Hub) handleCommand(cmd Command) {
	h.metrics.CommandsTotal.WithLabelValues(cmd.Kind.String()).Inc()

	if denial := h.gate.Check(cmd.Client, cmd.Kind); denial != nil {
		h.log.Debug().Str("client_id", cmd.Client.ID).Stringer("command", cmd.Kind).
			Str("code", denial.Code).Msg("command denied")
		h.sendTo(cmd.Client, authFailed(denial.Message))
		return
	}

	switch cmd.Kind {
	case CommandAuthenticate:
		h.authenticate(cmd)
	case CommandAddPerson:
		h.addPerson(cmd)
	case CommandUpdateCount:
		h.updateCount(cmd)
	case CommandRemovePerson:
		h.removePerson(cmd)
	default:
		h.log.Warn().Str("client_id", cmd.Client.ID).Int("kind", int(cmd.Kind)).
			Msg("unrecognized command")
	}
}

func (h *Hub) authenticate(cmd Command) {
	if !h.secret.Verify(cmd.Password) {
		h.log.Debug().Str("client_id", cmd.Client.ID).Msg("authentication failed")
		h.sendTo(cmd.Client, authFailed(MsgBadPassword))
		return
	}

	h.registry.SetAuthenticated(cmd.Client)
	h.metrics.AuthenticatedClients.Set(float64(h.registry.AuthenticatedCount()))
	h.log.Info().Str("client_id", cmd.Client.ID).Msg("client authenticated")

	h.sendTo(cmd.Client, proto.Outbound{
		Type:    proto.TypeAuthSuccess,
		Payload: proto.AuthResultPayload{Message: MsgAuthSuccess},
	})
	h.broadcastAuthStatus()
}

func (h *Hub) addPerson(cmd Command) {
	p, err := h.board.Add(cmd.Name)
	if err != nil {
		// Empty names are rejected silently; well-behaved clients
		// never send them.
		h.log.Debug().Str("client_id", cmd.Client.ID).Err(err).Msg("add person rejected")
		return
	}

	h.broadcast(proto.Outbound{
		Type:    proto.TypePersonAdded,
		Payload: wirePerson(p),
	})
}

func (h *Hub) updateCount(cmd Command) {
	p, ok := h.board.UpdateCount(cmd.ID, cmd.Increment)
	if !ok {
		// Unknown id: no-op and no broadcast.
		h.log.Debug().Str("client_id", cmd.Client.ID).Int64("id", cmd.ID).
			Msg("update for unknown entry")
		return
	}

	h.broadcast(proto.Outbound{
		Type:    proto.TypeCountUpdated,
		Payload: proto.CountUpdatedPayload{ID: p.ID, Count: p.Count},
	})
}

func (h *Hub) removePerson(cmd Command) {
	if !h.board.Remove(cmd.ID) {
		h.log.Debug().Str("client_id", cmd.Client.ID).Int64("id", cmd.ID).
			Msg("remove for unknown entry")
	}

	// Removal is announced even when the id was unknown.
	h.broadcast(proto.Outbound{
		Type:    proto.TypePersonRemoved,
		Payload: proto.RemovePersonPayload{ID: cmd.ID},
	})
}

// broadcast encodes the message once and fans the frame out to every
// live session. A session whose send queue is full loses the frame;
// it will either catch up or disconnect and resync.
func (h *Hub) broadcast(out proto.Outbound) {
	frame, err := proto.Encode(out)
	if err != nil {
		h.log.Error().Err(err).Msg("encode broadcast")
		return
	}

	h.metrics.BroadcastsTotal.Inc()
	for _, session := range h.registry.All() {
		if !session.Client.trySend(frame) {
			h.metrics.DroppedFramesTotal.Inc()
			h.log.Warn().Str("client_id", session.Client.ID).
				Str("type", out.Type).Msg("dropped frame for slow client")
		}
	}
}

func (h *Hub) broadcastAuthStatus() {
	h.broadcast(proto.Outbound{
		Type:    proto.TypeAuthStatusUpdate,
		Payload: proto.AuthStatusPayload{AuthenticatedCount: h.registry.AuthenticatedCount()},
	})
}

// sendTo encodes and queues a message for one session only. Commands
// can still be queued behind a client's unregister, so anything no
// longer in the registry is skipped rather than written to.
func (h *Hub) sendTo(c *Client, out proto.Outbound) {
	if _, ok := h.registry.sessions[c]; !ok {
		return
	}
	frame, err := proto.Encode(out)
	if err != nil {
		h.log.Error().Err(err).Msg("encode reply")
		return
	}
	if !c.trySend(frame) {
		h.metrics.DroppedFramesTotal.Inc()
		h.log.Warn().Str("client_id", c.ID).Str("type", out.Type).
			Msg("dropped reply for slow client")
	}
}

func (h *Hub) closeAll() {
	for _, session := range h.registry.All() {
		h.registry.Deregister(session.Client)
		close(session.Client.Send)
	}
	h.metrics.ConnectedClients.Set(0)
	h.metrics.AuthenticatedClients.Set(0)
	h.log.Info().Msg("hub stopped, all sessions closed")
}

func authFailed(msg string) proto.Outbound {
	return proto.Outbound{
		Type:    proto.TypeAuthFailed,
		Payload: proto.AuthResultPayload{Message: msg},
	}
}

func wirePerson(p Person) proto.Person {
	return proto.Person{ID: p.ID, Name: p.Name, Count: p.Count}
}

func wirePeople(people []Person) []proto.Person {
	out := make([]proto.Person, len(people))
	for i, p := range people {
		out[i] = wirePerson(p)
	}
	return out
}
