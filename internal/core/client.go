package core

// sendBuffer is the per-client outbound frame queue depth. A client
// that falls this far behind starts losing frames; it will resync on
// reconnect via SYNC_STATE.
const sendBuffer = 32

// Client is one live connection as seen by the core layer. Frames on
// Send are already encoded; the transport write loop drains them.
type Client struct {
	ID   string
	Send chan []byte
}

// NewClient constructs a client with an initialized send queue.
func NewClient(id string) *Client {
	return &Client{
		ID:   id,
		Send: make(chan []byte, sendBuffer),
	}
}

// trySend queues a frame without blocking. Reports false when the
// client's queue is full or already closed.
func (c *Client) trySend(frame []byte) bool {
	select {
	case c.Send <- frame:
		return true
	default:
		return false
	}
}
