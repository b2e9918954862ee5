package core

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/auth"
	"github.com/y4pp1/counter/internal/metrics"
)

const testSecret = "admin123"

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newHubForTest(logger *zerolog.Logger) *Hub {
	return NewHub(auth.NewSecret(testSecret, ""), metrics.New(prometheus.NewRegistry()), logger)
}

func startTestHub(t *testing.T) *Hub {
	t.Helper()

	hub := newHubForTest(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// mustFrame reads frames from the client's send queue until one of the
// wanted type arrives.
func mustFrame(t *testing.T, c *Client, wantType string) frame {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case data, ok := <-c.Send:
			if !ok {
				t.Fatalf("send queue closed while waiting for %s", wantType)
			}
			var f frame
			if err := json.Unmarshal(data, &f); err != nil {
				t.Fatalf("bad frame: %v", err)
			}
			if f.Type == wantType {
				return f
			}
		case <-deadline:
			t.Fatalf("expected frame %s not received", wantType)
		}
	}
}

// mustNoFrame asserts that no frame arrives within a short window.
func mustNoFrame(t *testing.T, c *Client) {
	t.Helper()

	select {
	case data := <-c.Send:
		t.Fatalf("unexpected frame: %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func payloadAs[T any](t *testing.T, f frame) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(f.Payload, &v); err != nil {
		t.Fatalf("unmarshal %s payload: %v", f.Type, err)
	}
	return v
}
