package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestHub(t *testing.T) (*Hub, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewHub(rdb, zap.NewNop()), rdb
}

func TestHub_PublishEnvelopeShape(t *testing.T) {
	hub, rdb := newTestHub(t)
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, "notifications:push")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	payload, err := json.Marshal(map[string]string{"title": "KYC Approved"})
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	if err := hub.Publish(ctx, 42, json.RawMessage(payload)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-sub.Channel():
		var env pushEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			t.Fatalf("envelope is not valid json: %v", err)
		}
		if env.UserID != 42 {
			t.Errorf("expected user 42, got %d", env.UserID)
		}
		var inner map[string]string
		if err := json.Unmarshal(env.Payload, &inner); err != nil {
			t.Fatalf("inner payload mangled: %v", err)
		}
		if inner["title"] != "KYC Approved" {
			t.Errorf("unexpected inner payload: %v", inner)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message arrived on the hub channel")
	}
}

func TestHub_RemoveClosesConnection(t *testing.T) {
	hub, _ := newTestHub(t)

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer client.Close()

	serverConn := <-connCh
	hub.Add(42, serverConn)
	hub.Remove(42, serverConn)
	// Removing an already-removed connection must be harmless.
	hub.Remove(42, serverConn)

	if err := serverConn.WriteMessage(websocket.TextMessage, []byte("ping")); err == nil {
		t.Error("write after remove must fail")
	}
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Fatal("expected the connection to be closed")
	}
}

func TestHub_RunStopsOnContextCancel(t *testing.T) {
	hub, _ := newTestHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop after context cancellation")
	}
}
