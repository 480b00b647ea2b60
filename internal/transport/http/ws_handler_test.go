package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/futbolx/chat-server/internal/config"
	"github.com/futbolx/chat-server/internal/core"
	"github.com/futbolx/chat-server/internal/proto"
)

func startTestServer(t *testing.T, mutate ...func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Config{
		Addr:              ":0",
		OwnerUsername:     "Finest",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		MaxMessageBytes:   1 << 20,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	hub := core.NewHub(core.Options{Owner: cfg.OwnerUsername}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	logger := zerolog.Nop()
	server := NewServer(hub, &cfg, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", msgType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: data}); err != nil {
		t.Fatalf("send %s: %v", msgType, err)
	}
}

type outboundFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

// readUntilEvent discards frames until one with the given event name
// arrives.
func readUntilEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string) outboundFrame {
	t.Helper()

	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read outbound waiting for %q: %v", event, err)
		}
		if frame.Type == proto.OutboundTypeEvent && frame.Event == event {
			return frame
		}
	}
}

func readUntilError(t *testing.T, ctx context.Context, conn *websocket.Conn) *proto.Error {
	t.Helper()

	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read outbound waiting for error: %v", err)
		}
		if frame.Type == proto.OutboundTypeError && frame.Error != nil {
			return frame.Error
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/stats")
	if err != nil {
		t.Fatalf("stats request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var stats StatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("unmarshal stats %q: %v", body, err)
	}
	if stats.Online != 0 || stats.Messages != 0 {
		t.Fatalf("expected empty server, got %+v", stats)
	}
}

func TestWebSocketJoinAndChat(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dialWS(t, ctx, ts)
	connB := dialWS(t, ctx, ts)

	sendInbound(t, ctx, connA, proto.InboundTypeJoin, proto.JoinData{Username: "alice"})
	frame := readUntilEvent(t, ctx, connA, proto.EventJoinSuccess)
	var joined proto.JoinSuccessData
	if err := json.Unmarshal(frame.Data, &joined); err != nil {
		t.Fatalf("unmarshal join_success: %v", err)
	}
	if joined.Username != "alice" || joined.IsOwner {
		t.Fatalf("unexpected join confirmation: %+v", joined)
	}

	sendInbound(t, ctx, connB, proto.InboundTypeJoin, proto.JoinData{Username: "bob"})
	readUntilEvent(t, ctx, connB, proto.EventJoinSuccess)

	sendInbound(t, ctx, connA, proto.InboundTypeChat, proto.ChatData{Text: "hi there"})

	frame = readUntilEvent(t, ctx, connB, proto.EventMessage)
	var msg proto.MessagePayload
	if err := json.Unmarshal(frame.Data, &msg); err != nil {
		t.Fatalf("unmarshal message payload: %v", err)
	}
	if msg.User != "alice" || msg.Text != "hi there" || msg.ID == "" {
		t.Fatalf("unexpected message payload: %+v", msg)
	}
}

func TestWebSocketDuplicateUsername(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dialWS(t, ctx, ts)
	sendInbound(t, ctx, connA, proto.InboundTypeJoin, proto.JoinData{Username: "alice"})
	readUntilEvent(t, ctx, connA, proto.EventJoinSuccess)

	connB := dialWS(t, ctx, ts)
	sendInbound(t, ctx, connB, proto.InboundTypeJoin, proto.JoinData{Username: "alice"})

	protoErr := readUntilError(t, ctx, connB)
	if protoErr.Code != core.ErrCodeUsernameTaken {
		t.Fatalf("expected username_taken, got %+v", protoErr)
	}
}

func TestWebSocketRejectsUnknownAndMalformedFrames(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: "selfDestruct"}); err != nil {
		t.Fatalf("send unknown type: %v", err)
	}
	protoErr := readUntilError(t, ctx, conn)
	if protoErr.Code != "invalid_message" {
		t.Fatalf("expected invalid_message, got %+v", protoErr)
	}

	if err := wsjson.Write(ctx, conn, proto.Inbound{
		Type: proto.InboundTypeChat,
		Data: json.RawMessage(`{"text":12345}`),
	}); err != nil {
		t.Fatalf("send malformed payload: %v", err)
	}
	protoErr = readUntilError(t, ctx, conn)
	if protoErr.Code != core.ErrCodeBadRequest {
		t.Fatalf("expected bad_request, got %+v", protoErr)
	}

	// The connection survives both rejections.
	sendInbound(t, ctx, conn, proto.InboundTypeJoin, proto.JoinData{Username: "carol"})
	readUntilEvent(t, ctx, conn, proto.EventJoinSuccess)
}

func TestWebSocketRateLimit(t *testing.T) {
	ts := startTestServer(t, func(cfg *config.Config) {
		cfg.WSMessagesPerMinute = 2
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	sendInbound(t, ctx, conn, proto.InboundTypeJoin, proto.JoinData{Username: "spammer"})
	sendInbound(t, ctx, conn, proto.InboundTypeChat, proto.ChatData{Text: "one"})
	sendInbound(t, ctx, conn, proto.InboundTypeChat, proto.ChatData{Text: "two"})

	protoErr := readUntilError(t, ctx, conn)
	if protoErr.Code != "rate_limited" {
		t.Fatalf("expected rate_limited, got %+v", protoErr)
	}
}
