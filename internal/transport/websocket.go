package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const defaultBridgeURL = "ws://localhost:3001"

// WebSocket delivers results as JSON text frames to a posting bridge, the
// same shape a Node.js poster process consumes.
type WebSocket struct {
	URL   string
	Token string

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWebSocket creates a websocket transport.
func NewWebSocket(url, token string) *WebSocket {
	if url == "" {
		url = defaultBridgeURL
	}
	return &WebSocket{URL: url, Token: token}
}

// Name identifies the transport.
func (w *WebSocket) Name() string { return "websocket" }

// Init dials the bridge.
func (w *WebSocket) Init(ctx context.Context) error {
	header := http.Header{}
	if w.Token != "" {
		header.Set("Authorization", "Bearer "+w.Token)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, w.URL, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", w.URL, err)
	}
	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()
	return nil
}

// Deliver writes one post frame.
func (w *WebSocket) Deliver(ctx context.Context, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return fmt.Errorf("websocket not connected")
	}
	payload, _ := json.Marshal(map[string]string{"type": "post", "text": text})
	if err := w.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write to %s: %w", w.URL, err)
	}
	return nil
}

// Close closes the connection if one was established.
func (w *WebSocket) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}
