package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wayfare/models"

	"github.com/gorilla/websocket"
)

func TestHistoryPrecedesLiveMessages(t *testing.T) {
	history := []models.Message{
		{MessageID: "m1", GroupID: "g1", Content: "first", Timestamp: 1},
		{MessageID: "m2", GroupID: "g1", Content: "second", Timestamp: 2},
	}

	clients := make(chan *Client, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &Client{Conn: conn, Send: make(chan []byte, 4), Room: "g1"}
		clients <- c
		writePump(c, history)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	client := <-clients
	client.Send <- []byte(`{"messageid":"live"}`)

	for _, want := range []string{"m1", "m2"} {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		var got models.Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got.MessageID != want {
			t.Fatalf("message id = %q, want %q", got.MessageID, want)
		}
	}

	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "live") {
		t.Fatalf("expected the live message after history, got %s", data)
	}

	close(client.Send)
}
