package chat

import (
	"encoding/json"
	"testing"
	"time"

	"wayfare/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// create fake client
	client := &Client{
		Send: make(chan []byte, 10),
		Room: "group1",
	}

	// register client
	hub.register <- client

	// broadcast a test message
	msg := models.Message{MessageID: "m1", GroupID: "group1", Content: "hello test"}
	data, _ := json.Marshal(msg)
	hub.Broadcast("group1", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	// unregister client
	hub.unregister <- client
}

func TestHubUnregisterDuringBroadcastBurst(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// a tiny buffer forces the broadcast overflow path while the
	// client is dropping out
	client := &Client{Send: make(chan []byte, 1), Room: "g1"}
	hub.register <- client

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			hub.Broadcast("g1", []byte("payload"))
		}
	}()

	hub.unregister <- client
	<-done
}

func TestHubBroadcastIsScopedToRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), Room: "groupA"}
	b := &Client{Send: make(chan []byte, 10), Room: "groupB"}
	hub.register <- a
	hub.register <- b

	hub.Broadcast("groupA", []byte("only-a"))

	select {
	case got := <-a.Send:
		if string(got) != "only-a" {
			t.Fatalf("unexpected payload %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for room A message")
	}

	select {
	case got := <-b.Send:
		t.Fatalf("room B should not receive messages for room A, got %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
