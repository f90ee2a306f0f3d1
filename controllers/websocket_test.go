package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubPublishesToClientSockets(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(r.URL.Query().Get("client"), ws)
	}))
	defer srv.Close()
	defer hub.Close()

	dial := func(client string) *websocket.Conn {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?client=" + client
		ws, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		return ws
	}

	a := dial("a")
	defer a.Close()
	b := dial("b")
	defer b.Close()

	deadline := time.Now().Add(2 * time.Second)
	for (hub.Connections("a") != 1 || hub.Connections("b") != 1) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Connections("a") != 1 {
		t.Fatalf("client a has %d sockets", hub.Connections("a"))
	}

	hub.Publish("a", `<div id="memesContainer" hx-swap-oob="true"></div>`)

	a.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := a.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg), "memesContainer") {
		t.Fatalf("message = %s", msg)
	}

	b.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := b.ReadMessage(); err == nil {
		t.Fatal("client b received a message meant for a")
	}
}
