package main

import (
	"context"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/foodchain/config"
	"github.com/pthm-cable/foodchain/game"
)

type reportHeader struct {
	Day   int    `json:"day"`
	Error string `json:"error"`
	Rows  []struct {
		ID string `json:"id"`
	} `json:"rows"`
}

func TestHubStreamsReports(t *testing.T) {
	w := game.NewWorld(config.Default(), rand.New(rand.NewSource(3)))
	w.Populate()
	start := w.Day()
	player := game.NewPlayer(w)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := newHub(player)
	go player.Run(ctx)
	go h.broadcast(ctx)

	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	read := func() reportHeader {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var r reportHeader
		if err := conn.ReadJSON(&r); err != nil {
			t.Fatalf("read: %v", err)
		}
		return r
	}

	first := read()
	if first.Day != start || len(first.Rows) == 0 {
		t.Fatalf("expected the populated day %d, got day %d with %d rows", start, first.Day, len(first.Rows))
	}

	if err := conn.WriteJSON(command{Type: "step", N: 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if r := read(); r.Day != start+2 {
		t.Errorf("expected day %d after stepping, got %d", start+2, r.Day)
	}

	if err := conn.WriteJSON(command{Type: "jump"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if r := read(); !strings.Contains(r.Error, "unknown command") {
		t.Errorf("expected an unknown command error, got %+v", r)
	}
}

func TestApplyDefaultsStepToOne(t *testing.T) {
	w := game.NewWorld(config.Default(), rand.New(rand.NewSource(4)))
	player := game.NewPlayer(w)
	h := newHub(player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go player.Run(ctx)
	<-player.Reports()

	if err := h.apply(command{Type: "step"}); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-player.Reports():
		if r.Day != 1 {
			t.Errorf("expected day 1, got %d", r.Day)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the step")
	}
}
