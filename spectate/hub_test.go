package spectate

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gscroll/level"
	"gscroll/sim"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(Config{Logger: log.New(io.Discard, "", 0)})
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) stateMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg stateMessage
	require.NoError(t, json.Unmarshal(payload, &msg))
	return msg
}

func TestBroadcastReachesViewer(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	s := sim.New(level.Default())
	s.Step(1.0/60, sim.Input{Right: true})
	hub.Broadcast(s.Snapshot())

	msg := readState(t, conn)
	assert.Equal(t, "state", msg.Type)
	assert.Equal(t, uint64(1), msg.Snapshot.Tick)
	assert.InDelta(t, 106.0, msg.Snapshot.Player.Box.X, 1e-9)
	assert.Equal(t, sim.PlayerWalk, msg.Snapshot.Player.Visual)
	assert.Len(t, msg.Snapshot.Enemies, len(s.Enemies))
}

func TestLateViewerGetsLastSnapshot(t *testing.T) {
	hub, srv := newTestHub(t)

	s := sim.New(level.Default())
	s.Lost = true
	hub.Broadcast(s.Snapshot())

	conn := dial(t, srv)
	msg := readState(t, conn)
	assert.True(t, msg.Snapshot.Lost)
}

func TestDisconnectedViewerIsRemoved(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestBroadcastWithoutViewers(t *testing.T) {
	hub := NewHub(Config{Logger: log.New(io.Discard, "", 0)})
	assert.NotPanics(t, func() {
		hub.Broadcast(sim.New(level.Default()).Snapshot())
	})
	assert.Equal(t, 0, hub.Count())
}
