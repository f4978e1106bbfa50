package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) ServerMsg {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMsg
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHub_SendsCurrentOnConnect(t *testing.T) {
	hub := NewHub(zap.NewNop(), func(*http.Request) bool { return true })
	hub.Current = func(*http.Request) (events.JackpotUpdate, bool) {
		return events.JackpotUpdate{BotinAmount: 1200, StateVersion: 4}, true
	}
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	conn := dial(t, srv)
	msg := readMsg(t, conn)
	assert.Equal(t, "jackpot", msg.Type)
	require.NotNil(t, msg.Jackpot)
	assert.Equal(t, 1200.0, msg.Jackpot.BotinAmount)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	assert.Equal(t, "pong", readMsg(t, conn).Type)
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(zap.NewNop(), func(*http.Request) bool { return true })
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	a, b := dial(t, srv), dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(events.JackpotUpdate{BotinAmount: 56, GorditoJornadaID: "j9", StateVersion: 7})
	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMsg(t, conn)
		require.NotNil(t, msg.Jackpot)
		assert.Equal(t, 56.0, msg.Jackpot.BotinAmount)
		assert.Equal(t, "j9", msg.Jackpot.GorditoJornadaID)
	}

	require.NoError(t, a.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
}
