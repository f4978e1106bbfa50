package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: ping
type ClientMsg struct {
	Type string `json:"type"`
}

// ServerMsg é o envelope das mensagens enviadas ao cliente
type ServerMsg struct {
	Type    string                `json:"type"` // jackpot | pong
	Jackpot *events.JackpotUpdate `json:"jackpot,omitempty"`
}

// Hub mantém as conexões do feed de acumulados. Todo cliente conectado
// recebe todas as atualizações.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	conns    map[*websocket.Conn]*sync.Mutex // mutex de escrita por conexão

	// Current devolve o último valor conhecido, enviado logo após o handshake
	Current func(r *http.Request) (events.JackpotUpdate, bool)
}

// NewHub cria uma instância de Hub com política customizada de origem (CORS)
func NewHub(log *zap.Logger, allowOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		conns:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// HandleWS gerencia o ciclo de vida de uma conexão WebSocket
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wmu := &sync.Mutex{}
	h.mu.Lock()
	h.conns[conn] = wmu
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
	}()

	if h.Current != nil {
		if cur, ok := h.Current(r); ok {
			h.write(conn, wmu, ServerMsg{Type: "jackpot", Jackpot: &cur})
		}
	}

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type == "ping" {
			h.write(conn, wmu, ServerMsg{Type: "pong"})
		}
	}
}

// Broadcast envia a atualização para todos os clientes conectados
func (h *Hub) Broadcast(u events.JackpotUpdate) {
	h.mu.RLock()
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.conns))
	for c, m := range h.conns {
		targets[c] = m
	}
	h.mu.RUnlock()

	for c, m := range targets {
		h.write(c, m, ServerMsg{Type: "jackpot", Jackpot: &u})
	}
}

// Clients retorna o número de conexões abertas
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) write(c *websocket.Conn, m *sync.Mutex, msg ServerMsg) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	m.Lock()
	defer m.Unlock()
	if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
		h.log.Debug("ws write failed", zap.Error(err))
	}
}
