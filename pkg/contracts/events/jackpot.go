package events

import "time"

// JackpotUpdate é o payload do cache e do canal de broadcast dos acumulados
type JackpotUpdate struct {
	BotinAmount      float64   `json:"botinAmount"`
	GorditoJornadaID string    `json:"gorditoJornadaId,omitempty"`
	GorditoAmount    string    `json:"gorditoAmount,omitempty"`
	StateVersion     int64     `json:"stateVersion"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
