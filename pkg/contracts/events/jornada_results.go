package events

import "time"

// Evento publicado pela tinkazo-api a cada lançamento de resultados.
// Complete indica que todas as partidas têm resultado e a jornada fechou.
type JornadaResultsPosted struct {
	JornadaID string    `json:"jornadaId"`
	Complete  bool      `json:"complete"`
	Ts        time.Time `json:"ts"`
}
