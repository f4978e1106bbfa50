package domain

import "time"

// Match representa uma partida de uma jornada.
// Result fica nil até o admin registrar o resultado.
type Match struct {
	ID            string    `json:"id" bson:"id"`
	LocalTeamID   string    `json:"localTeamId" bson:"localTeamId"`
	VisitorTeamID string    `json:"visitorTeamId" bson:"visitorTeamId"`
	DateTime      time.Time `json:"dateTime" bson:"dateTime"`
	Result        *Outcome  `json:"result,omitempty" bson:"result,omitempty"`
}

// HasResult indica se o resultado da partida já foi registrado
func (m Match) HasResult() bool { return m.Result != nil }
