package events

import "time"

// Evento emitido pelo settlement-worker após liquidar uma jornada.
type JornadaSettled struct {
	JornadaID         string    `json:"jornadaId"`
	Gordito           bool      `json:"gordito"`
	Cartons           int       `json:"cartons"`
	InvalidCartons    int       `json:"invalidCartons"`
	FirstTierWinners  int       `json:"firstTierWinners"`
	SecondTierWinners int       `json:"secondTierWinners"`
	BotinWinners      int       `json:"botinWinners"`
	RolledOver        float64   `json:"rolledOver"`
	BotinPaid         float64   `json:"botinPaid"`
	BotinAfter        float64   `json:"botinAfter"`
	StateVersion      int64     `json:"stateVersion"`
	Ts                time.Time `json:"ts"`
}
