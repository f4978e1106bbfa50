package domain

import "time"

// JornadaStatus é o estado do ciclo de vida de uma jornada
type JornadaStatus string

const (
	JornadaOpen      JornadaStatus = "open"
	JornadaClosed    JornadaStatus = "closed"
	JornadaCancelled JornadaStatus = "cancelled"
)

// EditWindow é a antecedência mínima, em relação à primeira partida,
// para comprar ou editar cartões
const EditWindow = 10 * time.Minute

// Jornada agrupa as partidas vendidas como uma rodada de apostas.
// Os prêmios chegam como texto livre (ex: "Bs 1.250.000") e só são
// convertidos no momento da liquidação.
type Jornada struct {
	ID               string        `json:"id" bson:"id"`
	Name             string        `json:"name" bson:"name"`
	Status           JornadaStatus `json:"status" bson:"status"`
	FirstPrize       string        `json:"firstPrize" bson:"firstPrize"`
	SecondPrize      string        `json:"secondPrize" bson:"secondPrize"`
	CartonPrice      float64       `json:"cartonPrice" bson:"cartonPrice"`
	Matches          []Match       `json:"matches" bson:"matches"`
	BotinMatchID     string        `json:"botinMatchId,omitempty" bson:"botinMatchId,omitempty"`
	BotinResult      *string       `json:"botinResult,omitempty" bson:"botinResult,omitempty"`
	ResultsProcessed bool          `json:"resultsProcessed" bson:"resultsProcessed"`
}

// Match retorna a partida pelo ID
func (j *Jornada) Match(id string) (*Match, bool) {
	for i := range j.Matches {
		if j.Matches[i].ID == id {
			return &j.Matches[i], true
		}
	}
	return nil, false
}

// AllResultsSet indica se toda partida da jornada tem resultado registrado
func (j *Jornada) AllResultsSet() bool {
	for _, m := range j.Matches {
		if !m.HasResult() {
			return false
		}
	}
	return true
}

// ReadyForSettlement aplica a regra de elegibilidade da liquidação:
// jornada fechada, com partidas, todas com resultado e ainda não processada
func (j *Jornada) ReadyForSettlement() bool {
	return j.Status == JornadaClosed &&
		len(j.Matches) > 0 &&
		j.AllResultsSet() &&
		!j.ResultsProcessed
}

// HasBotin indica se a jornada designa uma partida de Botín
func (j *Jornada) HasBotin() bool { return j.BotinMatchID != "" }

// FirstMatchAt retorna o horário da partida mais cedo da jornada
func (j *Jornada) FirstMatchAt() (time.Time, bool) {
	var first time.Time
	for _, m := range j.Matches {
		if first.IsZero() || m.DateTime.Before(first) {
			first = m.DateTime
		}
	}
	return first, !first.IsZero()
}

// LockDeadline é o instante a partir do qual cartões ficam somente leitura
func (j *Jornada) LockDeadline() (time.Time, bool) {
	first, ok := j.FirstMatchAt()
	if !ok {
		return time.Time{}, false
	}
	return first.Add(-EditWindow), true
}

// AcceptsPlays indica se ainda é possível comprar ou editar cartões em now
func (j *Jornada) AcceptsPlays(now time.Time) bool {
	if j.Status != JornadaOpen {
		return false
	}
	deadline, ok := j.LockDeadline()
	if !ok {
		return false
	}
	return now.Before(deadline)
}
