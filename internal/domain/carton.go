package domain

import "time"

// BotinPrediction é o placar exato apostado na partida de Botín.
// Os placares ficam como texto porque chegam do formulário sem validação.
type BotinPrediction struct {
	LocalScore   string `json:"localScore" bson:"localScore"`
	VisitorScore string `json:"visitorScore" bson:"visitorScore"`
}

// TierPrize marca um prêmio de faixa (1 ou 2) da própria jornada
type TierPrize struct {
	Tier         int `json:"tier" bson:"tier"`
	WinnersCount int `json:"winnersCount" bson:"winnersCount"`
}

// PoolPrize marca um prêmio de bolsa (Gordito ou Botín)
type PoolPrize struct {
	WinnersCount int `json:"winnersCount" bson:"winnersCount"`
}

// PrizeDetails registra quais prêmios o cartão ganhou
type PrizeDetails struct {
	Jornada *TierPrize `json:"jornada,omitempty" bson:"jornada,omitempty"`
	Gordito *PoolPrize `json:"gordito,omitempty" bson:"gordito,omitempty"`
	Botin   *PoolPrize `json:"botin,omitempty" bson:"botin,omitempty"`
}

// Empty indica que nenhum prêmio foi marcado
func (d *PrizeDetails) Empty() bool {
	return d == nil || (d.Jornada == nil && d.Gordito == nil && d.Botin == nil)
}

// Carton é um bilhete de prognósticos comprado para uma jornada.
// Hits, PrizeWon e PrizeDetails são escritos apenas pela liquidação.
type Carton struct {
	ID              string             `json:"id" bson:"id"`
	UserID          string             `json:"userId" bson:"userId"`
	JornadaID       string             `json:"jornadaId" bson:"jornadaId"`
	Predictions     map[string]Outcome `json:"predictions" bson:"predictions"`
	BotinPrediction *BotinPrediction   `json:"botinPrediction,omitempty" bson:"botinPrediction,omitempty"`
	PurchaseDate    time.Time          `json:"purchaseDate" bson:"purchaseDate"`
	Hits            *int               `json:"hits,omitempty" bson:"hits,omitempty"`
	PrizeWon        *float64           `json:"prizeWon,omitempty" bson:"prizeWon,omitempty"`
	PrizeDetails    *PrizeDetails      `json:"prizeDetails,omitempty" bson:"prizeDetails,omitempty"`
}

// Settled indica se a liquidação já escreveu os campos de resultado
func (c *Carton) Settled() bool { return c.Hits != nil }

// Prize retorna o prêmio acumulado, zero quando ausente
func (c *Carton) Prize() float64 {
	if c.PrizeWon == nil {
		return 0
	}
	return *c.PrizeWon
}
