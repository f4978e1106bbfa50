package settlement

import "github.com/radieske/tinkazo-platform/internal/domain"

// Evaluation é o resultado da avaliação de um cartão contra a jornada
type Evaluation struct {
	Hits  int
	Valid bool
}

// Evaluate conta os acertos do cartão e valida o palpite de Botín.
// Pré-condição: todas as partidas da jornada já têm resultado.
//
// Se o cartão apostou no Botín e a jornada tem resultado de Botín, o placar
// precisa bater exatamente; caso contrário (ou se algum lado não converter)
// o cartão inteiro fica inválido e hits=0.
func Evaluate(c *domain.Carton, j *domain.Jornada) Evaluation {
	if c.BotinPrediction != nil && j.BotinResult != nil {
		result, ok := ParseScore(*j.BotinResult)
		if !ok {
			return Evaluation{}
		}
		predicted, ok := predictionScore(c.BotinPrediction)
		if !ok || predicted != result {
			return Evaluation{}
		}
	}

	hits := 0
	for _, m := range j.Matches {
		if m.Result == nil {
			continue
		}
		if p, ok := c.Predictions[m.ID]; ok && p == *m.Result {
			hits++
		}
	}
	return Evaluation{Hits: hits, Valid: true}
}
