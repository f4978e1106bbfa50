package settlement

import "github.com/radieske/tinkazo-platform/internal/domain"

// Scored associa um cartão à sua avaliação
type Scored struct {
	Carton *domain.Carton
	Eval   Evaluation
}

// Tiers separa os ganhadores de cada faixa; os valores são decididos pelo engine
type Tiers struct {
	First  []*domain.Carton
	Second []*domain.Carton
	Botin  []*domain.Carton
}

// Thresholds retorna os acertos exigidos para a 1ª e a 2ª faixa.
// Com uma única partida a 2ª faixa é de zero acertos.
func Thresholds(j *domain.Jornada) (first, second int) {
	first = len(j.Matches)
	return first, first - 1
}

// ResolveTiers classifica os cartões por faixa. Só cartões válidos entram
// na 1ª e 2ª faixa; o Botín depende apenas do placar exato.
func ResolveTiers(scored []Scored, j *domain.Jornada) Tiers {
	var t Tiers
	first, second := Thresholds(j)

	for _, s := range scored {
		if !s.Eval.Valid {
			continue
		}
		switch s.Eval.Hits {
		case first:
			t.First = append(t.First, s.Carton)
		case second:
			t.Second = append(t.Second, s.Carton)
		}
	}

	if j.BotinResult == nil {
		return t
	}
	result, ok := ParseScore(*j.BotinResult)
	if !ok {
		return t
	}
	for _, s := range scored {
		if s.Carton.BotinPrediction == nil {
			continue
		}
		if predicted, ok := predictionScore(s.Carton.BotinPrediction); ok && predicted == result {
			t.Botin = append(t.Botin, s.Carton)
		}
	}
	return t
}
