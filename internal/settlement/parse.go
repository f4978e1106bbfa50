package settlement

import (
	"strconv"
	"strings"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

// Score é um placar exato já convertido (local-visitante)
type Score struct {
	Local   int
	Visitor int
}

// ParseScore converte o texto "L-V" do admin. ok=false significa
// "sem comparação possível", nunca erro.
func ParseScore(s string) (Score, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Score{}, false
	}
	local, ok := parseGoals(parts[0])
	if !ok {
		return Score{}, false
	}
	visitor, ok := parseGoals(parts[1])
	if !ok {
		return Score{}, false
	}
	return Score{Local: local, Visitor: visitor}, true
}

// predictionScore converte o placar apostado no cartão
func predictionScore(p *domain.BotinPrediction) (Score, bool) {
	if p == nil {
		return Score{}, false
	}
	local, ok := parseGoals(p.LocalScore)
	if !ok {
		return Score{}, false
	}
	visitor, ok := parseGoals(p.VisitorScore)
	if !ok {
		return Score{}, false
	}
	return Score{Local: local, Visitor: visitor}, true
}

func parseGoals(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseAmount extrai o valor numérico de textos como "Bs 1.250.000":
// descarta tudo que não é dígito e lê o resto como inteiro.
// Texto sem dígitos ou fora do intervalo vira 0.
func ParseAmount(s string) float64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return float64(n)
}

// ValidGoals indica se o texto é um placar inteiro não negativo;
// usado na compra para rejeitar palpites de Botín malformados
func ValidGoals(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	_, ok := parseGoals(s)
	return ok
}
