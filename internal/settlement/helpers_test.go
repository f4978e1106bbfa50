package settlement

import (
	"fmt"
	"time"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

var kickoff = time.Date(2026, 5, 2, 20, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// closedJornada monta uma jornada fechada com um resultado por partida
func closedJornada(id string, results ...domain.Outcome) domain.Jornada {
	j := domain.Jornada{
		ID:          id,
		Name:        "Jornada " + id,
		Status:      domain.JornadaClosed,
		FirstPrize:  "Bs 300",
		SecondPrize: "Bs 100",
		CartonPrice: 10,
	}
	for i, r := range results {
		r := r
		j.Matches = append(j.Matches, domain.Match{
			ID:       fmt.Sprintf("%s-m%d", id, i+1),
			DateTime: kickoff.Add(time.Duration(i) * time.Hour),
			Result:   &r,
		})
	}
	return j
}

// cartonFor cria um cartão com um palpite por partida, na ordem das partidas
func cartonFor(id, userID string, j domain.Jornada, picks ...domain.Outcome) domain.Carton {
	preds := make(map[string]domain.Outcome, len(picks))
	for i, p := range picks {
		preds[j.Matches[i].ID] = p
	}
	return domain.Carton{
		ID:           id,
		UserID:       userID,
		JornadaID:    j.ID,
		Predictions:  preds,
		PurchaseDate: kickoff.Add(-24 * time.Hour),
	}
}

func withBotin(c domain.Carton, local, visitor string) domain.Carton {
	c.BotinPrediction = &domain.BotinPrediction{LocalScore: local, VisitorScore: visitor}
	return c
}

func users(ids ...string) []domain.RegisteredUser {
	out := make([]domain.RegisteredUser, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.RegisteredUser{ID: id, Role: domain.RoleClient})
	}
	return out
}

const (
	H = domain.OutcomeHome
	D = domain.OutcomeDraw
	A = domain.OutcomeAway
)
