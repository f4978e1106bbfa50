// Package cartons implementa a compra de cartões e a janela de edição dos
// palpites.
package cartons

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/ledger"
	"github.com/radieske/tinkazo-platform/internal/settlement"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrJornadaNotOpen     = errors.New("jornada not open")
	ErrCartonLocked       = errors.New("carton locked")
	ErrInvalidPredictions = errors.New("invalid predictions")
	ErrNotOwner           = errors.New("carton belongs to another user")
)

// Play é o conjunto de palpites enviado na compra ou na edição
type Play struct {
	Predictions     map[string]domain.Outcome
	BotinPrediction *domain.BotinPrediction
}

// Purchase debita o preço da jornada e registra um cartão novo. Nada é
// alterado se qualquer validação ou o débito falhar.
func Purchase(s *domain.Snapshot, userID, jornadaID string, p Play, now time.Time) (*domain.Carton, error) {
	j, ok := s.Jornada(jornadaID)
	if !ok {
		return nil, fmt.Errorf("jornada %s: %w", jornadaID, ErrNotFound)
	}
	if err := checkWindow(j, now); err != nil {
		return nil, err
	}
	if err := validate(j, p); err != nil {
		return nil, err
	}
	u, ok := s.User(userID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err := ledger.Debit(u, j.CartonPrice); err != nil {
		return nil, err
	}

	c := domain.Carton{
		ID:              uuid.New().String(),
		UserID:          userID,
		JornadaID:       jornadaID,
		Predictions:     copyPredictions(p.Predictions),
		BotinPrediction: copyBotin(p.BotinPrediction),
		PurchaseDate:    now,
	}
	s.Cartons = append(s.Cartons, c)
	return &s.Cartons[len(s.Cartons)-1], nil
}

// UpdatePredictions troca os palpites de um cartão do próprio usuário
// enquanto a jornada aceita jogadas. Não mexe em saldo.
func UpdatePredictions(s *domain.Snapshot, cartonID, userID string, p Play, now time.Time) (*domain.Carton, error) {
	c, ok := s.Carton(cartonID)
	if !ok {
		return nil, fmt.Errorf("carton %s: %w", cartonID, ErrNotFound)
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("carton %s: %w", cartonID, ErrNotOwner)
	}
	j, ok := s.Jornada(c.JornadaID)
	if !ok {
		return nil, fmt.Errorf("jornada %s: %w", c.JornadaID, ErrNotFound)
	}
	if err := checkWindow(j, now); err != nil {
		return nil, err
	}
	if err := validate(j, p); err != nil {
		return nil, err
	}
	c.Predictions = copyPredictions(p.Predictions)
	c.BotinPrediction = copyBotin(p.BotinPrediction)
	return c, nil
}

func checkWindow(j *domain.Jornada, now time.Time) error {
	if j.Status != domain.JornadaOpen {
		return fmt.Errorf("jornada %s is %s: %w", j.ID, j.Status, ErrJornadaNotOpen)
	}
	if !j.AcceptsPlays(now) {
		return fmt.Errorf("jornada %s: %w", j.ID, ErrCartonLocked)
	}
	return nil
}

// validate exige exatamente um resultado válido por partida e, quando a
// jornada tem partida de Botín, um placar com dois inteiros não negativos
func validate(j *domain.Jornada, p Play) error {
	if len(p.Predictions) != len(j.Matches) {
		return fmt.Errorf("%d predictions for %d matches: %w", len(p.Predictions), len(j.Matches), ErrInvalidPredictions)
	}
	for _, m := range j.Matches {
		o, ok := p.Predictions[m.ID]
		if !ok {
			return fmt.Errorf("missing match %s: %w", m.ID, ErrInvalidPredictions)
		}
		if !o.Valid() {
			return fmt.Errorf("match %s outcome %q: %w", m.ID, o, ErrInvalidPredictions)
		}
	}

	switch {
	case j.HasBotin() && p.BotinPrediction == nil:
		return fmt.Errorf("botin prediction required: %w", ErrInvalidPredictions)
	case !j.HasBotin() && p.BotinPrediction != nil:
		return fmt.Errorf("jornada %s has no botin match: %w", j.ID, ErrInvalidPredictions)
	case p.BotinPrediction != nil:
		if !settlement.ValidGoals(p.BotinPrediction.LocalScore) || !settlement.ValidGoals(p.BotinPrediction.VisitorScore) {
			return fmt.Errorf("botin score %s-%s: %w", p.BotinPrediction.LocalScore, p.BotinPrediction.VisitorScore, ErrInvalidPredictions)
		}
	}
	return nil
}

func copyPredictions(in map[string]domain.Outcome) map[string]domain.Outcome {
	out := make(map[string]domain.Outcome, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyBotin(b *domain.BotinPrediction) *domain.BotinPrediction {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
