// Package jornadas concentra as operações administrativas sobre jornadas:
// lançamento de resultados, fechamento e cancelamento.
package jornadas

import (
	"errors"
	"fmt"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

var (
	ErrNotFound         = errors.New("jornada not found")
	ErrAlreadyProcessed = errors.New("jornada already processed")
	ErrCancelled        = errors.New("jornada cancelled")
	ErrUnknownMatch     = errors.New("match does not belong to jornada")
	ErrInvalidOutcome   = errors.New("invalid outcome")
	ErrNotOpen          = errors.New("jornada not open")
)

// RecordResults grava os resultados informados e, opcionalmente, o placar
// do Botín. Quando todas as partidas ficam com resultado a jornada é fechada
// e passa a ser elegível para liquidação. Tudo é validado antes de mutar.
func RecordResults(s *domain.Snapshot, jornadaID string, results map[string]domain.Outcome, botinResult *string) (*domain.Jornada, error) {
	j, err := editable(s, jornadaID)
	if err != nil {
		return nil, err
	}
	for matchID, o := range results {
		if _, ok := j.Match(matchID); !ok {
			return nil, fmt.Errorf("%s: %w", matchID, ErrUnknownMatch)
		}
		if !o.Valid() {
			return nil, fmt.Errorf("match %s outcome %q: %w", matchID, o, ErrInvalidOutcome)
		}
	}

	for matchID, o := range results {
		m, _ := j.Match(matchID)
		o := o
		m.Result = &o
	}
	if botinResult != nil {
		b := *botinResult
		j.BotinResult = &b
	}
	if j.AllResultsSet() && len(j.Matches) > 0 {
		j.Status = domain.JornadaClosed
	}
	return j, nil
}

// Close encerra as vendas da jornada
func Close(s *domain.Snapshot, jornadaID string) (*domain.Jornada, error) {
	j, err := editable(s, jornadaID)
	if err != nil {
		return nil, err
	}
	if j.Status != domain.JornadaOpen {
		return nil, fmt.Errorf("jornada %s is %s: %w", jornadaID, j.Status, ErrNotOpen)
	}
	j.Status = domain.JornadaClosed
	return j, nil
}

// Cancel é terminal; jornadas canceladas nunca são liquidadas
func Cancel(s *domain.Snapshot, jornadaID string) (*domain.Jornada, error) {
	j, err := editable(s, jornadaID)
	if err != nil {
		return nil, err
	}
	j.Status = domain.JornadaCancelled
	return j, nil
}

func editable(s *domain.Snapshot, jornadaID string) (*domain.Jornada, error) {
	j, ok := s.Jornada(jornadaID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", jornadaID, ErrNotFound)
	}
	if j.Status == domain.JornadaCancelled {
		return nil, fmt.Errorf("%s: %w", jornadaID, ErrCancelled)
	}
	if j.ResultsProcessed {
		return nil, fmt.Errorf("%s: %w", jornadaID, ErrAlreadyProcessed)
	}
	return j, nil
}
