package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/jornadas"
	"github.com/radieske/tinkazo-platform/internal/ledger"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/dto"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

// getJornada retorna a jornada com partidas e resultados
func (s *Server) getJornada(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	j, ok := snap.Jornada(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "jornada not found"})
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// recordResults grava resultados e avisa o worker de liquidação
func (s *Server) recordResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.RecordResultsRequest
	if !s.decode(w, r, &req) {
		return
	}
	results := make(map[string]domain.Outcome, len(req.Results))
	for matchID, o := range req.Results {
		results[matchID] = domain.Outcome(o)
	}

	var out domain.Jornada
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		j, err := jornadas.RecordResults(snap, id, results, req.BotinResult)
		if err != nil {
			return err
		}
		out = *j
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	ev := events.JornadaResultsPosted{JornadaID: id, Complete: out.ReadyForSettlement(), Ts: s.Now()}
	if err := s.pub.PublishResults(r.Context(), ev); err != nil {
		// a varredura do worker cobre eventos perdidos
		s.log.Warn("publish jornada_results failed", zap.String("jornada_id", id), zap.Error(err))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) closeJornada(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var out domain.Jornada
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		j, err := jornadas.Close(snap, id)
		if err != nil {
			return err
		}
		out = *j
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if out.ReadyForSettlement() {
		ev := events.JornadaResultsPosted{JornadaID: id, Complete: true, Ts: s.Now()}
		if err := s.pub.PublishResults(r.Context(), ev); err != nil {
			s.log.Warn("publish jornada_results failed", zap.String("jornada_id", id), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) cancelJornada(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var out domain.Jornada
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		j, err := jornadas.Cancel(snap, id)
		if err != nil {
			return err
		}
		out = *j
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getJackpot(w http.ResponseWriter, r *http.Request) {
	u, err := s.currentJackpot(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// houseReport é só leitura; o lucro não alimenta nenhuma bolsa
func (s *Server) houseReport(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ledger.HouseProfit(snap))
}
