package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/tinkazo-platform/internal/cartons"
	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/dto"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

func toPlay(preds map[string]string, botin *dto.BotinPrediction) cartons.Play {
	p := cartons.Play{Predictions: make(map[string]domain.Outcome, len(preds))}
	for matchID, o := range preds {
		p.Predictions[matchID] = domain.Outcome(o)
	}
	if botin != nil {
		p.BotinPrediction = &domain.BotinPrediction{LocalScore: botin.LocalScore, VisitorScore: botin.VisitorScore}
	}
	return p
}

// purchaseCarton debita o preço da jornada e cria o cartão
func (s *Server) purchaseCarton(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseCartonRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.Now()

	var (
		out     domain.Carton
		price   float64
		balance float64
	)
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		c, err := cartons.Purchase(snap, req.UserID, req.JornadaID, toPlay(req.Predictions, req.BotinPrediction), now)
		if err != nil {
			return err
		}
		out = *c
		j, _ := snap.Jornada(req.JornadaID)
		u, _ := snap.User(req.UserID)
		price, balance = j.CartonPrice, u.Balance
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.ledgerOp("purchase")
	s.publishBalances(r.Context(), events.BalanceChanged{
		UserID:     req.UserID,
		Amount:     -price,
		NewBalance: balance,
		Reason:     events.ReasonPurchase,
		Ref:        out.ID,
	})
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) getCarton(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, ok := snap.Carton(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "carton not found"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// updatePredictions troca os palpites dentro da janela de edição
func (s *Server) updatePredictions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.UpdatePredictionsRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.Now()

	var out domain.Carton
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		c, err := cartons.UpdatePredictions(snap, id, req.UserID, toPlay(req.Predictions, req.BotinPrediction), now)
		if err != nil {
			return err
		}
		out = *c
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
