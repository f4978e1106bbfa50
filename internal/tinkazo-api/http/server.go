package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/radieske/tinkazo-platform/internal/cartons"
	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/jackpot"
	"github.com/radieske/tinkazo-platform/internal/jornadas"
	"github.com/radieske/tinkazo-platform/internal/ledger"
	"github.com/radieske/tinkazo-platform/internal/store"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/dto"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/ws"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

// Publisher publica os eventos gerados pela API
type Publisher interface {
	PublishResults(ctx context.Context, e events.JornadaResultsPosted) error
	PublishBalance(ctx context.Context, e events.BalanceChanged) error
}

// JackpotReader lê os acumulados em cache
type JackpotReader interface {
	GetCurrent(ctx context.Context) (events.JackpotUpdate, bool, error)
}

// Server expõe a API pública da Tinkazo sobre o snapshot de estado.
// Toda escrita passa por store.Update, então é validada antes de mutar e
// gravada com checagem de versão.
type Server struct {
	log      *zap.Logger
	store    store.Store
	pub      Publisher
	jackpot  JackpotReader
	hub      *ws.Hub
	validate *validator.Validate

	Now      func() time.Time
	OnLedger func(op string) // métricas por operação de saldo
}

// NewServer instancia o servidor; jackpot e hub podem ser nil
func NewServer(log *zap.Logger, st store.Store, pub Publisher, jp JackpotReader, hub *ws.Hub) *Server {
	s := &Server{
		log:      log,
		store:    st,
		pub:      pub,
		jackpot:  jp,
		hub:      hub,
		validate: dto.NewValidator(),
		Now:      time.Now,
	}
	if hub != nil {
		hub.Current = func(r *http.Request) (events.JackpotUpdate, bool) {
			u, err := s.currentJackpot(r.Context())
			return u, err == nil
		}
	}
	return s
}

// Router retorna o roteador HTTP com os endpoints REST e o feed websocket
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withCORS)

	r.Get("/v1/jackpot", s.getJackpot)
	r.Get("/v1/reports/house", s.houseReport)

	r.Route("/v1/jornadas/{id}", func(r chi.Router) {
		r.Get("/", s.getJornada)
		r.Post("/results", s.recordResults)
		r.Post("/close", s.closeJornada)
		r.Post("/cancel", s.cancelJornada)
	})

	r.Post("/v1/cartons", s.purchaseCarton)
	r.Get("/v1/cartons/{id}", s.getCarton)
	r.Put("/v1/cartons/{id}/predictions", s.updatePredictions)

	r.Get("/v1/users/{id}/balance", s.getBalance)

	r.Post("/v1/recharges", s.requestRecharge)
	r.Post("/v1/recharges/{id}/approve", s.approveRecharge)
	r.Post("/v1/recharges/{id}/reject", s.rejectRecharge)

	r.Post("/v1/seller-recharges", s.requestSellerRecharge)
	r.Post("/v1/seller-recharges/{id}/approve", s.approveSellerRecharge)
	r.Post("/v1/seller-recharges/{id}/reject", s.rejectSellerRecharge)

	r.Post("/v1/withdrawals", s.requestWithdrawal)
	r.Post("/v1/withdrawals/{id}/approve", s.approveWithdrawal)
	r.Post("/v1/withdrawals/{id}/reject", s.rejectWithdrawal)

	if s.hub != nil {
		r.Get("/ws/jackpot", s.hub.HandleWS)
	}
	return r
}

// update aplica fn sobre o estado atual e persiste
func (s *Server) update(ctx context.Context, fn func(*domain.Snapshot) error) (*domain.Snapshot, error) {
	return store.Update(ctx, s.store, fn)
}

func (s *Server) currentJackpot(ctx context.Context) (events.JackpotUpdate, error) {
	if s.jackpot != nil {
		u, ok, err := s.jackpot.GetCurrent(ctx)
		if err != nil {
			s.log.Warn("jackpot cache read failed", zap.Error(err))
		} else if ok {
			return u, nil
		}
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		return events.JackpotUpdate{}, err
	}
	return jackpot.FromSnapshot(snap, s.Now()), nil
}

// decode lê o corpo JSON e valida as tags do DTO
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (s *Server) publishBalances(ctx context.Context, list ...events.BalanceChanged) {
	for _, e := range list {
		if e.Ts.IsZero() {
			e.Ts = s.Now()
		}
		if err := s.pub.PublishBalance(ctx, e); err != nil {
			s.log.Warn("publish balance_changed failed", zap.String("user_id", e.UserID), zap.Error(err))
		}
	}
}

func (s *Server) ledgerOp(op string) {
	if s.OnLedger != nil {
		s.OnLedger(op)
	}
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError traduz erros de domínio para status HTTP
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, jornadas.ErrNotFound),
		errors.Is(err, cartons.ErrNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrAlreadyProcessed),
		errors.Is(err, jornadas.ErrAlreadyProcessed),
		errors.Is(err, jornadas.ErrCancelled),
		errors.Is(err, jornadas.ErrNotOpen),
		errors.Is(err, cartons.ErrCartonLocked),
		errors.Is(err, cartons.ErrJornadaNotOpen):
		return http.StatusConflict
	case errors.Is(err, cartons.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrNotSeller),
		errors.Is(err, cartons.ErrInvalidPredictions),
		errors.Is(err, jornadas.ErrUnknownMatch),
		errors.Is(err, jornadas.ErrInvalidOutcome):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrVersionConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
