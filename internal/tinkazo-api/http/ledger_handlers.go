package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/ledger"
	"github.com/radieske/tinkazo-platform/internal/tinkazo-api/dto"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	u, ok := snap.User(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, dto.BalanceResponse{UserID: u.ID, Balance: u.Balance})
}

func (s *Server) requestRecharge(w http.ResponseWriter, r *http.Request) {
	var req dto.RechargeRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.Now()
	var out domain.RechargeRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		rr, err := ledger.RequestRecharge(snap, req.UserID, req.Amount, req.Reference, now)
		if err != nil {
			return err
		}
		out = *rr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// approveRecharge credita valor e, para vendedores, a comissão
func (s *Server) approveRecharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var (
		out     domain.RechargeRequest
		balance float64
	)
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		rr, err := ledger.ApproveRecharge(snap, id, now)
		if err != nil {
			return err
		}
		out = *rr
		u, _ := snap.User(rr.UserID)
		balance = u.Balance
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.ledgerOp("recharge")
	s.publishBalances(r.Context(), events.BalanceChanged{
		UserID:     out.UserID,
		Amount:     out.Amount + out.Commission,
		NewBalance: balance,
		Reason:     events.ReasonRecharge,
		Ref:        out.ID,
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) rejectRecharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var out domain.RechargeRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		rr, err := ledger.RejectRecharge(snap, id, now)
		if err != nil {
			return err
		}
		out = *rr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) requestSellerRecharge(w http.ResponseWriter, r *http.Request) {
	var req dto.SellerRechargeRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.Now()
	var out domain.SellerRechargeRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		sr, err := ledger.RequestSellerRecharge(snap, req.SellerID, req.ClientID, req.Amount, now)
		if err != nil {
			return err
		}
		out = *sr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// approveSellerRecharge transfere saldo do vendedor para o cliente
func (s *Server) approveSellerRecharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var (
		out                  domain.SellerRechargeRequest
		sellerBal, clientBal float64
	)
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		sr, err := ledger.ApproveSellerRecharge(snap, id, now)
		if err != nil {
			return err
		}
		out = *sr
		seller, _ := snap.User(sr.SellerID)
		client, _ := snap.User(sr.ClientID)
		sellerBal, clientBal = seller.Balance, client.Balance
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.ledgerOp("seller_transfer")
	s.publishBalances(r.Context(),
		events.BalanceChanged{UserID: out.SellerID, Amount: -out.Amount, NewBalance: sellerBal, Reason: events.ReasonSellerTransfer, Ref: out.ID},
		events.BalanceChanged{UserID: out.ClientID, Amount: out.Amount, NewBalance: clientBal, Reason: events.ReasonSellerTransfer, Ref: out.ID},
	)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) rejectSellerRecharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var out domain.SellerRechargeRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		sr, err := ledger.RejectSellerRecharge(snap, id, now)
		if err != nil {
			return err
		}
		out = *sr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) requestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRequest
	if !s.decode(w, r, &req) {
		return
	}
	now := s.Now()
	var out domain.WithdrawalRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		wr, err := ledger.RequestWithdrawal(snap, req.UserID, req.Amount, now)
		if err != nil {
			return err
		}
		out = *wr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// approveWithdrawal debita o saque; saldo insuficiente responde 409
func (s *Server) approveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var (
		out     domain.WithdrawalRequest
		balance float64
	)
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		wr, err := ledger.ApproveWithdrawal(snap, id, now)
		if err != nil {
			return err
		}
		out = *wr
		u, _ := snap.User(wr.UserID)
		balance = u.Balance
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.ledgerOp("withdrawal")
	s.publishBalances(r.Context(), events.BalanceChanged{
		UserID:     out.UserID,
		Amount:     -out.Amount,
		NewBalance: balance,
		Reason:     events.ReasonWithdrawal,
		Ref:        out.ID,
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) rejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	now := s.Now()
	var out domain.WithdrawalRequest
	_, err := s.update(r.Context(), func(snap *domain.Snapshot) error {
		wr, err := ledger.RejectWithdrawal(snap, id, now)
		if err != nil {
			return err
		}
		out = *wr
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
