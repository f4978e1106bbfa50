package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

var ErrNotSeller = errors.New("user is not a seller")

// RequestRecharge registra uma recarga pendente para o usuário
func RequestRecharge(s *domain.Snapshot, userID string, amount float64, reference string, now time.Time) (*domain.RechargeRequest, error) {
	if err := checkPositive(amount); err != nil {
		return nil, err
	}
	if _, ok := s.User(userID); !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	s.Recharges = append(s.Recharges, domain.RechargeRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Reference: reference,
		Status:    domain.RequestPending,
		CreatedAt: now,
	})
	return &s.Recharges[len(s.Recharges)-1], nil
}

// ApproveRecharge credita a recarga. Vendedores recebem também a comissão
// configurada no snapshot.
func ApproveRecharge(s *domain.Snapshot, id string, now time.Time) (*domain.RechargeRequest, error) {
	r, ok := s.Recharge(id)
	if !ok {
		return nil, fmt.Errorf("recharge %s: %w", id, ErrNotFound)
	}
	if r.Status != domain.RequestPending {
		return nil, fmt.Errorf("recharge %s is %s: %w", id, r.Status, ErrAlreadyProcessed)
	}
	u, ok := s.User(r.UserID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", r.UserID, ErrNotFound)
	}

	var commission float64
	if u.Role == domain.RoleSeller {
		commission = Commission(r.Amount, s.SellerCommissionPct)
	}
	if err := Credit(u, r.Amount+commission); err != nil {
		return nil, err
	}
	r.Commission = commission
	r.Status = domain.RequestApproved
	r.ProcessedAt = &now
	return r, nil
}

// RejectRecharge só muda o estado; nenhum saldo é tocado
func RejectRecharge(s *domain.Snapshot, id string, now time.Time) (*domain.RechargeRequest, error) {
	r, ok := s.Recharge(id)
	if !ok {
		return nil, fmt.Errorf("recharge %s: %w", id, ErrNotFound)
	}
	if r.Status != domain.RequestPending {
		return nil, fmt.Errorf("recharge %s is %s: %w", id, r.Status, ErrAlreadyProcessed)
	}
	r.Status = domain.RequestRejected
	r.ProcessedAt = &now
	return r, nil
}

// Commission calcula amount × pct/100 arredondado a centavos
func Commission(amount, pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// RequestSellerRecharge registra uma transferência pendente de vendedor para cliente
func RequestSellerRecharge(s *domain.Snapshot, sellerID, clientID string, amount float64, now time.Time) (*domain.SellerRechargeRequest, error) {
	if err := checkPositive(amount); err != nil {
		return nil, err
	}
	seller, ok := s.User(sellerID)
	if !ok {
		return nil, fmt.Errorf("seller %s: %w", sellerID, ErrNotFound)
	}
	if seller.Role != domain.RoleSeller {
		return nil, fmt.Errorf("user %s: %w", sellerID, ErrNotSeller)
	}
	if _, ok := s.User(clientID); !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	s.SellerRecharges = append(s.SellerRecharges, domain.SellerRechargeRequest{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		ClientID:  clientID,
		Amount:    amount,
		Status:    domain.RequestPending,
		CreatedAt: now,
	})
	return &s.SellerRecharges[len(s.SellerRecharges)-1], nil
}

// ApproveSellerRecharge debita o vendedor e credita o cliente no mesmo valor.
// Saldo insuficiente do vendedor aborta sem alterar nenhum dos dois.
func ApproveSellerRecharge(s *domain.Snapshot, id string, now time.Time) (*domain.SellerRechargeRequest, error) {
	r, ok := s.SellerRecharge(id)
	if !ok {
		return nil, fmt.Errorf("seller recharge %s: %w", id, ErrNotFound)
	}
	if r.Status != domain.RequestPending {
		return nil, fmt.Errorf("seller recharge %s is %s: %w", id, r.Status, ErrAlreadyProcessed)
	}
	seller, ok := s.User(r.SellerID)
	if !ok {
		return nil, fmt.Errorf("seller %s: %w", r.SellerID, ErrNotFound)
	}
	client, ok := s.User(r.ClientID)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", r.ClientID, ErrNotFound)
	}
	if err := Debit(seller, r.Amount); err != nil {
		return nil, err
	}
	if err := Credit(client, r.Amount); err != nil {
		seller.Balance += r.Amount // desfaz o débito
		return nil, err
	}
	r.Status = domain.RequestApproved
	r.ProcessedAt = &now
	return r, nil
}

func RejectSellerRecharge(s *domain.Snapshot, id string, now time.Time) (*domain.SellerRechargeRequest, error) {
	r, ok := s.SellerRecharge(id)
	if !ok {
		return nil, fmt.Errorf("seller recharge %s: %w", id, ErrNotFound)
	}
	if r.Status != domain.RequestPending {
		return nil, fmt.Errorf("seller recharge %s is %s: %w", id, r.Status, ErrAlreadyProcessed)
	}
	r.Status = domain.RequestRejected
	r.ProcessedAt = &now
	return r, nil
}

// RequestWithdrawal registra um saque pendente. O saldo só é verificado na aprovação.
func RequestWithdrawal(s *domain.Snapshot, userID string, amount float64, now time.Time) (*domain.WithdrawalRequest, error) {
	if err := checkPositive(amount); err != nil {
		return nil, err
	}
	if _, ok := s.User(userID); !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	s.Withdrawals = append(s.Withdrawals, domain.WithdrawalRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Status:    domain.RequestPending,
		CreatedAt: now,
	})
	return &s.Withdrawals[len(s.Withdrawals)-1], nil
}

// ApproveWithdrawal debita o saque do saldo do usuário
func ApproveWithdrawal(s *domain.Snapshot, id string, now time.Time) (*domain.WithdrawalRequest, error) {
	w, ok := s.Withdrawal(id)
	if !ok {
		return nil, fmt.Errorf("withdrawal %s: %w", id, ErrNotFound)
	}
	if w.Status != domain.RequestPending {
		return nil, fmt.Errorf("withdrawal %s is %s: %w", id, w.Status, ErrAlreadyProcessed)
	}
	u, ok := s.User(w.UserID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", w.UserID, ErrNotFound)
	}
	if err := Debit(u, w.Amount); err != nil {
		return nil, err
	}
	w.Status = domain.RequestApproved
	w.ProcessedAt = &now
	return w, nil
}

func RejectWithdrawal(s *domain.Snapshot, id string, now time.Time) (*domain.WithdrawalRequest, error) {
	w, ok := s.Withdrawal(id)
	if !ok {
		return nil, fmt.Errorf("withdrawal %s: %w", id, ErrNotFound)
	}
	if w.Status != domain.RequestPending {
		return nil, fmt.Errorf("withdrawal %s is %s: %w", id, w.Status, ErrAlreadyProcessed)
	}
	w.Status = domain.RequestRejected
	w.ProcessedAt = &now
	return w, nil
}

func checkPositive(amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if amount == 0 {
		return fmt.Errorf("%v: %w", amount, ErrInvalidAmount)
	}
	return nil
}
