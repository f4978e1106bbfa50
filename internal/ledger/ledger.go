package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyProcessed  = errors.New("already processed")
)

// Credit soma amount ao saldo do usuário. amount deve ser finito e >= 0.
func Credit(u *domain.RegisteredUser, amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	u.Balance += amount
	return nil
}

// Debit subtrai amount do saldo; falha com ErrInsufficientFunds sem
// alterar nada quando o saldo não cobre o valor
func Debit(u *domain.RegisteredUser, amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if u.Balance < amount {
		return fmt.Errorf("user %s balance %.2f < %.2f: %w", u.ID, u.Balance, amount, ErrInsufficientFunds)
	}
	u.Balance -= amount
	return nil
}

func checkAmount(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%v: %w", amount, ErrInvalidAmount)
	}
	return nil
}
