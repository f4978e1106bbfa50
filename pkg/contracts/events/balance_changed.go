package events

import "time"

const (
	ReasonPrize          = "prize"
	ReasonPurchase       = "purchase"
	ReasonRecharge       = "recharge"
	ReasonSellerTransfer = "seller_transfer"
	ReasonWithdrawal     = "withdrawal"
)

// BalanceChanged é publicado a cada movimento de saldo de um usuário.
// Amount é positivo para créditos e negativo para débitos.
type BalanceChanged struct {
	UserID     string    `json:"userId"`
	Amount     float64   `json:"amount"`
	NewBalance float64   `json:"newBalance"`
	Reason     string    `json:"reason"`
	Ref        string    `json:"ref,omitempty"` // cartão ou solicitação de origem
	Ts         time.Time `json:"ts"`
}
