package domain

import "time"

// RequestStatus é o estado de uma solicitação de recarga ou saque
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RechargeRequest é uma recarga paga por fora e aprovada pelo admin
type RechargeRequest struct {
	ID          string        `json:"id" bson:"id"`
	UserID      string        `json:"userId" bson:"userId"`
	Amount      float64       `json:"amount" bson:"amount"`
	Reference   string        `json:"reference,omitempty" bson:"reference,omitempty"`
	Status      RequestStatus `json:"status" bson:"status"`
	Commission  float64       `json:"commission,omitempty" bson:"commission,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	ProcessedAt *time.Time    `json:"processedAt,omitempty" bson:"processedAt,omitempty"`
}

// SellerRechargeRequest transfere saldo de um vendedor para um cliente
type SellerRechargeRequest struct {
	ID          string        `json:"id" bson:"id"`
	SellerID    string        `json:"sellerId" bson:"sellerId"`
	ClientID    string        `json:"clientId" bson:"clientId"`
	Amount      float64       `json:"amount" bson:"amount"`
	Status      RequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	ProcessedAt *time.Time    `json:"processedAt,omitempty" bson:"processedAt,omitempty"`
}

// WithdrawalRequest é um pedido de saque do saldo
type WithdrawalRequest struct {
	ID          string        `json:"id" bson:"id"`
	UserID      string        `json:"userId" bson:"userId"`
	Amount      float64       `json:"amount" bson:"amount"`
	Status      RequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	ProcessedAt *time.Time    `json:"processedAt,omitempty" bson:"processedAt,omitempty"`
}
