package dto

// RecordResultsRequest lança resultados de partidas; BotinResult no formato "L-V"
type RecordResultsRequest struct {
	Results     map[string]string `json:"results" validate:"required,min=1,dive,keys,required,endkeys,oneof=home draw away"`
	BotinResult *string           `json:"botinResult,omitempty" validate:"omitempty,score"`
}

type BotinPrediction struct {
	LocalScore   string `json:"localScore" validate:"required,number"`
	VisitorScore string `json:"visitorScore" validate:"required,number"`
}

type PurchaseCartonRequest struct {
	UserID          string            `json:"userId" validate:"required"`
	JornadaID       string            `json:"jornadaId" validate:"required"`
	Predictions     map[string]string `json:"predictions" validate:"required,min=1,dive,keys,required,endkeys,oneof=home draw away"`
	BotinPrediction *BotinPrediction  `json:"botinPrediction,omitempty" validate:"omitempty"`
}

type UpdatePredictionsRequest struct {
	UserID          string            `json:"userId" validate:"required"`
	Predictions     map[string]string `json:"predictions" validate:"required,min=1,dive,keys,required,endkeys,oneof=home draw away"`
	BotinPrediction *BotinPrediction  `json:"botinPrediction,omitempty" validate:"omitempty"`
}

type RechargeRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Reference string  `json:"reference,omitempty" validate:"max=120"`
}

type SellerRechargeRequest struct {
	SellerID string  `json:"sellerId" validate:"required"`
	ClientID string  `json:"clientId" validate:"required,nefield=SellerID"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

type WithdrawalRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
}
