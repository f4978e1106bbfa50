package dto

type BalanceResponse struct {
	UserID  string  `json:"userId"`
	Balance float64 `json:"balance"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
