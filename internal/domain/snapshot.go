package domain

// Snapshot é o documento completo de estado trocado com a camada de
// persistência. Version é controlada pelo store para concorrência otimista.
type Snapshot struct {
	Version             int64                   `json:"version" bson:"version"`
	Teams               []Team                  `json:"teams" bson:"teams"`
	Jornadas            []Jornada               `json:"jornadas" bson:"jornadas"`
	Cartons             []Carton                `json:"cartones" bson:"cartones"`
	Users               []RegisteredUser        `json:"users" bson:"users"`
	Recharges           []RechargeRequest       `json:"recharges" bson:"recharges"`
	SellerRecharges     []SellerRechargeRequest `json:"sellerRecharges" bson:"sellerRecharges"`
	Withdrawals         []WithdrawalRequest     `json:"withdrawals" bson:"withdrawals"`
	BotinAmount         float64                 `json:"botinAmount" bson:"botinAmount"`
	GorditoJornadaID    string                  `json:"gorditoJornadaId,omitempty" bson:"gorditoJornadaId,omitempty"`
	GorditoAmount       string                  `json:"gorditoAmount,omitempty" bson:"gorditoAmount,omitempty"`
	SellerCommissionPct float64                 `json:"sellerCommissionPct" bson:"sellerCommissionPct"`
}

// Jornada retorna a jornada pelo ID
func (s *Snapshot) Jornada(id string) (*Jornada, bool) {
	for i := range s.Jornadas {
		if s.Jornadas[i].ID == id {
			return &s.Jornadas[i], true
		}
	}
	return nil, false
}

// User retorna o usuário pelo ID
func (s *Snapshot) User(id string) (*RegisteredUser, bool) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// Carton retorna o cartão pelo ID
func (s *Snapshot) Carton(id string) (*Carton, bool) {
	for i := range s.Cartons {
		if s.Cartons[i].ID == id {
			return &s.Cartons[i], true
		}
	}
	return nil, false
}

// CartonsOf retorna os índices dos cartões de uma jornada, na ordem do documento
func (s *Snapshot) CartonsOf(jornadaID string) []int {
	var idx []int
	for i := range s.Cartons {
		if s.Cartons[i].JornadaID == jornadaID {
			idx = append(idx, i)
		}
	}
	return idx
}

// Recharge retorna a solicitação de recarga pelo ID
func (s *Snapshot) Recharge(id string) (*RechargeRequest, bool) {
	for i := range s.Recharges {
		if s.Recharges[i].ID == id {
			return &s.Recharges[i], true
		}
	}
	return nil, false
}

// SellerRecharge retorna a recarga de vendedor pelo ID
func (s *Snapshot) SellerRecharge(id string) (*SellerRechargeRequest, bool) {
	for i := range s.SellerRecharges {
		if s.SellerRecharges[i].ID == id {
			return &s.SellerRecharges[i], true
		}
	}
	return nil, false
}

// Withdrawal retorna o pedido de saque pelo ID
func (s *Snapshot) Withdrawal(id string) (*WithdrawalRequest, bool) {
	for i := range s.Withdrawals {
		if s.Withdrawals[i].ID == id {
			return &s.Withdrawals[i], true
		}
	}
	return nil, false
}
