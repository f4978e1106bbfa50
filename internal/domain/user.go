package domain

// Role define o perfil do usuário registrado
type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
)

// RegisteredUser é o titular de saldo. Balance só muda via operações do ledger.
type RegisteredUser struct {
	ID       string  `json:"id" bson:"id"`
	Username string  `json:"username" bson:"username"`
	Role     Role    `json:"role" bson:"role"`
	Balance  float64 `json:"balance" bson:"balance"`
}
