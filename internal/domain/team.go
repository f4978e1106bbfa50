package domain

// Team é um dado de referência imutável; partidas apontam para ele pelo ID
type Team struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	LogoRef string `json:"logoRef,omitempty" bson:"logoRef,omitempty"`
}
