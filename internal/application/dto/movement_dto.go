package dto

import "time"

// RegisterMovementRequest dados para registrar uma entrada ou saída.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"` // sempre positiva; a direção vai em Kind
	Kind      string `json:"kind"`     // entrada | saida
	Note      string `json:"note"`
}

// RegisterMovementResponse resultado da movimentação.
type RegisterMovementResponse struct {
	MovementID  string `json:"movement_id"`
	ProductID   string `json:"product_id"`
	Kind        string `json:"kind"`
	Quantity    int64  `json:"quantity"`
	NewQuantity int64  `json:"new_quantity"`
}

// MovementResponse representação de uma movimentação no histórico.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"` // vazio se o produto foi removido
	Quantity    int64     `json:"quantity"`
	Kind        string    `json:"kind"`
	ActingUser  string    `json:"acting_user,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Note        string    `json:"note,omitempty"`
}

// MovementListResponse listagem de movimentações.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int                `json:"total"`
}
