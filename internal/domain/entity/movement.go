package entity

import "time"

// Tipos válidos para Movement.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// Movement é um registro imutável do histórico de movimentações.
// Quantity é sempre estritamente positiva; a direção vai em Kind.
// A aplicação nunca atualiza nem remove linhas desta tabela.
type Movement struct {
	ID         string
	ProductID  string
	Quantity   int64
	Kind       string // entrada | saida
	ActingUser string // nome do usuário, opcional (vazio = NULL)
	OccurredAt time.Time
	Note       string // opcional
}

// MovementWithProduct é a projeção usada nas listagens de histórico:
// movimento + nome do produto (vazio quando o produto já foi removido).
type MovementWithProduct struct {
	Movement
	ProductName string
}

// ValidMovementKind informa se o tipo é um dos valores aceitos.
func ValidMovementKind(kind string) bool {
	return kind == MovementEntrada || kind == MovementSaida
}
