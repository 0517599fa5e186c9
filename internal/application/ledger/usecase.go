package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// UseCase registra movimentações de estoque de forma transacional:
// lê a quantidade atual com bloqueio de linha (SELECT FOR UPDATE), valida
// suficiência nas saídas, grava a nova quantidade e o registro imutável da
// movimentação, com Commit ou Rollback.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository // leituras fora de transação
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInput entrada para registrar uma movimentação.
// Quantity é sempre positiva; a direção vai em Kind (entrada/saida).
type MovementInput struct {
	ProductID  string
	Quantity   int64
	Kind       string
	ActingUser string // nome do usuário logado, opcional
	Note       string // opcional
}

// MovementResult resultado de uma movimentação aplicada.
type MovementResult struct {
	MovementID  string
	NewQuantity int64
}

// ApplyMovement valida a entrada, abre uma transação, bloqueia a linha do
// produto, aplica o delta e grava a movimentação. Nunca aplica efeito
// parcial: ou a quantidade e o histórico mudam juntos, ou nada muda.
//
// Erros: domain.ErrInvalidInput (quantidade <= 0 ou tipo desconhecido),
// domain.ErrNotFound (produto inexistente), domain.ErrInsufficientStock
// (saída maior que a quantidade atual).
func (uc *UseCase) ApplyMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !entity.ValidMovementKind(input.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	result := &MovementResult{MovementID: uuid.New().String()}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloqueia a linha do produto: duas saídas concorrentes não podem
		// passar as duas pela checagem de suficiência.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.Quantity
		switch input.Kind {
		case entity.MovementEntrada:
			newQuantity += input.Quantity
		case entity.MovementSaida:
			if input.Quantity > product.Quantity {
				return domain.ErrInsufficientStock
			}
			newQuantity -= input.Quantity
		}

		if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:         result.MovementID,
			ProductID:  product.ID,
			Quantity:   input.Quantity,
			Kind:       input.Kind,
			ActingUser: input.ActingUser,
			OccurredAt: now,
			Note:       input.Note,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		result.NewQuantity = newQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultHistoryLimit máximo padrão de movimentações listadas.
const DefaultHistoryLimit = 500

// ListMovements devolve o histórico mais recente (LEFT JOIN com produtos).
// limit <= 0 usa o padrão de 500 movimentações.
func (uc *UseCase) ListMovements(ctx context.Context, limit int) ([]*entity.MovementWithProduct, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return uc.movementRepo.List(limit)
}

// ListByProduct devolve o histórico de um produto, mais recente primeiro.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.MovementWithProduct, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return uc.movementRepo.ListByProduct(productID, limit)
}
