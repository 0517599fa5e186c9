package ledger

import (
	"context"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação do banco, passando
// repositórios atados a essa transação. Garante que a atualização de
// quantidade e o registro da movimentação são uma unidade atômica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
