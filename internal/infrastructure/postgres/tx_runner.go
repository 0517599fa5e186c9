package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/ledger"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. É a unidade atômica do Ledger: atualização de
// quantidade + registro de movimentação, juntos ou nenhum.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		// sem conexão não há transação: o chamador trata como loja indisponível
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(productRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
