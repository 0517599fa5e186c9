package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier é o subconjunto comum de *pgxpool.Pool e pgx.Tx que os
// repositórios usam. Permite construir o mesmo repositório atado ao pool
// (operações avulsas) ou a uma transação (TxRunner).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
