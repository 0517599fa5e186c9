package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/logger"
)

// Senha do administrador semeado no bootstrap. Documentada de propósito:
// é a credencial inicial de uma instalação vazia (trocar em produção).
const DefaultAdminPassword = "admin"

// schema das três tabelas. movements.product_id não tem FOREIGN KEY de
// propósito: remover um produto mantém o histórico com referência pendente
// (tolerado; as listagens usam LEFT JOIN).
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL CHECK (role IN ('administrador', 'funcionario')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	unit_price NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
	supplier   TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (name, category)
);

CREATE TABLE IF NOT EXISTS movements (
	id          UUID PRIMARY KEY,
	product_id  UUID NOT NULL,
	quantity    BIGINT NOT NULL CHECK (quantity > 0),
	kind        TEXT NOT NULL CHECK (kind IN ('entrada', 'saida')),
	acting_user TEXT,
	occurred_at TIMESTAMPTZ NOT NULL,
	note        TEXT
);

CREATE INDEX IF NOT EXISTS idx_movements_product_id ON movements (product_id);
CREATE INDEX IF NOT EXISTS idx_movements_occurred_at ON movements (occurred_at DESC);
`

// EnsureSchema cria as tabelas e índices se não existirem (idempotente).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	log.Debug().Msg("schema verificado")
	return nil
}

// SeedDefaultAdmin cria o administrador padrão quando a tabela de usuários
// está vazia. Check-then-insert de uma vez só, não é um passo de migração
// repetível: instalações que já têm qualquer usuário não são tocadas.
func SeedDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	n, err := NewUserRepository(pool).Count()
	if err != nil {
		return fmt.Errorf("contar usuários: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash da senha padrão: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, name, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO NOTHING`,
		uuid.New().String(), entity.DefaultAdminName, string(hash), entity.RoleAdministrador, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("semear admin padrão: %w", err)
	}
	log.Info().Str("user", entity.DefaultAdminName).Msg("administrador padrão criado")
	return nil
}
