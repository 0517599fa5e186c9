package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste um novo usuário. Nome duplicado retorna domain.ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID; nil sem erro quando não existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT id, name, password_hash, role, created_at FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// GetByName obtém um usuário pelo nome (único); nil sem erro quando não existe.
func (r *UserRepo) GetByName(name string) (*entity.User, error) {
	query := `SELECT id, name, password_hash, role, created_at FROM users WHERE name = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, name))
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List devolve todos os usuários ordenados por nome.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT id, name, password_hash, role, created_at FROM users ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count devolve o número de usuários (usado pelo seeding do bootstrap).
func (r *UserRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Delete remove um usuário por ID. ID inexistente é no-op.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
