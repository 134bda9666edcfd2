package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/field-service/internal/domain"
)

// RoleRepository defines persistence access for role records.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*domain.RoleRecord, error)
	List(ctx context.Context) ([]*domain.RoleRecord, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.RoleRecord, error) {
	const query = `SELECT id, name, created_at FROM roles WHERE LOWER(name)=LOWER($1)`

	var role domain.RoleRecord
	if err := r.pool.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]*domain.RoleRecord, error) {
	const query = `SELECT id, name, created_at FROM roles ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*domain.RoleRecord
	for rows.Next() {
		var role domain.RoleRecord
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}
