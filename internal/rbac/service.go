package rbac

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrRoleNotFound indicates a role with no permission record. A verified
// token naming such a role is a data-integrity fault, not a deny.
var ErrRoleNotFound = errors.New("rbac: role has no permission record")

// PermissionSource resolves a role's permission document.
type PermissionSource interface {
	PermissionsForRole(ctx context.Context, role string) (PermissionSet, error)
}

// Service reads role permission documents from PostgreSQL.
type Service struct {
	pool *pgxpool.Pool
}

// NewService constructs a Service backed by the provided pool.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// PermissionsForRole fetches the permission document stored for role.
func (s *Service) PermissionsForRole(ctx context.Context, role string) (PermissionSet, error) {
	var perms PermissionSet
	err := s.pool.QueryRow(ctx,
		`SELECT permissions FROM roles WHERE role_name = $1`, role,
	).Scan(&perms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return perms, nil
}

// ListRoleNames returns every provisioned role name.
func (s *Service) ListRoleNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT role_name FROM roles ORDER BY role_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

var _ PermissionSource = (*Service)(nil)
