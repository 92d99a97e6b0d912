package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdesk/staffdesk/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, username, passwordHash, role string) error
	ListUsernames(ctx context.Context) ([]string, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByUsername fetches a user joined with its role and permission document.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.pool.QueryRow(ctx,
		`SELECT u.user_id, u.user_name, u.user_password, r.role_name, r.permissions
		 FROM users AS u
		 JOIN roles AS r ON u.role_id = r.role_id
		 WHERE u.user_name = $1`, username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.RoleName, &user.Permissions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.Errorf(shared.ErrNotFound, "User doesn't exist")
		}
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user resolving the role by name. Zero rows affected
// and integrity violations (unresolvable role, duplicate username) both
// classify as CreationFailed.
func (r *PGRepository) CreateUser(ctx context.Context, username, passwordHash, role string) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users(user_name, user_password, role_id)
		 VALUES ($1, $2, (SELECT role_id FROM roles WHERE role_name = $3))`,
		username, passwordHash, role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return shared.Errorf(shared.ErrCreationFailed, "User Creation Failed")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.Errorf(shared.ErrCreationFailed, "User Creation Failed")
	}
	return nil
}

// ListUsernames returns every account's username.
func (r *PGRepository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_name FROM users ORDER BY user_name`)
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

var _ Repository = (*PGRepository)(nil)
