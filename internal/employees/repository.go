package employees

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdesk/staffdesk/internal/shared"
)

// Repository defines persistence operations for employees. Update and
// Delete report NotFound through the rows-affected count; row-level
// concurrency control is the database's concern.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, name, phone, gender string) error
	Update(ctx context.Context, id uuid.UUID, name, phone, gender string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// List returns all employee records.
func (r *PGRepository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT emp_id, emp_name, emp_phone, emp_gender FROM employees ORDER BY emp_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Gender); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create inserts a new employee row.
func (r *PGRepository) Create(ctx context.Context, name, phone, gender string) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO employees(emp_name, emp_phone, emp_gender) VALUES ($1, $2, $3)`,
		name, phone, gender,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.Errorf(shared.ErrCreationFailed, "Employee creation failed")
	}
	return nil
}

// Update rewrites an employee row by id.
func (r *PGRepository) Update(ctx context.Context, id uuid.UUID, name, phone, gender string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employees SET emp_name = $1, emp_phone = $2, emp_gender = $3 WHERE emp_id = $4`,
		name, phone, gender, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.Errorf(shared.ErrNotFound, "Employee not found")
	}
	return nil
}

// Delete removes an employee row by id.
func (r *PGRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE emp_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.Errorf(shared.ErrNotFound, "Employee not found")
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
