package employees

import (
	"context"

	"github.com/google/uuid"
)

// Service wraps employee business operations.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// Create stores a new employee.
func (s *Service) Create(ctx context.Context, req EmployeeRequest) error {
	return s.repo.Create(ctx, req.Name, req.Phone, req.Gender)
}

// Update rewrites the employee identified by id.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req EmployeeRequest) error {
	return s.repo.Update(ctx, id, req.Name, req.Phone, req.Gender)
}

// Delete removes the employee identified by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
