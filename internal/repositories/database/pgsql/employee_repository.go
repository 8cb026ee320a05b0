package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_directory_app/internal/utils/mapping"
)

const employeesTable = "employees"

type PgxEmployeeRepository struct {
	documentCollection
}

// newPgxEmployeeRepository creates a new repository for employee documents.
func newPgxEmployeeRepository(pool PgxPool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		documentCollection: documentCollection{BaseRepository: BaseRepository{Pool: pool}, table: employeesTable},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// ListEmployees retrieves every employee document in insertion order.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	raws, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	employees, skipped := mapping.DecodeEmployees(raws)
	if skipped != nil {
		slog.WarnContext(ctx, "Skipped undecodable employee documents", "error", skipped.Error())
	}
	return employees, nil
}

// FindEmployeeByID retrieves a single employee document.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	raw, err := r.find(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	emp, err := mapping.DecodeEmployee(raw)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// CreateEmployee inserts a new document and returns the assigned id.
func (r *PgxEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (string, error) {
	return r.create(ctx, mapping.ToEmployeeDocument(employee))
}

// UpdateEmployee merges the named fields into the stored document.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) error {
	return r.merge(ctx, employeeID, mapping.ToEmployeePatchDocument(update))
}

// DeleteEmployee removes the document; an absent id is not an error.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	return r.remove(ctx, employeeID)
}
