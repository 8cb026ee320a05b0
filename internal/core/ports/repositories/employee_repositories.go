package repositories

import (
	"context"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// EmployeeReader defines read operations for the employees collection
type EmployeeReader interface {
	// ListEmployees returns every employee document with its id merged in.
	// A transport failure wraps apperrors.ErrStoreUnavailable.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeeByID returns one employee or apperrors.ErrNotFound.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for the employees collection
type EmployeeWriter interface {
	// CreateEmployee persists a new employee and returns the id allocated by the store.
	CreateEmployee(ctx context.Context, employee domain.Employee) (string, error)

	// UpdateEmployee merges the named fields into an existing employee.
	// Returns apperrors.ErrNotFound if the id no longer exists.
	UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) error

	// DeleteEmployee removes an employee. Deleting an absent id is not an error.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
