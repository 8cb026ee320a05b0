package repositories

import (
	"context"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// DepartmentReader defines read operations for the departments collection
type DepartmentReader interface {
	// ListDepartments returns every department document with its id merged in.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for the departments collection
type DepartmentWriter interface {
	// CreateDepartment persists a new department and returns the id allocated by the store.
	CreateDepartment(ctx context.Context, department domain.Department) (string, error)

	// UpdateDepartment replaces the labels of an existing department.
	UpdateDepartment(ctx context.Context, departmentID string, update domain.DepartmentUpdate) error

	// DeleteDepartment removes a department. Employees referencing it are untouched.
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
