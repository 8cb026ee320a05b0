package services

import (
	"context"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/SscSPs/employee_directory_app/internal/dto"
)

// DepartmentCatalogSvc resolves department keys to bilingual labels
type DepartmentCatalogSvc interface {
	// ListDepartments returns the catalog, sentinel first. Never fails; a
	// failed live fetch degrades to the sentinel alone.
	ListDepartments(ctx context.Context) []domain.DepartmentLabel

	// ResolveLabel returns the label of key in the preferred language, or key itself if unknown.
	ResolveLabel(ctx context.Context, key string, lang domain.Language) string

	// CanonicalKey maps any known label (either language) to its canonical English key.
	CanonicalKey(ctx context.Context, label string) string

	// Suggest ranks catalog entries against a free-text query.
	Suggest(ctx context.Context, query string) []domain.DepartmentLabel

	// Invalidate drops any cached live catalog.
	Invalidate()
}

// DepartmentReaderSvc defines read operations for department records
type DepartmentReaderSvc interface {
	ListDepartmentRecords(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriterSvc defines write operations for department records
type DepartmentWriterSvc interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error
	// DeleteDepartment requires confirmed=true, otherwise apperrors.ErrConfirmationRequired.
	DeleteDepartment(ctx context.Context, departmentID string, confirmed bool) error
	// SeedDepartments creates a record for every label whose English name is not stored yet.
	SeedDepartments(ctx context.Context, labels []domain.DepartmentLabel) (int, error)
}

// DepartmentSvcFacade combines all department-related service interfaces
type DepartmentSvcFacade interface {
	DepartmentReaderSvc
	DepartmentWriterSvc
}
