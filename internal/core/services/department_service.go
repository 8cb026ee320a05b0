package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/dto"
)

// DepartmentServiceOption is a function that configures a departmentService
type DepartmentServiceOption func(*departmentService)

// WithDepartmentCatalog sets the catalog invalidated after each mutation
func WithDepartmentCatalog(catalog portssvc.DepartmentCatalogSvc) DepartmentServiceOption {
	return func(s *departmentService) {
		s.catalog = catalog
	}
}

// WithDepartmentClock sets the clock used for CreatedAt
func WithDepartmentClock(clock Clock) DepartmentServiceOption {
	return func(s *departmentService) {
		s.BaseService = newBaseService(clock)
	}
}

type departmentService struct {
	BaseService
	repo    portsrepo.DepartmentRepositoryFacade
	catalog portssvc.DepartmentCatalogSvc
}

// NewDepartmentService creates a new department service with the given repository and options
func NewDepartmentService(repo portsrepo.DepartmentRepositoryFacade, opts ...DepartmentServiceOption) portssvc.DepartmentSvcFacade {
	s := &departmentService{
		BaseService: newBaseService(nil),
		repo:        repo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) ListDepartmentRecords(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	en, ar, err := trimLabels(req.EN, req.AR)
	if err != nil {
		return nil, err
	}

	department := domain.Department{
		EN:             en,
		AR:             ar,
		EmployeesCount: 0,
		CreatedAt:      s.Clock.Now(),
	}
	id, err := s.repo.CreateDepartment(ctx, department)
	if err != nil {
		s.LogError(ctx, err, "Failed to create department", slog.String("en", en))
		return nil, fmt.Errorf("%w: failed to create department: %w", apperrors.ErrSave, err)
	}
	department.ID = id
	s.invalidate()

	s.LogInfo(ctx, "Department created", slog.String("department_id", id), slog.String("en", en))
	return &department, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error {
	en, ar, err := trimLabels(req.EN, req.AR)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateDepartment(ctx, departmentID, domain.DepartmentUpdate{EN: en, AR: ar}); err != nil {
		s.LogError(ctx, err, "Failed to update department", slog.String("department_id", departmentID))
		return fmt.Errorf("failed to update department %s: %w", departmentID, err)
	}
	s.invalidate()

	s.LogInfo(ctx, "Department updated", slog.String("department_id", departmentID))
	return nil
}

// DeleteDepartment removes the record only. Employees keep their department key.
func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: deleting department %s", apperrors.ErrConfirmationRequired, departmentID)
	}

	if err := s.repo.DeleteDepartment(ctx, departmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete department", slog.String("department_id", departmentID))
		return fmt.Errorf("%w: department %s: %w", apperrors.ErrDelete, departmentID, err)
	}
	s.invalidate()

	s.LogInfo(ctx, "Department deleted", slog.String("department_id", departmentID))
	return nil
}

func (s *departmentService) SeedDepartments(ctx context.Context, labels []domain.DepartmentLabel) (int, error) {
	existing, err := s.ListDepartmentRecords(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[strings.ToLower(strings.TrimSpace(d.EN))] = true
	}

	created := 0
	for _, label := range labels {
		key := strings.ToLower(strings.TrimSpace(label.LabelEN))
		if label.IsSentinel() || key == "" || seen[key] {
			continue
		}
		if _, err := s.CreateDepartment(ctx, dto.CreateDepartmentRequest{EN: label.LabelEN, AR: label.LabelAR}); err != nil {
			return created, err
		}
		seen[key] = true
		created++
	}
	s.LogInfo(ctx, "Departments seeded", slog.Int("created", created), slog.Int("existing", len(existing)))
	return created, nil
}

func (s *departmentService) invalidate() {
	if s.catalog != nil {
		s.catalog.Invalidate()
	}
}

func trimLabels(en, ar string) (string, string, error) {
	en, ar = strings.TrimSpace(en), strings.TrimSpace(ar)
	if en == "" || ar == "" {
		return "", "", fmt.Errorf("%w: both English and Arabic names are required", apperrors.ErrValidation)
	}
	return en, ar, nil
}
