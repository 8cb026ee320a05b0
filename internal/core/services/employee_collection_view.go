package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/platform/metrics"
)

// employeeCollectionView owns the employee snapshot. The snapshot is only
// ever replaced wholesale by Refresh; writers trigger that through OnSaved.
type employeeCollectionView struct {
	BaseService
	repo portsrepo.EmployeeRepositoryFacade

	mu        sync.RWMutex
	snapshot  []domain.Employee
	available bool
	query     domain.EmployeeQuery
}

// NewEmployeeCollectionView creates a view that is unavailable until the first successful Refresh.
func NewEmployeeCollectionView(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeCollectionSvcFacade {
	return &employeeCollectionView{
		BaseService: newBaseService(nil),
		repo:        repo,
		query:       domain.DefaultEmployeeQuery(),
	}
}

var (
	_ portssvc.EmployeeCollectionSvcFacade = (*employeeCollectionView)(nil)
	_ portssvc.SavedNotifier               = (*employeeCollectionView)(nil)
)

func (v *employeeCollectionView) Refresh(ctx context.Context) error {
	employees, err := v.repo.ListEmployees(ctx)
	if err != nil {
		v.mu.Lock()
		v.available = false
		v.snapshot = nil
		v.mu.Unlock()
		v.LogError(ctx, err, "Failed to refresh employee snapshot")
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}

	v.mu.Lock()
	v.snapshot = employees
	v.available = true
	v.mu.Unlock()

	metrics.SetSnapshotSize(len(employees))
	v.LogDebug(ctx, "Employee snapshot refreshed", slog.Int("count", len(employees)))
	return nil
}

func (v *employeeCollectionView) OnSaved(ctx context.Context) error {
	return v.Refresh(ctx)
}

func (v *employeeCollectionView) RequestDelete(ctx context.Context, employeeID string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: deleting employee %s", apperrors.ErrConfirmationRequired, employeeID)
	}

	if err := v.repo.DeleteEmployee(ctx, employeeID); err != nil {
		v.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("%w: employee %s: %w", apperrors.ErrDelete, employeeID, err)
	}
	v.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))

	// The delete itself succeeded; a failed re-fetch only leaves the view unavailable.
	if err := v.Refresh(ctx); err != nil {
		v.LogWarn(ctx, err, "Snapshot refresh after delete failed", slog.String("employee_id", employeeID))
	}
	return nil
}

func (v *employeeCollectionView) All() ([]domain.Employee, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.available {
		return nil, apperrors.ErrStoreUnavailable
	}
	return append([]domain.Employee(nil), v.snapshot...), nil
}

func (v *employeeCollectionView) Visible() ([]domain.Employee, error) {
	return v.Query(v.CurrentQuery())
}

func (v *employeeCollectionView) Query(q domain.EmployeeQuery) ([]domain.Employee, error) {
	sortKey, err := domain.ParseSortKey(string(q.Sort))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	q.Sort = sortKey

	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.available {
		return nil, apperrors.ErrStoreUnavailable
	}
	return deriveVisible(v.snapshot, q), nil
}

func (v *employeeCollectionView) Stats() (domain.EmployeeStats, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.available {
		return domain.EmployeeStats{}, apperrors.ErrStoreUnavailable
	}
	return computeStats(v.snapshot), nil
}

// Find prefers the snapshot and falls back to the store, e.g. for an id
// created by another process since the last refresh.
func (v *employeeCollectionView) Find(ctx context.Context, employeeID string) (*domain.Employee, error) {
	v.mu.RLock()
	if v.available {
		for i := range v.snapshot {
			if v.snapshot[i].ID == employeeID {
				emp := v.snapshot[i]
				v.mu.RUnlock()
				return &emp, nil
			}
		}
	}
	v.mu.RUnlock()

	emp, err := v.repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			v.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return emp, nil
}

func (v *employeeCollectionView) SetDepartmentFilter(department string) {
	v.mu.Lock()
	v.query.Department = department
	v.mu.Unlock()
}

func (v *employeeCollectionView) SetSearchTerm(term string) {
	v.mu.Lock()
	v.query.Search = term
	v.mu.Unlock()
}

func (v *employeeCollectionView) SetSortKey(key domain.SortKey) error {
	parsed, err := domain.ParseSortKey(string(key))
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	v.mu.Lock()
	v.query.Sort = parsed
	v.mu.Unlock()
	return nil
}

func (v *employeeCollectionView) CurrentQuery() domain.EmployeeQuery {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.query
}
