package pgsql

import (
	"context"
	"log/slog"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_directory_app/internal/utils/mapping"
)

const departmentsTable = "departments"

type PgxDepartmentRepository struct {
	documentCollection
}

// newPgxDepartmentRepository creates a new repository for department documents.
func newPgxDepartmentRepository(pool PgxPool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		documentCollection: documentCollection{BaseRepository: BaseRepository{Pool: pool}, table: departmentsTable},
	}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

// ListDepartments retrieves every department document in insertion order.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	raws, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	departments, skipped := mapping.DecodeDepartments(raws)
	if skipped != nil {
		slog.WarnContext(ctx, "Skipped undecodable department documents", "error", skipped.Error())
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) CreateDepartment(ctx context.Context, department domain.Department) (string, error) {
	return r.create(ctx, mapping.ToDepartmentDocument(department))
}

func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, departmentID string, update domain.DepartmentUpdate) error {
	return r.merge(ctx, departmentID, mapping.ToDepartmentPatchDocument(update))
}

func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	return r.remove(ctx, departmentID)
}
