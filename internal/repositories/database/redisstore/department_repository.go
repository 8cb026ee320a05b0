package redisstore

import (
	"context"
	"log/slog"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_directory_app/internal/utils/mapping"
)

type RedisDepartmentRepository struct {
	hashCollection
}

func newRedisDepartmentRepository(client HashClient, prefix string) portsrepo.DepartmentRepositoryFacade {
	return &RedisDepartmentRepository{hashCollection: newHashCollection(client, prefix, "departments")}
}

var _ portsrepo.DepartmentRepositoryFacade = (*RedisDepartmentRepository)(nil)

func (r *RedisDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
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

func (r *RedisDepartmentRepository) CreateDepartment(ctx context.Context, department domain.Department) (string, error) {
	return r.create(ctx, mapping.ToDepartmentDocument(department))
}

func (r *RedisDepartmentRepository) UpdateDepartment(ctx context.Context, departmentID string, update domain.DepartmentUpdate) error {
	return r.merge(ctx, departmentID, mapping.ToDepartmentPatchDocument(update))
}

func (r *RedisDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	return r.remove(ctx, departmentID)
}
