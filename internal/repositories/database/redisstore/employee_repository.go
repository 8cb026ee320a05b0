package redisstore

import (
	"context"
	"log/slog"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_directory_app/internal/utils/mapping"
)

type RedisEmployeeRepository struct {
	hashCollection
}

func newRedisEmployeeRepository(client HashClient, prefix string) portsrepo.EmployeeRepositoryFacade {
	return &RedisEmployeeRepository{hashCollection: newHashCollection(client, prefix, "employees")}
}

var _ portsrepo.EmployeeRepositoryFacade = (*RedisEmployeeRepository)(nil)

func (r *RedisEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
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

func (r *RedisEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	raw, err := r.find(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	emp, err := mapping.DecodeEmployee(raw)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *RedisEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (string, error) {
	return r.create(ctx, mapping.ToEmployeeDocument(employee))
}

func (r *RedisEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) error {
	return r.merge(ctx, employeeID, mapping.ToEmployeePatchDocument(update))
}

func (r *RedisEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	return r.remove(ctx, employeeID)
}
