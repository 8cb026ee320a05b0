package pgsql

import (
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	base := &BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		Ping:           base.Ping,
	}
}
