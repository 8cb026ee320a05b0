package redisstore

import (
	"context"

	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires both collections onto one client under prefix.
func NewRepositoryProvider(client HashClient, prefix string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newRedisEmployeeRepository(client, prefix),
		DepartmentRepo: newRedisDepartmentRepository(client, prefix),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	}
}
