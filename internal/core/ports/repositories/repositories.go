package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EmployeeRepo   EmployeeRepositoryFacade
	DepartmentRepo DepartmentRepositoryFacade

	// Ping reports whether the backing store is reachable. May be nil.
	Ping func(ctx context.Context) error
}
