package services

import (
	"log"

	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	source, err := ParseCatalogSource(cfg.CatalogSource)
	if err != nil {
		log.Printf("Warning: %v. Defaulting to %s.\n", err, CatalogSourceStatic)
		source = CatalogSourceStatic
	}

	// The catalog comes first: department mutations invalidate it and drafts canonicalize through it.
	container.Catalog = NewDepartmentCatalog(source, repos.DepartmentRepo, WithCatalogRetryAfter(cfg.CatalogRetryAfter))
	container.Department = NewDepartmentService(repos.DepartmentRepo, WithDepartmentCatalog(container.Catalog))

	view := NewEmployeeCollectionView(repos.EmployeeRepo)
	container.Employees = view

	newDraft := func() portssvc.EmployeeDraftSvc {
		return NewEmployeeDraft(
			repos.EmployeeRepo,
			WithDraftCatalog(container.Catalog),
			WithSavedNotifier(view),
			WithMaxAttachmentBytes(cfg.MaxUploadBytes),
		)
	}
	container.Drafts = NewDraftRegistry(newDraft, cfg.DraftTTL, nil)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DepartmentCatalogSvc        = (*departmentCatalog)(nil)
	_ portssvc.DepartmentSvcFacade         = (*departmentService)(nil)
	_ portssvc.EmployeeCollectionSvcFacade = (*employeeCollectionView)(nil)
	_ portssvc.EmployeeDraftSvc            = (*employeeDraft)(nil)
	_ portssvc.DraftRegistrySvc            = (*draftRegistry)(nil)
)
