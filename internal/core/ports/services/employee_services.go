package services

import (
	"context"
	"io"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// EmployeeCollectionReaderSvc defines read access to the employee snapshot
type EmployeeCollectionReaderSvc interface {
	// All returns the full snapshot, or apperrors.ErrStoreUnavailable if the last fetch failed.
	All() ([]domain.Employee, error)
	// Visible returns the snapshot filtered, searched and sorted by the current view state.
	Visible() ([]domain.Employee, error)
	// Query derives a visible list for an explicit view state without changing the current one.
	Query(q domain.EmployeeQuery) ([]domain.Employee, error)
	// Stats derives count and averages over the full snapshot.
	Stats() (domain.EmployeeStats, error)
	// Find looks up one employee, falling back to the store when it is not in the snapshot.
	Find(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeCollectionStateSvc defines the view state setters
type EmployeeCollectionStateSvc interface {
	SetDepartmentFilter(department string)
	SetSearchTerm(term string)
	SetSortKey(key domain.SortKey) error
	CurrentQuery() domain.EmployeeQuery
}

// EmployeeCollectionSyncSvc defines the re-fetch contract of the view
type EmployeeCollectionSyncSvc interface {
	// Refresh replaces the snapshot wholesale from the store.
	Refresh(ctx context.Context) error
	// OnSaved is the invalidate-and-reload message sent after a successful write.
	OnSaved(ctx context.Context) error
	// RequestDelete deletes an employee after confirmation, then re-fetches.
	RequestDelete(ctx context.Context, employeeID string, confirmed bool) error
}

// EmployeeCollectionSvcFacade combines all collection view interfaces
type EmployeeCollectionSvcFacade interface {
	EmployeeCollectionReaderSvc
	EmployeeCollectionStateSvc
	EmployeeCollectionSyncSvc
}

// SavedNotifier receives the invalidate-and-reload message from writers.
type SavedNotifier interface {
	OnSaved(ctx context.Context) error
}

// EmployeeDraftSvc is the create/edit form state machine of one employee
type EmployeeDraftSvc interface {
	// LoadForEdit and Cancel fail with ErrBusy while a submit is in flight.
	LoadForEdit(employee domain.Employee) error
	SetField(field domain.DraftField, value string) error
	// AttachFile starts converting the file into a data URI in the background.
	AttachFile(slot domain.AttachmentSlot, fileName, contentType string, r io.Reader) error
	// AttachEncoded attaches an already encoded data URI.
	AttachEncoded(slot domain.AttachmentSlot, fileName string, uri domain.DataURI) error
	Snapshot() domain.DraftSnapshot
	Submit(ctx context.Context) (*domain.SubmitResult, error)
	Cancel(confirmed bool) (domain.CancelOutcome, error)
}

// DraftRegistrySvc keeps open drafts between requests
type DraftRegistrySvc interface {
	Open() (string, EmployeeDraftSvc)
	Get(draftID string) (EmployeeDraftSvc, error)
	Close(draftID string)
	// NewDraft returns a draft that is not tracked by the registry, for one-shot submissions.
	NewDraft() EmployeeDraftSvc
}
