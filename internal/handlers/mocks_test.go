package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeCollection ---
type MockEmployeeCollection struct {
	mock.Mock
}

func (m *MockEmployeeCollection) All() ([]domain.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) Visible() ([]domain.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) Query(q domain.EmployeeQuery) ([]domain.Employee, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) Stats() (domain.EmployeeStats, error) {
	args := m.Called()
	return args.Get(0).(domain.EmployeeStats), args.Error(1)
}

func (m *MockEmployeeCollection) Find(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeCollection) SetDepartmentFilter(department string) { m.Called(department) }
func (m *MockEmployeeCollection) SetSearchTerm(term string)             { m.Called(term) }

func (m *MockEmployeeCollection) SetSortKey(key domain.SortKey) error {
	return m.Called(key).Error(0)
}

func (m *MockEmployeeCollection) CurrentQuery() domain.EmployeeQuery {
	return m.Called().Get(0).(domain.EmployeeQuery)
}

func (m *MockEmployeeCollection) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockEmployeeCollection) OnSaved(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockEmployeeCollection) RequestDelete(ctx context.Context, employeeID string, confirmed bool) error {
	return m.Called(ctx, employeeID, confirmed).Error(0)
}

var _ portssvc.EmployeeCollectionSvcFacade = (*MockEmployeeCollection)(nil)

// --- Mock DepartmentCatalog ---
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListDepartments(ctx context.Context) []domain.DepartmentLabel {
	return m.Called(ctx).Get(0).([]domain.DepartmentLabel)
}

func (m *MockCatalog) ResolveLabel(ctx context.Context, key string, lang domain.Language) string {
	return m.Called(ctx, key, lang).String(0)
}

func (m *MockCatalog) CanonicalKey(ctx context.Context, label string) string {
	return m.Called(ctx, label).String(0)
}

func (m *MockCatalog) Suggest(ctx context.Context, query string) []domain.DepartmentLabel {
	return m.Called(ctx, query).Get(0).([]domain.DepartmentLabel)
}

func (m *MockCatalog) Invalidate() { m.Called() }

var _ portssvc.DepartmentCatalogSvc = (*MockCatalog)(nil)

// --- Mock DepartmentService ---
type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) ListDepartmentRecords(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error {
	return m.Called(ctx, departmentID, req).Error(0)
}

func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, departmentID string, confirmed bool) error {
	return m.Called(ctx, departmentID, confirmed).Error(0)
}

func (m *MockDepartmentService) SeedDepartments(ctx context.Context, labels []domain.DepartmentLabel) (int, error) {
	args := m.Called(ctx, labels)
	return args.Int(0), args.Error(1)
}

var _ portssvc.DepartmentSvcFacade = (*MockDepartmentService)(nil)

// --- Mock DraftRegistry ---
type MockDraftRegistry struct {
	mock.Mock
}

func (m *MockDraftRegistry) Open() (string, portssvc.EmployeeDraftSvc) {
	args := m.Called()
	return args.String(0), args.Get(1).(portssvc.EmployeeDraftSvc)
}

func (m *MockDraftRegistry) Get(draftID string) (portssvc.EmployeeDraftSvc, error) {
	args := m.Called(draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portssvc.EmployeeDraftSvc), args.Error(1)
}

func (m *MockDraftRegistry) Close(draftID string) { m.Called(draftID) }

func (m *MockDraftRegistry) NewDraft() portssvc.EmployeeDraftSvc {
	return m.Called().Get(0).(portssvc.EmployeeDraftSvc)
}

var _ portssvc.DraftRegistrySvc = (*MockDraftRegistry)(nil)

// --- Mock EmployeeDraft ---
type MockDraft struct {
	mock.Mock
}

func (m *MockDraft) LoadForEdit(employee domain.Employee) error {
	return m.Called(employee).Error(0)
}

func (m *MockDraft) SetField(field domain.DraftField, value string) error {
	return m.Called(field, value).Error(0)
}

func (m *MockDraft) AttachFile(slot domain.AttachmentSlot, fileName, contentType string, r io.Reader) error {
	return m.Called(slot, fileName, contentType, r).Error(0)
}

func (m *MockDraft) AttachEncoded(slot domain.AttachmentSlot, fileName string, uri domain.DataURI) error {
	return m.Called(slot, fileName, uri).Error(0)
}

func (m *MockDraft) Snapshot() domain.DraftSnapshot {
	return m.Called().Get(0).(domain.DraftSnapshot)
}

func (m *MockDraft) Submit(ctx context.Context) (*domain.SubmitResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmitResult), args.Error(1)
}

func (m *MockDraft) Cancel(confirmed bool) (domain.CancelOutcome, error) {
	args := m.Called(confirmed)
	return args.Get(0).(domain.CancelOutcome), args.Error(1)
}

var _ portssvc.EmployeeDraftSvc = (*MockDraft)(nil)
