package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (string, error) {
	args := m.Called(ctx, employee)
	return args.String(0), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) error {
	args := m.Called(ctx, employeeID, update)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) CreateDepartment(ctx context.Context, department domain.Department) (string, error) {
	args := m.Called(ctx, department)
	return args.String(0), args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, departmentID string, update domain.DepartmentUpdate) error {
	args := m.Called(ctx, departmentID, update)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

// --- Mock DepartmentCatalog ---
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListDepartments(ctx context.Context) []domain.DepartmentLabel {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DepartmentLabel)
}

func (m *MockCatalog) ResolveLabel(ctx context.Context, key string, lang domain.Language) string {
	args := m.Called(ctx, key, lang)
	return args.String(0)
}

func (m *MockCatalog) CanonicalKey(ctx context.Context, label string) string {
	args := m.Called(ctx, label)
	return args.String(0)
}

func (m *MockCatalog) Suggest(ctx context.Context, query string) []domain.DepartmentLabel {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.DepartmentLabel)
}

func (m *MockCatalog) Invalidate() {
	m.Called()
}

// --- Mock SavedNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OnSaved(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func intPtr(v int) *int { return &v }
