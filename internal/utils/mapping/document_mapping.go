package mapping

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/SscSPs/employee_directory_app/internal/models"
)

// DecodeEmployees converts raw stored documents into domain Employees.
// Documents that cannot be decoded are left out; skipped joins their errors
// and is nil when every document decoded.
func DecodeEmployees(raws []models.RawDocument) (employees []domain.Employee, skipped error) {
	employees = make([]domain.Employee, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		emp, err := DecodeEmployee(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		employees = append(employees, emp)
	}
	return employees, errors.Join(errs...)
}

// DecodeEmployee converts one raw stored document into a domain Employee.
func DecodeEmployee(raw models.RawDocument) (domain.Employee, error) {
	var doc models.EmployeeDocument
	if err := json.Unmarshal(raw.Body, &doc); err != nil {
		return domain.Employee{}, fmt.Errorf("failed to decode employee document %s: %w", raw.ID, err)
	}
	return ToDomainEmployee(raw.ID, doc), nil
}

// DecodeDepartments converts raw stored documents into domain Departments,
// skipping undecodable documents the same way DecodeEmployees does.
func DecodeDepartments(raws []models.RawDocument) (departments []domain.Department, skipped error) {
	departments = make([]domain.Department, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		var doc models.DepartmentDocument
		if err := json.Unmarshal(raw.Body, &doc); err != nil {
			errs = append(errs, fmt.Errorf("failed to decode department document %s: %w", raw.ID, err))
			continue
		}
		departments = append(departments, ToDomainDepartment(raw.ID, doc))
	}
	return departments, errors.Join(errs...)
}
