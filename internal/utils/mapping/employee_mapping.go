package mapping

import (
	"time"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/SscSPs/employee_directory_app/internal/models"
)

// ToEmployeeDocument converts a domain Employee to its stored document.
func ToEmployeeDocument(d domain.Employee) models.EmployeeDocument {
	return models.EmployeeDocument{
		Name:        d.Name,
		Age:         d.Age,
		Experience:  d.Experience,
		Department:  d.Department,
		PhotoBase64: string(d.Photo),
		CVBase64:    string(d.CV),
		CreatedAt:   timePtr(d.CreatedAt),
		UpdatedAt:   timePtr(d.UpdatedAt),
	}
}

// ToEmployeePatchDocument converts a domain EmployeeUpdate to the merge document.
func ToEmployeePatchDocument(u domain.EmployeeUpdate) models.EmployeePatchDocument {
	return models.EmployeePatchDocument{
		Name:        u.Name,
		Age:         u.Age,
		Experience:  u.Experience,
		Department:  u.Department,
		PhotoBase64: string(u.Photo),
		CVBase64:    string(u.CV),
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToDomainEmployee converts a stored document and its id to a domain Employee.
func ToDomainEmployee(id string, m models.EmployeeDocument) domain.Employee {
	return domain.Employee{
		ID:         id,
		Name:       m.Name,
		Age:        m.Age,
		Experience: m.Experience,
		Department: m.Department,
		Photo:      domain.DataURI(m.PhotoBase64),
		CV:         domain.DataURI(m.CVBase64),
		Timestamps: domain.Timestamps{
			CreatedAt: timeValue(m.CreatedAt),
			UpdatedAt: timeValue(m.UpdatedAt),
		},
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
