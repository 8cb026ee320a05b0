package mapping

import (
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/SscSPs/employee_directory_app/internal/models"
)

// ToDepartmentDocument converts a domain Department to its stored document.
func ToDepartmentDocument(d domain.Department) models.DepartmentDocument {
	return models.DepartmentDocument{
		EN:             d.EN,
		AR:             d.AR,
		EmployeesCount: d.EmployeesCount,
		CreatedAt:      timePtr(d.CreatedAt),
	}
}

// ToDepartmentPatchDocument converts a domain DepartmentUpdate to the merge document.
func ToDepartmentPatchDocument(u domain.DepartmentUpdate) models.DepartmentPatchDocument {
	return models.DepartmentPatchDocument{EN: u.EN, AR: u.AR}
}

// ToDomainDepartment converts a stored document and its id to a domain Department.
func ToDomainDepartment(id string, m models.DepartmentDocument) domain.Department {
	return domain.Department{
		ID:             id,
		EN:             m.EN,
		AR:             m.AR,
		EmployeesCount: m.EmployeesCount,
		CreatedAt:      timeValue(m.CreatedAt),
	}
}

// ToDepartmentLabels converts department records to catalog entries keyed by their English label.
func ToDepartmentLabels(ds []domain.Department) []domain.DepartmentLabel {
	labels := make([]domain.DepartmentLabel, len(ds))
	for i, d := range ds {
		labels[i] = domain.DepartmentLabel{Key: d.EN, LabelEN: d.EN, LabelAR: d.AR}
	}
	return labels
}
