package dto

import (
	"time"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// EmployeeForm carries the scalar fields of a one-shot create or edit.
// Values are raw form strings; validation happens when the draft is submitted.
// Files travel as multipart parts named "photo" and "cv".
type EmployeeForm struct {
	Name       string `form:"name" json:"name"`
	Age        string `form:"age" json:"age"`
	Experience string `form:"experience" json:"experience"`
	Department string `form:"department" json:"department"`
	// Photo and CV are data URIs, used by JSON clients only.
	Photo string `form:"-" json:"photo"`
	CV    string `form:"-" json:"cv"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Department string `form:"department"`
	Search     string `form:"search"`
	Sort       string `form:"sort" binding:"omitempty,oneof=name age experience department"`
	Lang       string `form:"lang" binding:"omitempty,oneof=en ar"`
}

// ExportEmployeesParams defines query parameters for exporting employees.
type ExportEmployeesParams struct {
	ListEmployeesParams
	Format string `form:"format,default=csv" binding:"oneof=csv xlsx"`
}

// EmployeeResponse defines the data returned for an employee.
// Attachments are not inlined; they are served by the photo and CV endpoints.
type EmployeeResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Age             *int             `json:"age"`
	Experience      *int             `json:"experience"`
	Department      string           `json:"department"`
	DepartmentLabel string           `json:"departmentLabel"`
	Seniority       domain.Seniority `json:"seniority"`
	HasPhoto        bool             `json:"hasPhoto"`
	HasCV           bool             `json:"hasCV"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
}

// ListEmployeesResponse wraps the visible employees together with the statistics.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse   `json:"employees"`
	Visible   int                  `json:"visible"`
	Query     domain.EmployeeQuery `json:"query"`
	Stats     domain.EmployeeStats `json:"stats"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
// departmentLabel is the already resolved display label.
func ToEmployeeResponse(emp *domain.Employee, departmentLabel string) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		Age:             emp.Age,
		Experience:      emp.Experience,
		Department:      emp.Department,
		DepartmentLabel: departmentLabel,
		Seniority:       domain.SeniorityFor(emp.ExperienceOrZero()),
		HasPhoto:        !emp.Photo.IsEmpty(),
		HasCV:           !emp.CV.IsEmpty(),
	}
	if !emp.CreatedAt.IsZero() {
		createdAt := emp.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !emp.UpdatedAt.IsZero() {
		updatedAt := emp.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
