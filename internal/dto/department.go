package dto

import (
	"time"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// CreateDepartmentRequest defines the data needed to create a new department.
type CreateDepartmentRequest struct {
	EN string `json:"en" binding:"required"`
	AR string `json:"ar" binding:"required"`
}

// UpdateDepartmentRequest defines the labels replaced on an existing department.
type UpdateDepartmentRequest struct {
	EN string `json:"en" binding:"required"`
	AR string `json:"ar" binding:"required"`
}

// DepartmentResponse defines the data returned for a department record.
type DepartmentResponse struct {
	ID             string     `json:"id"`
	EN             string     `json:"en"`
	AR             string     `json:"ar"`
	EmployeesCount int        `json:"employeesCount"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// CatalogEntryResponse defines one entry of the department catalog.
type CatalogEntryResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	LabelEN string `json:"labelEn"`
	LabelAR string `json:"labelAr"`
}

// ResolvedLabelResponse is returned by the label lookup endpoint.
type ResolvedLabelResponse struct {
	Key      string          `json:"key"`
	Language domain.Language `json:"language"`
	Label    string          `json:"label"`
}

// ToDepartmentResponse converts a domain.Department to DepartmentResponse DTO
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:             d.ID,
		EN:             d.EN,
		AR:             d.AR,
		EmployeesCount: d.EmployeesCount,
	}
	if !d.CreatedAt.IsZero() {
		createdAt := d.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToListDepartmentResponse converts a slice of domain.Department to a slice of DepartmentResponse DTOs
func ToListDepartmentResponse(departments []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(departments))
	for i := range departments {
		res[i] = ToDepartmentResponse(&departments[i])
	}
	return res
}

// ToCatalogResponse converts catalog entries, picking the label for lang.
func ToCatalogResponse(entries []domain.DepartmentLabel, lang domain.Language) []CatalogEntryResponse {
	res := make([]CatalogEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = CatalogEntryResponse{
			Key:     e.Key,
			Label:   e.Label(lang),
			LabelEN: e.LabelEN,
			LabelAR: e.LabelAR,
		}
	}
	return res
}
