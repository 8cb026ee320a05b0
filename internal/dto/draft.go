package dto

import "github.com/SscSPs/employee_directory_app/internal/core/domain"

// OpenDraftRequest optionally names an employee to load for editing.
type OpenDraftRequest struct {
	EmployeeID string `json:"employeeID"`
}

// OpenDraftResponse is returned when a draft session is opened.
type OpenDraftResponse struct {
	DraftID string               `json:"draftID"`
	Draft   domain.DraftSnapshot `json:"draft"`
}

// SetDraftFieldsRequest maps field names (name, age, experience, department) to raw values.
type SetDraftFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// AttachEncodedRequest attaches an already encoded data URI to a draft slot.
type AttachEncodedRequest struct {
	FileName string `json:"fileName"`
	DataURI  string `json:"dataURI" binding:"required"`
}
