package models

import "time"

// DepartmentDocument is the stored shape of a department document.
type DepartmentDocument struct {
	EN             string     `json:"en"`
	AR             string     `json:"ar"`
	EmployeesCount int        `json:"employeesCount"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// DepartmentPatchDocument holds the label fields merged on update.
type DepartmentPatchDocument struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}
