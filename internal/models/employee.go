package models

import "time"

// EmployeeDocument is the stored shape of an employee document.
// Field names match the documents written by the web client.
type EmployeeDocument struct {
	Name        string     `json:"name"`
	Age         *int       `json:"age"`
	Experience  *int       `json:"experience"`
	Department  string     `json:"department"`
	PhotoBase64 string     `json:"photoBase64"`
	CVBase64    string     `json:"cvBase64"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// EmployeePatchDocument holds the fields merged into an existing employee
// document on update. createdAt is absent so an update never overwrites it.
type EmployeePatchDocument struct {
	Name        string    `json:"name"`
	Age         *int      `json:"age"`
	Experience  *int      `json:"experience"`
	Department  string    `json:"department"`
	PhotoBase64 string    `json:"photoBase64"`
	CVBase64    string    `json:"cvBase64"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
