package domain

import "time"

// DataURI is a self-describing inline attachment: "data:<mime>;base64,<payload>".
// The empty value means no attachment.
type DataURI string

// IsEmpty reports whether no attachment is present.
func (d DataURI) IsEmpty() bool {
	return d == ""
}

// Age bounds enforced on submit when an age is present.
const (
	MinEmployeeAge = 18
	MaxEmployeeAge = 70
)

// Employee is a record of the employees collection.
type Employee struct {
	ID         string  `json:"id"`         // Assigned by the store, immutable
	Name       string  `json:"name"`       // Required, non-empty
	Age        *int    `json:"age"`        // Optional, [18,70]
	Experience *int    `json:"experience"` // Optional years, >= 0
	Department string  `json:"department"` // English catalog key, not referentially enforced
	Photo      DataURI `json:"photo"`
	CV         DataURI `json:"cv"`
	Timestamps
}

// AgeOrZero returns the age, treating a missing value as 0.
func (e Employee) AgeOrZero() int {
	if e.Age == nil {
		return 0
	}
	return *e.Age
}

// ExperienceOrZero returns the years of experience, treating a missing value as 0.
func (e Employee) ExperienceOrZero() int {
	if e.Experience == nil {
		return 0
	}
	return *e.Experience
}

// EmployeeUpdate is the partial record sent to the store when an existing
// employee is edited. It never carries CreatedAt.
type EmployeeUpdate struct {
	Name       string
	Age        *int
	Experience *int
	Department string
	Photo      DataURI
	CV         DataURI
	UpdatedAt  time.Time
}

// Seniority is a coarse level derived from years of experience.
type Seniority string

const (
	SeniorityNew          Seniority = "NEW"
	SeniorityJunior       Seniority = "JUNIOR"
	SeniorityIntermediate Seniority = "INTERMEDIATE"
	SeniorityExpert       Seniority = "EXPERT"
)

// SeniorityFor classifies years of experience.
func SeniorityFor(experience int) Seniority {
	switch {
	case experience > 10:
		return SeniorityExpert
	case experience > 5:
		return SeniorityIntermediate
	case experience > 2:
		return SeniorityJunior
	default:
		return SeniorityNew
	}
}
