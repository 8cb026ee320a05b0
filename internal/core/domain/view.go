package domain

import "fmt"

// SortKey selects the ordering of the visible employee list.
type SortKey string

const (
	SortByName       SortKey = "name"       // ascending
	SortByAge        SortKey = "age"        // ascending, missing = 0
	SortByExperience SortKey = "experience" // descending, missing = 0
	SortByDepartment SortKey = "department" // ascending
)

// DefaultSortKey is used when no sort key was chosen.
const DefaultSortKey = SortByName

// ParseSortKey validates a sort key. The empty string maps to the default.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return DefaultSortKey, nil
	case SortByName, SortByAge, SortByExperience, SortByDepartment:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// EmployeeQuery is the filter/search/sort state of the collection view.
type EmployeeQuery struct {
	Department string  `json:"department"` // Blank or AllDepartmentsKey passes everything
	Search     string  `json:"search"`     // Case-insensitive substring of name
	Sort       SortKey `json:"sort"`
}

// DefaultEmployeeQuery returns the initial view state.
func DefaultEmployeeQuery() EmployeeQuery {
	return EmployeeQuery{Department: AllDepartmentsKey, Sort: DefaultSortKey}
}

// EmployeeStats are derived over the full snapshot, rounded to one decimal.
type EmployeeStats struct {
	Count             int     `json:"count"`
	AverageAge        float64 `json:"averageAge"`
	AverageExperience float64 `json:"averageExperience"`
}
