package export

import (
	"strconv"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// LabelFunc resolves a department key to its label in lang.
type LabelFunc func(key string, lang domain.Language) string

// Row is one exported employee.
type Row struct {
	ID           string
	Name         string
	Age          *int
	Experience   *int
	DepartmentEN string
	DepartmentAR string
	Seniority    domain.Seniority
}

var header = []string{"ID", "Name", "Age", "Experience", "Department", "Department (AR)", "Seniority"}

// Rows flattens employees into export rows in the given order.
func Rows(employees []domain.Employee, label LabelFunc) []Row {
	rows := make([]Row, len(employees))
	for i, e := range employees {
		rows[i] = Row{
			ID:           e.ID,
			Name:         e.Name,
			Age:          e.Age,
			Experience:   e.Experience,
			DepartmentEN: label(e.Department, domain.LanguageEnglish),
			DepartmentAR: label(e.Department, domain.LanguageArabic),
			Seniority:    domain.SeniorityFor(e.ExperienceOrZero()),
		}
	}
	return rows
}

func (r Row) record() []string {
	return []string{r.ID, r.Name, optionalInt(r.Age), optionalInt(r.Experience), r.DepartmentEN, r.DepartmentAR, string(r.Seniority)}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
