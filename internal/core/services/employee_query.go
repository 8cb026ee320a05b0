package services

import (
	"sort"
	"strings"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// deriveVisible filters, searches and sorts a copy of snapshot. It never
// mutates snapshot.
func deriveVisible(snapshot []domain.Employee, q domain.EmployeeQuery) []domain.Employee {
	department := strings.TrimSpace(q.Department)
	filterAll := department == "" || department == domain.AllDepartmentsKey
	term := strings.ToLower(q.Search)

	visible := make([]domain.Employee, 0, len(snapshot))
	for _, e := range snapshot {
		if !filterAll && e.Department != department {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		visible = append(visible, e)
	}

	sortEmployees(visible, q.Sort)
	return visible
}

// sortEmployees orders by key, then name ascending, then id ascending.
// Experience is the only descending key.
func sortEmployees(employees []domain.Employee, key domain.SortKey) {
	// A Collator is not safe for concurrent use, so each sort gets its own.
	col := collate.New(language.Und, collate.IgnoreCase)
	compareText := func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	sort.SliceStable(employees, func(i, j int) bool {
		a, b := employees[i], employees[j]
		var c int
		switch key {
		case domain.SortByAge:
			c = compareInt(a.AgeOrZero(), b.AgeOrZero())
		case domain.SortByExperience:
			c = compareInt(b.ExperienceOrZero(), a.ExperienceOrZero())
		case domain.SortByDepartment:
			c = compareText(a.Department, b.Department)
		}
		if c == 0 {
			c = compareText(a.Name, b.Name)
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		return c < 0
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// computeStats averages over every employee, counting missing values as 0.
func computeStats(snapshot []domain.Employee) domain.EmployeeStats {
	if len(snapshot) == 0 {
		return domain.EmployeeStats{}
	}
	var ageSum, expSum int64
	for _, e := range snapshot {
		ageSum += int64(e.AgeOrZero())
		expSum += int64(e.ExperienceOrZero())
	}
	count := decimal.NewFromInt(int64(len(snapshot)))
	return domain.EmployeeStats{
		Count:             len(snapshot),
		AverageAge:        decimal.NewFromInt(ageSum).Div(count).Round(1).InexactFloat64(),
		AverageExperience: decimal.NewFromInt(expSum).Div(count).Round(1).InexactFloat64(),
	}
}
