package domain

import "time"

// AllDepartmentsKey is the sentinel catalog key meaning "no filter applied".
const AllDepartmentsKey = "All Departments"

// Department is a record of the departments collection.
type Department struct {
	ID             string    `json:"id"`
	EN             string    `json:"en"` // De facto stable key referenced by Employee.Department
	AR             string    `json:"ar"`
	EmployeesCount int       `json:"employeesCount"` // Denormalized, may drift
	CreatedAt      time.Time `json:"createdAt"`
}

// DepartmentUpdate replaces the labels of an existing department.
type DepartmentUpdate struct {
	EN string
	AR string
}

// DepartmentLabel is one catalog entry.
type DepartmentLabel struct {
	Key     string `json:"key"`
	LabelEN string `json:"labelEn"`
	LabelAR string `json:"labelAr"`
}

// Label returns the label for the requested language.
func (d DepartmentLabel) Label(lang Language) string {
	if lang == LanguageArabic && d.LabelAR != "" {
		return d.LabelAR
	}
	return d.LabelEN
}

// IsSentinel reports whether the entry is the synthetic "All Departments" entry.
func (d DepartmentLabel) IsSentinel() bool {
	return d.Key == AllDepartmentsKey
}

// AllDepartments is the sentinel catalog entry.
var AllDepartments = DepartmentLabel{Key: AllDepartmentsKey, LabelEN: "All Departments", LabelAR: "جميع الأقسام"}

// UnspecifiedDepartment is rendered for blank department references.
var UnspecifiedDepartment = DepartmentLabel{Key: "", LabelEN: "Unspecified", LabelAR: "غير محدد"}

// StaticDepartments is the compiled department table.
var StaticDepartments = []DepartmentLabel{
	{Key: "Civil", LabelEN: "Civil", LabelAR: "مدني"},
	{Key: "Architectural", LabelEN: "Architectural", LabelAR: "معماري"},
	{Key: "Survey", LabelEN: "Survey", LabelAR: "مساحة"},
	{Key: "Electrical", LabelEN: "Electrical", LabelAR: "كهرباء"},
	{Key: "Mechanical", LabelEN: "Mechanical", LabelAR: "ميكانيكة"},
	{Key: "DC", LabelEN: "DC", LabelAR: "DC"},
	{Key: "HR", LabelEN: "HR", LabelAR: "HR"},
	{Key: "Accountants", LabelEN: "Accountants", LabelAR: "محاسبين"},
	{Key: "Safety", LabelEN: "Safety", LabelAR: "سيفتي"},
	{Key: "Technical Office", LabelEN: "Technical Office", LabelAR: "مكتب فني"},
	{Key: "QS", LabelEN: "QS", LabelAR: "QS"},
	{Key: "Planning", LabelEN: "Planning", LabelAR: "Planning"},
	{Key: "QC", LabelEN: "QC", LabelAR: "مراقبة جودة"},
	{Key: "Executive Engineer", LabelEN: "Executive Engineer", LabelAR: "مهندس تنفيذي"},
}
