package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func testLabels(key string, lang domain.Language) string {
	if key == "Civil" && lang == domain.LanguageArabic {
		return "مدني"
	}
	if key == "" {
		return domain.UnspecifiedDepartment.Label(lang)
	}
	return key
}

func testEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "e1", Name: "Ali", Age: intPtr(30), Experience: intPtr(7), Department: "Civil"},
		{ID: "e2", Name: "Mona"},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(testEmployees(), testLabels)

	require.Len(t, rows, 2)
	assert.Equal(t, "Civil", rows[0].DepartmentEN)
	assert.Equal(t, "مدني", rows[0].DepartmentAR)
	assert.Equal(t, domain.SeniorityIntermediate, rows[0].Seniority)
	assert.Equal(t, "Unspecified", rows[1].DepartmentEN)
	assert.Equal(t, domain.SeniorityNew, rows[1].Seniority)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, Rows(testEmployees(), testLabels)))

	require.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{"e1", "Ali", "30", "7", "Civil", "مدني", "INTERMEDIATE"}, records[1])
	assert.Equal(t, []string{"e2", "Mona", "", "", "Unspecified", "غير محدد", "NEW"}, records[2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteXLSX(&buf, Rows(testEmployees(), testLabels)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"e1", "Ali", "30", "7", "Civil", "مدني", "INTERMEDIATE"}, rows[1])
	assert.Equal(t, "Mona", rows[2][1])
}

func TestFormatContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}
