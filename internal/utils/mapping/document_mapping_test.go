package mapping

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/employee_directory_app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmployees_SkipsBadDocuments(t *testing.T) {
	raws := []models.RawDocument{
		{ID: "e1", Body: json.RawMessage(`{"name":"Ali","age":25,"experience":3,"department":"Civil"}`)},
		{ID: "e2", Body: json.RawMessage(`{"age":"twenty"}`)},
		{ID: "e3", Body: json.RawMessage(`{"name":"Mona"}`)},
	}

	employees, skipped := DecodeEmployees(raws)

	require.Len(t, employees, 2)
	assert.Equal(t, "e1", employees[0].ID)
	assert.Equal(t, 25, *employees[0].Age)
	assert.Equal(t, "e3", employees[1].ID)
	require.Error(t, skipped)
	assert.Contains(t, skipped.Error(), "employee document e2")
}

func TestDecodeEmployees_AllGood(t *testing.T) {
	employees, skipped := DecodeEmployees([]models.RawDocument{{ID: "e1", Body: json.RawMessage(`{"name":"Ali"}`)}})

	assert.NoError(t, skipped)
	assert.Len(t, employees, 1)
}

func TestDecodeDepartments_SkipsBadDocuments(t *testing.T) {
	raws := []models.RawDocument{
		{ID: "d1", Body: json.RawMessage(`{"en":"Civil","ar":"مدني","employeesCount":2}`)},
		{ID: "d2", Body: json.RawMessage(`not json`)},
	}

	departments, skipped := DecodeDepartments(raws)

	require.Len(t, departments, 1)
	assert.Equal(t, "Civil", departments[0].EN)
	assert.Contains(t, skipped.Error(), "department document d2")
}
