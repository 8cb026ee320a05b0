package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonDoc matches a JSONB argument by decoding it and running check.
type jsonDoc struct {
	check func(doc map[string]any) bool
}

func (j jsonDoc) Match(v any) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return false
	}
	return j.check(doc)
}

func intPtr(v int) *int { return &v }

func newEmployeeRepo(t *testing.T) (pgxmock.PgxPoolIface, *PgxEmployeeRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, newPgxEmployeeRepository(mock).(*PgxEmployeeRepository)
}

func TestEmployeeRepository_List(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("e1", []byte(`{"name":"Ali","age":30,"experience":3,"department":"Civil","photoBase64":"","cvBase64":"data:application/pdf;base64,aGk="}`)).
		AddRow("e2", []byte(`{"name":"Mona","department":"مدني"}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM employees ORDER BY inserted_at, id;`)).WillReturnRows(rows)

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "e1", employees[0].ID)
	assert.Equal(t, 30, *employees[0].Age)
	assert.Equal(t, domain.DataURI("data:application/pdf;base64,aGk="), employees[0].CV)
	assert.True(t, employees[0].Photo.IsEmpty())
	assert.Nil(t, employees[1].Age)
	assert.Equal(t, "مدني", employees[1].Department)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_SkipsUndecodableDocument(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("e1", []byte(`{"name":"Ali","age":25}`)).
		AddRow("e2", []byte(`{"name":["not","a","string"]}`)).
		AddRow("e3", []byte(`{"name":"Mona"}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM employees ORDER BY inserted_at, id;`)).WillReturnRows(rows)

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "e1", employees[0].ID)
	assert.Equal(t, "e3", employees[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_Unavailable(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM employees`)).WillReturnError(errors.New("connection refused"))

	employees, err := repo.ListEmployees(context.Background())

	assert.Nil(t, employees)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).AddRow("e1", []byte(`{"name":"Ali"}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM employees WHERE id = $1;`)).WithArgs("e1").WillReturnRows(rows)

	emp, err := repo.FindEmployeeByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "Ali", emp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM employees WHERE id = $1;`)).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	emp, err := repo.FindEmployeeByID(context.Background(), "missing")

	assert.Nil(t, emp)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock, repo := newEmployeeRepo(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO employees (id, doc) VALUES ($1, $2);`)).
		WithArgs(pgxmock.AnyArg(), jsonDoc{check: func(doc map[string]any) bool {
			return doc["name"] == "Ali" && doc["age"] == float64(30) && doc["createdAt"] != nil && doc["photoBase64"] == ""
		}}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := repo.CreateEmployee(context.Background(), domain.Employee{
		Name:       "Ali",
		Age:        intPtr(30),
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	})

	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_MergesWithoutCreatedAt(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET doc = doc || $2::jsonb WHERE id = $1;`)).
		WithArgs("e1", jsonDoc{check: func(doc map[string]any) bool {
			_, hasCreated := doc["createdAt"]
			return !hasCreated && doc["cvBase64"] == "data:application/pdf;base64,aGk=" && doc["updatedAt"] != nil
		}}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateEmployee(context.Background(), "e1", domain.EmployeeUpdate{
		Name:      "Ali",
		CV:        "data:application/pdf;base64,aGk=",
		UpdatedAt: time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees`)).
		WithArgs("missing", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateEmployee(context.Background(), "missing", domain.EmployeeUpdate{Name: "X"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_AbsentIsNotAnError(t *testing.T) {
	mock, repo := newEmployeeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1;`)).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeleteEmployee(context.Background(), "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_Error(t *testing.T) {
	mock, repo := newEmployeeRepo(t)
	dbErr := errors.New("boom")

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees`)).WithArgs("e1").WillReturnError(dbErr)

	err := repo.DeleteEmployee(context.Background(), "e1")

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
