package redisstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHashClient keeps hashes and counters in memory. Setting err makes
// every command fail.
type fakeHashClient struct {
	hashes   map[string]map[string]string
	counters map[string]int64
	err      error
}

func newFakeHashClient() *fakeHashClient {
	return &fakeHashClient{hashes: map[string]map[string]string{}, counters: map[string]int64{}}
}

func (f *fakeHashClient) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	if f.err != nil {
		return redis.NewMapStringStringResult(nil, f.err)
	}
	out := map[string]string{}
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, nil)
}

func (f *fakeHashClient) HGet(_ context.Context, key, field string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeHashClient) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	h, ok := f.hashes[key]
	if !ok {
		h = map[string]string{}
		f.hashes[key] = h
	}
	var added int64
	for i := 0; i+1 < len(values); i += 2 {
		field := fmt.Sprint(values[i])
		if _, exists := h[field]; !exists {
			added++
		}
		switch v := values[i+1].(type) {
		case []byte:
			h[field] = string(v)
		default:
			h[field] = fmt.Sprint(v)
		}
	}
	return redis.NewIntResult(added, nil)
}

func (f *fakeHashClient) HDel(_ context.Context, key string, fields ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var removed int64
	for _, field := range fields {
		if _, ok := f.hashes[key][field]; ok {
			delete(f.hashes[key], field)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeHashClient) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func (f *fakeHashClient) Ping(_ context.Context) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	return redis.NewStatusResult("PONG", nil)
}

func intPtr(v int) *int { return &v }

func TestRedisEmployees_CreateListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	provider := NewRepositoryProvider(newFakeHashClient(), "edir")

	var ids []string
	for _, name := range []string{"Zed", "Ali", "Mona"} {
		id, err := provider.EmployeeRepo.CreateEmployee(ctx, domain.Employee{Name: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	employees, err := provider.EmployeeRepo.ListEmployees(ctx)

	require.NoError(t, err)
	require.Len(t, employees, 3)
	for i, emp := range employees {
		assert.Equal(t, ids[i], emp.ID)
	}
	assert.Equal(t, "Zed", employees[0].Name)
}

func TestRedisEmployees_UpdateMergesAndKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	provider := NewRepositoryProvider(newFakeHashClient(), "edir")
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	id, err := provider.EmployeeRepo.CreateEmployee(ctx, domain.Employee{
		Name:       "Ali",
		Age:        intPtr(30),
		CV:         "data:application/pdf;base64,aGk=",
		Timestamps: domain.Timestamps{CreatedAt: created, UpdatedAt: created},
	})
	require.NoError(t, err)

	updated := created.Add(time.Hour)
	err = provider.EmployeeRepo.UpdateEmployee(ctx, id, domain.EmployeeUpdate{
		Name:      "Ali Hassan",
		Age:       intPtr(31),
		CV:        "data:application/pdf;base64,aGk=",
		UpdatedAt: updated,
	})
	require.NoError(t, err)

	emp, err := provider.EmployeeRepo.FindEmployeeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ali Hassan", emp.Name)
	assert.Equal(t, 31, *emp.Age)
	assert.True(t, created.Equal(emp.CreatedAt))
	assert.True(t, updated.Equal(emp.UpdatedAt))
	assert.Equal(t, domain.DataURI("data:application/pdf;base64,aGk="), emp.CV)
}

func TestRedisEmployees_UpdateMissingIsNotFound(t *testing.T) {
	provider := NewRepositoryProvider(newFakeHashClient(), "edir")

	err := provider.EmployeeRepo.UpdateEmployee(context.Background(), "missing", domain.EmployeeUpdate{Name: "X"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRedisEmployees_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	provider := NewRepositoryProvider(newFakeHashClient(), "edir")

	id, err := provider.EmployeeRepo.CreateEmployee(ctx, domain.Employee{Name: "Ali"})
	require.NoError(t, err)

	require.NoError(t, provider.EmployeeRepo.DeleteEmployee(ctx, id))
	require.NoError(t, provider.EmployeeRepo.DeleteEmployee(ctx, id))

	_, err = provider.EmployeeRepo.FindEmployeeByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRedisEmployees_ListUnavailable(t *testing.T) {
	client := newFakeHashClient()
	client.err = errors.New("dial tcp: connection refused")
	provider := NewRepositoryProvider(client, "edir")

	employees, err := provider.EmployeeRepo.ListEmployees(context.Background())

	assert.Nil(t, employees)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Error(t, provider.Ping(context.Background()))
}

func TestRedisDepartments_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeHashClient()
	provider := NewRepositoryProvider(client, "edir")

	id, err := provider.DepartmentRepo.CreateDepartment(ctx, domain.Department{EN: "QA", AR: "جودة"})
	require.NoError(t, err)
	require.NoError(t, provider.DepartmentRepo.UpdateDepartment(ctx, id, domain.DepartmentUpdate{EN: "QA", AR: "ضبط الجودة"}))

	departments, err := provider.DepartmentRepo.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "ضبط الجودة", departments[0].AR)
	assert.Contains(t, client.hashes, "edir:departments")
	assert.NoError(t, provider.Ping(ctx))
}
