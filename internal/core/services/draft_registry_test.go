package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(clock *fixedClock, ttl time.Duration) portssvc.DraftRegistrySvc {
	repo := new(MockEmployeeRepository)
	return services.NewDraftRegistry(func() portssvc.EmployeeDraftSvc {
		return services.NewEmployeeDraft(repo)
	}, ttl, clock)
}

func TestDraftRegistry_OpenGetClose(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	registry := newTestRegistry(clock, time.Minute)

	id, draft := registry.Open()
	require.NotEmpty(t, id)

	got, err := registry.Get(id)
	require.NoError(t, err)
	assert.Same(t, draft, got)

	registry.Close(id)
	_, err = registry.Get(id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftRegistry_ExpiresIdleDrafts(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	registry := newTestRegistry(clock, time.Minute)

	idle, _ := registry.Open()
	active, _ := registry.Open()

	clock.now = clock.now.Add(45 * time.Second)
	_, err := registry.Get(active)
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)
	_, err = registry.Get(idle)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = registry.Get(active)
	assert.NoError(t, err, "using a draft extends its lifetime")
}

func TestDraftRegistry_NewDraftIsUntracked(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	registry := newTestRegistry(clock, 0)

	first := registry.NewDraft()
	second := registry.NewDraft()

	assert.NotSame(t, first, second)
	_, err := registry.Get("")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
