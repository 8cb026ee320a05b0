package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/platform/metrics"
	"github.com/google/uuid"
)

// DefaultDraftTTL is how long an untouched draft session survives.
const DefaultDraftTTL = 30 * time.Minute

type draftEntry struct {
	draft    portssvc.EmployeeDraftSvc
	lastUsed time.Time
}

// draftRegistry keeps draft sessions between requests. Expired sessions are
// swept lazily on Open and Get.
type draftRegistry struct {
	newDraft func() portssvc.EmployeeDraftSvc
	ttl      time.Duration
	clock    Clock

	mu      sync.Mutex
	entries map[string]*draftEntry
}

// NewDraftRegistry creates a registry producing drafts with newDraft.
func NewDraftRegistry(newDraft func() portssvc.EmployeeDraftSvc, ttl time.Duration, clock Clock) portssvc.DraftRegistrySvc {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	if clock == nil {
		clock = realClock{}
	}
	return &draftRegistry{
		newDraft: newDraft,
		ttl:      ttl,
		clock:    clock,
		entries:  map[string]*draftEntry{},
	}
}

var _ portssvc.DraftRegistrySvc = (*draftRegistry)(nil)

func (r *draftRegistry) Open() (string, portssvc.EmployeeDraftSvc) {
	id := uuid.NewString()
	draft := r.newDraft()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	r.entries[id] = &draftEntry{draft: draft, lastUsed: r.clock.Now()}
	metrics.SetOpenDrafts(len(r.entries))
	return id, draft
}

func (r *draftRegistry) Get(draftID string) (portssvc.EmployeeDraftSvc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()

	entry, ok := r.entries[draftID]
	if !ok {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	entry.lastUsed = r.clock.Now()
	return entry.draft, nil
}

func (r *draftRegistry) Close(draftID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, draftID)
	metrics.SetOpenDrafts(len(r.entries))
}

func (r *draftRegistry) NewDraft() portssvc.EmployeeDraftSvc {
	return r.newDraft()
}

func (r *draftRegistry) sweepLocked() {
	cutoff := r.clock.Now().Add(-r.ttl)
	for id, entry := range r.entries {
		if entry.lastUsed.Before(cutoff) {
			delete(r.entries, id)
		}
	}
	metrics.SetOpenDrafts(len(r.entries))
}
