package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/employee_directory_app/internal/core/ports/services"
	"github.com/SscSPs/employee_directory_app/internal/utils/mapping"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CatalogSource selects where department labels come from.
type CatalogSource string

const (
	CatalogSourceStatic CatalogSource = "static"
	CatalogSourceStore  CatalogSource = "store"
)

// ParseCatalogSource validates a configured catalog source.
func ParseCatalogSource(s string) (CatalogSource, error) {
	switch CatalogSource(strings.ToLower(strings.TrimSpace(s))) {
	case "", CatalogSourceStatic:
		return CatalogSourceStatic, nil
	case CatalogSourceStore:
		return CatalogSourceStore, nil
	}
	return "", fmt.Errorf("unknown catalog source %q", s)
}

// DefaultCatalogRetryAfter is how long a failed live fetch is remembered
// before the store is asked again.
const DefaultCatalogRetryAfter = 30 * time.Second

// CatalogOption is a function that configures a departmentCatalog
type CatalogOption func(*departmentCatalog)

// WithCatalogClock sets the clock used to time fetch retries.
func WithCatalogClock(clock Clock) CatalogOption {
	return func(s *departmentCatalog) {
		s.BaseService = newBaseService(clock)
	}
}

// WithCatalogRetryAfter sets how long the catalog stays degraded after a failed fetch.
func WithCatalogRetryAfter(d time.Duration) CatalogOption {
	return func(s *departmentCatalog) {
		if d > 0 {
			s.retryAfter = d
		}
	}
}

type departmentCatalog struct {
	BaseService
	source     CatalogSource
	repo       portsrepo.DepartmentReader
	retryAfter time.Duration

	mu       sync.RWMutex
	cached   []domain.DepartmentLabel // live entries without the sentinel; nil until loaded
	failedAt time.Time                // last failed fetch; zero once a fetch succeeds
}

// NewDepartmentCatalog creates a catalog. repo is only consulted for CatalogSourceStore.
func NewDepartmentCatalog(source CatalogSource, repo portsrepo.DepartmentReader, opts ...CatalogOption) portssvc.DepartmentCatalogSvc {
	s := &departmentCatalog{
		BaseService: newBaseService(nil),
		source:      source,
		repo:        repo,
		retryAfter:  DefaultCatalogRetryAfter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.DepartmentCatalogSvc = (*departmentCatalog)(nil)

// ListDepartments returns the sentinel followed by the catalog entries.
func (s *departmentCatalog) ListDepartments(ctx context.Context) []domain.DepartmentLabel {
	entries := s.entries(ctx)
	out := make([]domain.DepartmentLabel, 0, len(entries)+1)
	out = append(out, domain.AllDepartments)
	return append(out, entries...)
}

// entries returns the catalog without the sentinel. A failed live fetch is
// logged and yields no entries until retryAfter has passed.
func (s *departmentCatalog) entries(ctx context.Context) []domain.DepartmentLabel {
	if s.source != CatalogSourceStore || s.repo == nil {
		return domain.StaticDepartments
	}

	s.mu.RLock()
	cached, failedAt := s.cached, s.failedAt
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}
	if !failedAt.IsZero() && s.Clock.Now().Sub(failedAt) < s.retryAfter {
		return nil
	}

	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.mu.Lock()
		s.failedAt = s.Clock.Now()
		s.mu.Unlock()
		s.LogWarn(ctx, err, "Failed to fetch departments, catalog degraded to sentinel only",
			slog.Duration("retry_after", s.retryAfter))
		return nil
	}

	labels := make([]domain.DepartmentLabel, 0, len(departments))
	for _, l := range mapping.ToDepartmentLabels(departments) {
		if strings.TrimSpace(l.Key) == "" || l.IsSentinel() {
			continue
		}
		labels = append(labels, l)
	}

	s.mu.Lock()
	s.cached = labels
	s.failedAt = time.Time{}
	s.mu.Unlock()
	s.LogDebug(ctx, "Department catalog loaded", slog.Int("count", len(labels)))
	return labels
}

// ResolveLabel returns the display label for key. Keys stored as Arabic labels
// by older records are resolved too.
func (s *departmentCatalog) ResolveLabel(ctx context.Context, key string, lang domain.Language) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.UnspecifiedDepartment.Label(lang)
	}
	if key == domain.AllDepartmentsKey {
		return domain.AllDepartments.Label(lang)
	}
	if entry, ok := s.lookup(ctx, key); ok {
		return entry.Label(lang)
	}
	return key
}

// CanonicalKey maps a label in either language to its English key.
func (s *departmentCatalog) CanonicalKey(ctx context.Context, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	if entry, ok := s.lookup(ctx, label); ok {
		return entry.Key
	}
	return label
}

func (s *departmentCatalog) lookup(ctx context.Context, label string) (domain.DepartmentLabel, bool) {
	entries := s.entries(ctx)
	for _, e := range entries {
		if e.Key == label {
			return e, true
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.LabelEN, label) || e.LabelAR == label {
			return e, true
		}
	}
	return domain.DepartmentLabel{}, false
}

// Suggest ranks entries whose English or Arabic label fuzzily matches query.
// A blank query returns every entry.
func (s *departmentCatalog) Suggest(ctx context.Context, query string) []domain.DepartmentLabel {
	entries := s.entries(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]domain.DepartmentLabel(nil), entries...)
	}

	targets := make([]string, 0, len(entries)*2)
	owners := make([]int, 0, len(entries)*2)
	for i, e := range entries {
		targets = append(targets, e.LabelEN, e.LabelAR)
		owners = append(owners, i, i)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)

	seen := make(map[int]bool, len(ranks))
	out := make([]domain.DepartmentLabel, 0, len(ranks))
	for _, r := range ranks {
		owner := owners[r.OriginalIndex]
		if seen[owner] {
			continue
		}
		seen[owner] = true
		out = append(out, entries[owner])
	}
	return out
}

// Invalidate drops the cached live list so the next read re-fetches.
func (s *departmentCatalog) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.failedAt = time.Time{}
	s.mu.Unlock()
}
