// Package catalog orchestrates the course-page fetch: resolve the student,
// call the backend, run shape detection and mapping, and keep the result in
// an owned in-process store. View layers consume only the synchronous
// readers.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"coursefeed/internal/domain"
	"coursefeed/internal/mappers"
	"coursefeed/internal/metrics"
	"coursefeed/internal/providers/learnapi"
	"coursefeed/internal/shape"
)

// Page is one normalized course-page result.
type Page struct {
	Courses     []domain.CourseItem `json:"courses"`
	EnrolledIDs []string            `json:"enrolledIds"`
}

// BuildPage runs a raw course-page payload through shape detection and
// canonical mapping. Total: any payload yields a valid (possibly empty) page.
func BuildPage(raw any, m mappers.Mapper) Page {
	n := shape.Normalize(raw)
	return Page{
		Courses:     m.Courses(n.Courses),
		EnrolledIDs: n.EnrolledIDs,
	}
}

// Service combines the fetch orchestration with the store. Failure behavior
// matches what students actually see: a failed refresh flips the visible
// catalog to the static fallback instead of leaving stale or partial data up.
type Service struct {
	client           *learnapi.Client
	store            *Store
	mapper           mappers.Mapper
	defaultStudentID string
	metrics          *metrics.Registry

	gen atomic.Uint64

	mu      sync.Mutex
	loading bool
	lastErr string
}

// NewService wires a client to a fresh store. defaultStudentID backs
// unauthenticated/demo contexts; empty means such contexts get the static
// fallback without any network call.
func NewService(client *learnapi.Client, m mappers.Mapper, defaultStudentID string) *Service {
	return &Service{
		client:           client,
		store:            NewStore(),
		mapper:           m,
		defaultStudentID: strings.TrimSpace(defaultStudentID),
	}
}

// SetMetrics attaches fetch counters. Optional.
func (s *Service) SetMetrics(r *metrics.Registry) { s.metrics = r }

// Store exposes the underlying cache, mostly for tests and composition.
func (s *Service) Store() *Store { return s.store }

// Refresh fetches and normalizes the course page for studentID (falling back
// to the configured default id). With no usable id it resolves immediately
// with the static fallback — no request is made, unidentified visitors get
// generic marketing content rather than an error.
func (s *Service) Refresh(ctx context.Context, studentID string) (Page, error) {
	id := strings.TrimSpace(studentID)
	if id == "" {
		id = s.defaultStudentID
	}
	if id == "" {
		s.setError("")
		return fallbackPage(), nil
	}

	gen := s.gen.Add(1)
	s.setLoading(true)
	defer s.setLoading(false)

	if s.metrics != nil {
		s.metrics.CatalogFetches.Inc()
	}

	raw, err := s.client.CoursePageData(ctx, id)
	if err != nil {
		if s.metrics != nil {
			s.metrics.CatalogFetchFailures.Inc()
		}
		s.setError(fmt.Sprintf("course data fetch failed: %v", err))
		return fallbackPage(), err
	}

	page := BuildPage(raw, s.mapper)
	s.store.Set(page.Courses, page.EnrolledIDs, gen)
	s.setError("")
	return page, nil
}

/* -------- Synchronous readers -------- */

// Courses returns the visible catalog: the cache when it holds good data,
// the static fallback otherwise (cold cache or failed last refresh).
func (s *Service) Courses() []domain.CourseItem {
	if s.LastError() != "" {
		return domain.FallbackCourses()
	}
	if cs, ok := s.store.Courses(); ok {
		return cs
	}
	return domain.FallbackCourses()
}

// EnrolledIDs returns the visible enrollment set; empty until a successful
// refresh.
func (s *Service) EnrolledIDs() []string {
	if s.LastError() != "" {
		return []string{}
	}
	if ids, ok := s.store.EnrolledIDs(); ok {
		return ids
	}
	return []string{}
}

// CourseByID scans the visible catalog. ok=false is "not found", never a
// loading state.
func (s *Service) CourseByID(id string) (domain.CourseItem, bool) {
	for _, c := range s.Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.CourseItem{}, false
}

// IsEnrolledIn is a membership test against the visible enrollment set.
func (s *Service) IsEnrolledIn(id string) bool {
	for _, e := range s.EnrolledIDs() {
		if e == id {
			return true
		}
	}
	return false
}

// Loading reports whether a refresh is in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the flat, human-readable message of the last failed
// refresh, or "" after a success (or before any attempt).
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Service) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

func fallbackPage() Page {
	return Page{Courses: domain.FallbackCourses(), EnrolledIDs: []string{}}
}
