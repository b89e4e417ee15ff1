package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"coursefeed/internal/catalog"
	"coursefeed/internal/domain"
	"coursefeed/internal/mappers"
	"coursefeed/internal/providers/learnapi"
)

func newTestHandler(t *testing.T, backend http.HandlerFunc) (http.Handler, *catalog.Service) {
	t.Helper()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	client := learnapi.New(ts.URL)
	svc := catalog.NewService(client, mappers.Mapper{}, "")
	return New(zap.NewNop(), svc, NewProxy(ts.URL, zap.NewNop()), nil), svc
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestListCoursesServesFallbackCold(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var page catalog.Page
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Courses) != len(domain.FallbackCourses()) {
		t.Errorf("cold /courses should serve the fallback, got %d", len(page.Courses))
	}
}

func TestRefreshThenGetCourse(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"courseCode":"A","courseName":"Algebra","enrollmentStatus":1}]`))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh?student_id=s1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/A", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get course status = %d", rec.Code)
	}
	var c domain.CourseItem
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Title != "Algebra" {
		t.Errorf("title = %q", c.Title)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/enrollment/A", nil))
	var enr struct {
		Enrolled bool `json:"enrolled"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &enr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !enr.Enrolled {
		t.Error("A should be enrolled")
	}
}

func TestGetCourseNotFound(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRefreshFailureReturnsEnvelopeWithFallback(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh?student_id=s1", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Courses []domain.CourseItem `json:"courses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Success || out.Message == "" {
		t.Errorf("envelope = %+v", out)
	}
	if len(out.Courses) == 0 {
		t.Error("failure envelope should still carry the fallback catalog")
	}
}

func TestRequestIDHeader(t *testing.T) {
	h, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id")
	}
}
