// Package server exposes the normalized catalog over HTTP and hosts the
// same-origin reverse proxy to the learn backend.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"coursefeed/internal/catalog"
	"coursefeed/internal/metrics"
)

type Server struct {
	log     *zap.Logger
	catalog *catalog.Service
	reg     *metrics.Registry
}

// New builds the router: catalog endpoints, health, metrics, and the
// /api/proxy/* passthrough.
func New(log *zap.Logger, svc *catalog.Service, proxy *Proxy, reg *metrics.Registry) http.Handler {
	s := &Server{log: log, catalog: svc, reg: reg}

	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/healthz", s.handleHealth)
	if reg != nil {
		r.Method(http.MethodGet, "/metrics", reg.Handler())
	}

	r.Get("/courses", s.handleListCourses)
	r.Get("/courses/{id}", s.handleGetCourse)
	r.Get("/enrollment/{id}", s.handleEnrollment)
	r.Post("/refresh", s.handleRefresh)

	if proxy != nil {
		r.Handle("/api/proxy/*", proxy)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Page{
		Courses:     s.catalog.Courses(),
		EnrolledIDs: s.catalog.EnrolledIDs(),
	})
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	course, ok := s.catalog.CourseByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *Server) handleEnrollment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]any{
		"courseId": id,
		"enrolled": s.catalog.IsEnrolledIn(id),
	})
}

// handleRefresh triggers a synchronous catalog refresh. student_id is
// optional; without it the configured default applies.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("student_id")
	page, err := s.catalog.Refresh(r.Context(), studentID)
	if err != nil {
		s.log.Warn("catalog refresh failed",
			zap.String("student_id", studentID),
			zap.Error(err))
		// degraded, not broken: the fallback page ships with the error
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success":     false,
			"message":     s.catalog.LastError(),
			"courses":     page.Courses,
			"enrolledIds": page.EnrolledIDs,
		})
		return
	}
	writeJSON(w, http.StatusOK, page)
}

/* -------- helpers -------- */

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

// requestID tags every request; upstream calls reuse the same id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		r.Header.Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
