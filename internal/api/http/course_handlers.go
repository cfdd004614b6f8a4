package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	"github.com/studyforge/studyforge-lms/internal/course"
)

func CreateSubjectHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}
		s, err := store.CreateSubject(r.Context(), course.Subject{Name: req.Name})
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusCreated, s)
	}
}

func ListSubjectsHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		subs, err := store.ListSubjects(r.Context())
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusOK, subs)
	}
}

func CreateCourseHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Name      string `json:"name"`
			SubjectID string `json:"subject_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}
		c, err := store.CreateCourse(r.Context(), course.Course{Name: req.Name, SubjectID: req.SubjectID})
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusCreated, c)
	}
}

func ListCoursesHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		cs, err := store.ListCourses(r.Context(), queryStr(r, "subject_id"))
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusOK, cs)
	}
}
