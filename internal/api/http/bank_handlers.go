package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lms/internal/bank"
)

// Handlers only — routes remain in main.go

func CreateBankQuestionHandler(store bank.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var q bank.Question
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(q.Text) == "" || len(q.Options) < 2 {
			writeError(w, nethttp.StatusBadRequest, "question needs text and at least 2 options")
			return
		}
		created, err := store.Create(r.Context(), q)
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusCreated, created)
	}
}

func GetBankQuestionHandler(store bank.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q, err := store.Get(r.Context(), chi.URLParam(r, "questionID"))
		if err != nil {
			writeError(w, nethttp.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, nethttp.StatusOK, q)
	}
}

func ListBankQuestionsHandler(store bank.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		opts := bank.ListOpts{
			SubjectID: queryStr(r, "subject_id"),
			Q:         queryStr(r, "q"),
			Limit:     queryInt(r, "limit", 50),
			Offset:    queryInt(r, "offset", 0),
		}
		qs, err := store.List(r.Context(), opts)
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusOK, qs)
	}
}

func DeleteBankQuestionHandler(store bank.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "questionID")); err != nil {
			writeError(w, nethttp.StatusNotFound, err.Error())
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}
