package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyforge/studyforge-lms/internal/bank"
	"github.com/studyforge/studyforge-lms/internal/question"
	"github.com/studyforge/studyforge-lms/internal/quiz"
)

// SubmitQuizRequest is the full submission payload: quiz-level details,
// reused bank question ids, and freshly authored drafts.
type SubmitQuizRequest struct {
	quiz.Details
	BankQuestionIDs []string `json:"bank_question_ids"`
	Drafts          []struct {
		Text    string   `json:"text"`
		Options []string `json:"options"`
		Correct []int    `json:"correct_options"`
	} `json:"drafts"`
}

// SubmitQuizHandler runs the full submission flow. Validation failures
// come back as 422 with the violation list; collaborator failures as 502
// including any bank questions already created (they are not rolled back).
func SubmitQuizHandler(bankStore bank.Store, quizStore quiz.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req SubmitQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}

		picks := make([]bank.Question, 0, len(req.BankQuestionIDs))
		for _, id := range req.BankQuestionIDs {
			q, err := bankStore.Get(r.Context(), id)
			if err != nil {
				writeError(w, nethttp.StatusBadRequest, "unknown bank question "+id)
				return
			}
			picks = append(picks, q)
		}

		// The interactive draft list lives client-side; here we rehydrate
		// the shipped drafts in one piece each.
		drafts := question.NewDraftList()
		for _, d := range req.Drafts {
			drafts.LoadQuestion(d.Text, d.Options, d.Correct)
		}

		sub := quiz.NewSubmission(req.Details, picks, drafts)
		res, err := sub.Run(r.Context(), bankStore, quizStore)
		if err != nil {
			var rej *quiz.Rejection
			if errors.As(err, &rej) {
				writeJSON(w, nethttp.StatusUnprocessableEntity, map[string]interface{}{
					"error":      "validation failed",
					"violations": rej.Violations,
				})
				return
			}
			var collab *quiz.CollaboratorError
			if errors.As(err, &collab) {
				writeJSON(w, nethttp.StatusBadGateway, map[string]interface{}{
					"error":            "submission failed",
					"step":             collab.Step,
					"created_bank_ids": collab.CreatedIDs,
				})
				return
			}
			writeError(w, nethttp.StatusInternalServerError, "submission failed")
			return
		}
		writeJSON(w, nethttp.StatusCreated, res.Quiz)
	}
}

func GetQuizHandler(store quiz.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q, err := store.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, nethttp.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, nethttp.StatusOK, q)
	}
}

func ListQuizzesHandler(store quiz.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		qs, err := store.ListQuizzes(r.Context(), quiz.ListOpts{
			CourseID: queryStr(r, "course_id"),
			Limit:    queryInt(r, "limit", 50),
			Offset:   queryInt(r, "offset", 0),
		})
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "db error")
			return
		}
		writeJSON(w, nethttp.StatusOK, qs)
	}
}

// UpdateQuizQuestionHandler patches one embedded snapshot through the
// quiz's own update path (marks it dirty).
func UpdateQuizQuestionHandler(store quiz.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var upd quiz.SnapshotUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}
		q, err := store.UpdateSnapshot(r.Context(), chi.URLParam(r, "quizID"), chi.URLParam(r, "questionID"), upd)
		if err != nil {
			var rej *quiz.Rejection
			if errors.As(err, &rej) {
				writeJSON(w, nethttp.StatusUnprocessableEntity, map[string]interface{}{
					"error":      "validation failed",
					"violations": rej.Violations,
				})
				return
			}
			writeError(w, nethttp.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, nethttp.StatusOK, q)
	}
}

// DeleteQuizQuestionHandler soft-deletes a snapshot; the record stays for
// grading history.
func DeleteQuizQuestionHandler(store quiz.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		q, err := store.RemoveSnapshot(r.Context(), chi.URLParam(r, "quizID"), chi.URLParam(r, "questionID"))
		if err != nil {
			writeError(w, nethttp.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, nethttp.StatusOK, q)
	}
}
