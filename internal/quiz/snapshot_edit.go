package quiz

import (
	"fmt"

	"github.com/studyforge/studyforge-lms/internal/question"
)

// Post-creation snapshot edits. These are the only mutations a committed
// quiz's questions ever see: a patch through the quiz's own update path
// (which flips IsDirty) or a soft delete (IsDeleted). Snapshots are never
// physically removed, so past grading stays explainable.

func applySnapshotUpdate(q *Quiz, questionID string, upd SnapshotUpdate) error {
	for i := range q.Questions {
		if q.Questions[i].ID != questionID {
			continue
		}
		s := q.Questions[i]
		if upd.Text != nil {
			s.Text = *upd.Text
		}
		if upd.Options != nil {
			s.Options = append([]string(nil), upd.Options...)
		}
		if upd.Correct != nil {
			s.CorrectOptions = append([]int(nil), upd.Correct...)
		}
		if upd.Points != nil {
			s.Points = *upd.Points
		}
		if upd.Explanation != nil {
			s.Explanation = *upd.Explanation
		}
		s = question.NormalizeSnapshot(s)
		if vs := question.ValidateSnapshot(i, s); len(vs) > 0 {
			return &Rejection{Violations: vs}
		}
		s.IsDirty = true
		q.Questions[i] = s
		return nil
	}
	return fmt.Errorf("question %q not in quiz %q", questionID, q.ID)
}

func markSnapshotDeleted(q *Quiz, questionID string) error {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			q.Questions[i].IsDeleted = true
			return nil
		}
	}
	return fmt.Errorf("question %q not in quiz %q", questionID, q.ID)
}
