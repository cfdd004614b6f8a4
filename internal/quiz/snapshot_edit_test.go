package quiz

import (
	"testing"
	"time"

	"github.com/studyforge/studyforge-lms/internal/question"
)

func testQuiz() Quiz {
	return Quiz{
		ID:        "quiz-1",
		CourseID:  "course-1",
		Title:     "Weekly check",
		StartTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Questions: []question.Snapshot{
			{
				ID:             "q-1",
				Text:           "2+2=?",
				Type:           question.KindSingleChoice,
				Options:        []string{"3", "4"},
				CorrectOptions: []int{0, 1},
				Points:         1,
			},
		},
	}
}

func TestApplySnapshotUpdateFlipsDirty(t *testing.T) {
	q := testQuiz()
	text := "2+3=?"
	if err := applySnapshotUpdate(&q, "q-1", SnapshotUpdate{Text: &text}); err != nil {
		t.Fatalf("update: %v", err)
	}
	s := q.Questions[0]
	if s.Text != "2+3=?" {
		t.Errorf("text = %q", s.Text)
	}
	if !s.IsDirty {
		t.Error("edited snapshot must be dirty")
	}
	if s.IsDeleted {
		t.Error("edit must not delete")
	}
}

func TestApplySnapshotUpdateRevalidates(t *testing.T) {
	q := testQuiz()
	err := applySnapshotUpdate(&q, "q-1", SnapshotUpdate{Options: []string{"4", "4"}})
	if err == nil {
		t.Fatal("duplicate options must be rejected")
	}
	if _, ok := err.(*Rejection); !ok {
		t.Fatalf("want *Rejection, got %T", err)
	}
	if q.Questions[0].IsDirty {
		t.Error("rejected edit must not mark the snapshot dirty")
	}
}

func TestApplySnapshotUpdateRederivesKind(t *testing.T) {
	q := testQuiz()
	if err := applySnapshotUpdate(&q, "q-1", SnapshotUpdate{Correct: []int{1, 1}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := q.Questions[0].Type; got != question.KindMultiChoice {
		t.Errorf("type = %v, want multi after second flag", got)
	}
}

func TestMarkSnapshotDeletedIsSoft(t *testing.T) {
	q := testQuiz()
	if err := markSnapshotDeleted(&q, "q-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(q.Questions) != 1 {
		t.Fatal("snapshot must stay in the quiz for grading history")
	}
	if !q.Questions[0].IsDeleted {
		t.Error("snapshot not marked deleted")
	}
}

func TestSnapshotEditUnknownQuestion(t *testing.T) {
	q := testQuiz()
	if err := markSnapshotDeleted(&q, "nope"); err == nil {
		t.Error("unknown question id must fail")
	}
	if err := applySnapshotUpdate(&q, "nope", SnapshotUpdate{}); err == nil {
		t.Error("unknown question id must fail")
	}
}
