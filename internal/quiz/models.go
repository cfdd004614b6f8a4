package quiz

import (
	"time"

	"github.com/studyforge/studyforge-lms/internal/question"
)

// Quiz is the durable record created at submission time. Its snapshot
// questions are embedded values: later edits to the originating bank
// questions never touch them.
type Quiz struct {
	ID               string              `bson:"_id,omitempty" json:"id"`
	CourseID         string              `bson:"course_id" json:"course_id"`
	SubjectID        string              `bson:"subject_id" json:"subject_id"`
	Title            string              `bson:"title" json:"title"`
	Description      string              `bson:"description,omitempty" json:"description,omitempty"`
	StartTime        time.Time           `bson:"start_time" json:"start_time"`
	EndTime          time.Time           `bson:"end_time" json:"end_time"`
	ShuffleQuestions bool                `bson:"shuffle_questions" json:"shuffle_questions"`
	IsPublished      bool                `bson:"is_published" json:"is_published"`
	Questions        []question.Snapshot `bson:"questions" json:"questions"`
	CreatedAt        int64               `bson:"created_at" json:"created_at"`
}

// Details are the quiz-level fields the author fills in before submission.
type Details struct {
	SubjectID        string    `json:"subject_id"`
	CourseID         string    `json:"course_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ShuffleQuestions bool      `json:"shuffle_questions"`
	IsPublished      bool      `json:"is_published"`
}

// SnapshotUpdate is a partial edit of one embedded snapshot, applied
// through the quiz's own update path. Nil fields are left untouched.
type SnapshotUpdate struct {
	Text        *string  `json:"text,omitempty"`
	Options     []string `json:"options,omitempty"`
	Correct     []int    `json:"correct_options,omitempty"`
	Points      *float64 `json:"points,omitempty"`
	Explanation *string  `json:"explanation,omitempty"`
}
