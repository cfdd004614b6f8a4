package quiz

import "context"

// ListOpts filters quiz listings.
type ListOpts struct {
	CourseID string
	Limit    int
	Offset   int
}

// Store is the quiz persistence surface. CreateQuiz is the sole durable
// write of an assembled snapshot set; UpdateSnapshot and RemoveSnapshot are
// the only mutation paths afterwards (RemoveSnapshot is a soft delete so
// grading history survives).
type Store interface {
	CreateQuiz(ctx context.Context, q Quiz) (Quiz, error)
	GetQuiz(ctx context.Context, id string) (Quiz, error)
	ListQuizzes(ctx context.Context, opts ListOpts) ([]Quiz, error)
	UpdateSnapshot(ctx context.Context, quizID, questionID string, upd SnapshotUpdate) (Quiz, error)
	RemoveSnapshot(ctx context.Context, quizID, questionID string) (Quiz, error)
}
