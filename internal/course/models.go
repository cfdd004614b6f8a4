package course

import "context"

// Thin selection-list models. The quiz flow only needs these to populate
// and check the subject/course fields; there are no interesting invariants
// here.

type Subject struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

type Course struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	SubjectID string `bson:"subject_id" json:"subject_id"`
	Name      string `bson:"name" json:"name"`
}

type Store interface {
	CreateSubject(ctx context.Context, s Subject) (Subject, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	CreateCourse(ctx context.Context, c Course) (Course, error)
	ListCourses(ctx context.Context, subjectID string) ([]Course, error)
}
