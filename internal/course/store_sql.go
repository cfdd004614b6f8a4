package course

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateSubject(ctx context.Context, sub Subject) (Subject, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO subjects (id, name) VALUES ($1,$2)`, sub.ID, sub.Name)
	if err != nil {
		return Subject{}, err
	}
	return sub, nil
}

func (s *SQLStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Subject{}
	for rows.Next() {
		var sub Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateCourse(ctx context.Context, c Course) (Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO courses (id, subject_id, name) VALUES ($1,$2,$3)`, c.ID, c.SubjectID, c.Name)
	if err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *SQLStore) ListCourses(ctx context.Context, subjectID string) ([]Course, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if subjectID != "" {
		rows, err = s.db.QueryContext(ctx, `SELECT id, subject_id, name FROM courses WHERE subject_id=$1 ORDER BY name`, subjectID)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT id, subject_id, name FROM courses ORDER BY name`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Course{}
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.SubjectID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
