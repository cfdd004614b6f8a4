package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/studyforge/studyforge-lms/internal/question"
)

// SQLStore keeps quizzes in a relational table, snapshot set serialized as
// a JSON column. Shared between sqlite and postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return Quiz{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes
		(id, course_id, subject_id, title, description, start_time, end_time, shuffle_questions, is_published, questions_json, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		q.ID, q.CourseID, q.SubjectID, q.Title, q.Description,
		q.StartTime.Unix(), q.EndTime.Unix(), q.ShuffleQuestions, q.IsPublished, string(qj), q.CreatedAt)
	if err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, course_id, subject_id, title, description, start_time, end_time, shuffle_questions, is_published, questions_json, created_at
		FROM quizzes WHERE id=$1`, id)
	return scanQuiz(row)
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]Quiz, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sqlStr := `SELECT id, course_id, subject_id, title, description, start_time, end_time, shuffle_questions, is_published, questions_json, created_at
		FROM quizzes WHERE 1=1`
	args := []interface{}{}
	if opts.CourseID != "" {
		args = append(args, opts.CourseID)
		sqlStr += ` AND course_id=$` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	sqlStr += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, opts.Offset)
	sqlStr += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) UpdateSnapshot(ctx context.Context, quizID, questionID string, upd SnapshotUpdate) (Quiz, error) {
	q, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	if err := applySnapshotUpdate(&q, questionID, upd); err != nil {
		return Quiz{}, err
	}
	return q, s.writeQuestions(ctx, q)
}

func (s *SQLStore) RemoveSnapshot(ctx context.Context, quizID, questionID string) (Quiz, error) {
	q, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	if err := markSnapshotDeleted(&q, questionID); err != nil {
		return Quiz{}, err
	}
	return q, s.writeQuestions(ctx, q)
}

func (s *SQLStore) writeQuestions(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE quizzes SET questions_json=$1 WHERE id=$2`, string(qj), q.ID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuiz(r rowScanner) (Quiz, error) {
	var q Quiz
	var start, end int64
	var qjson string
	err := r.Scan(&q.ID, &q.CourseID, &q.SubjectID, &q.Title, &q.Description,
		&start, &end, &q.ShuffleQuestions, &q.IsPublished, &qjson, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, errors.New("quiz not found")
	}
	if err != nil {
		return Quiz{}, err
	}
	q.StartTime = time.Unix(start, 0).UTC()
	q.EndTime = time.Unix(end, 0).UTC()
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		q.Questions = []question.Snapshot{}
	}
	return q, nil
}
