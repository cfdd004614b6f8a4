package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SQLStore keeps bank questions in a relational table with JSON columns
// for the list-shaped fields. Works against sqlite and postgres; the $n
// placeholder form is shared.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(ctx context.Context, q Question) (Question, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	oj, err := json.Marshal(q.Options)
	if err != nil {
		return Question{}, err
	}
	cj, err := json.Marshal(q.Correct)
	if err != nil {
		return Question{}, err
	}
	ij, err := json.Marshal(q.Images)
	if err != nil {
		return Question{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO bank_questions
		(id, subject_id, text, type, options_json, correct_json, points, explanation, images_json, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		q.ID, q.SubjectID, q.Text, q.Type, string(oj), string(cj), q.Points, q.Explanation, string(ij), q.CreatedAt)
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, subject_id, text, type, options_json, correct_json, points, explanation, images_json, created_at
		FROM bank_questions WHERE id=$1`, id)
	return scanQuestion(row)
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Question, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sqlStr := `SELECT id, subject_id, text, type, options_json, correct_json, points, explanation, images_json, created_at
		FROM bank_questions WHERE 1=1`
	args := []interface{}{}
	if opts.SubjectID != "" {
		args = append(args, opts.SubjectID)
		sqlStr += ` AND subject_id=$` + strconv.Itoa(len(args))
	}
	if opts.Q != "" {
		args = append(args, "%"+opts.Q+"%")
		sqlStr += ` AND text LIKE $` + strconv.Itoa(len(args))
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
	out := []Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bank_questions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("bank question not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(r rowScanner) (Question, error) {
	var q Question
	var oj, cj, ij string
	err := r.Scan(&q.ID, &q.SubjectID, &q.Text, &q.Type, &oj, &cj, &q.Points, &q.Explanation, &ij, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, errors.New("bank question not found")
	}
	if err != nil {
		return Question{}, err
	}
	if err := json.Unmarshal([]byte(oj), &q.Options); err != nil {
		return Question{}, err
	}
	// tolerate legacy rows with null/absent lists
	_ = json.Unmarshal([]byte(cj), &q.Correct)
	_ = json.Unmarshal([]byte(ij), &q.Images)
	return q, nil
}

