package bank

import (
	"github.com/studyforge/studyforge-lms/internal/question"
)

// Question is a persisted, reusable bank question. The correctness and
// image fields stay loosely typed on purpose: rows written by legacy
// importers carry flag arrays, bit-strings, index lists or option labels,
// and images as bare URLs or structured objects. Decoding happens in the
// question package, never here.
type Question struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	SubjectID   string        `bson:"subject_id" json:"subject_id"`
	Text        string        `bson:"text" json:"text"`
	Type        string        `bson:"type" json:"type"`
	Options     []string      `bson:"options" json:"options"`
	Correct     []interface{} `bson:"correct" json:"correct"`
	Points      float64       `bson:"points" json:"points"`
	Explanation string        `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Images      []interface{} `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt   int64         `bson:"created_at" json:"created_at"`
}

// Source adapts a bank question for the snapshot builder.
func (q Question) Source() question.Source {
	opts := make([]interface{}, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o
	}
	return question.Source{
		ID:          q.ID,
		Text:        q.Text,
		Type:        q.Type,
		Options:     opts,
		Correct:     q.Correct,
		Points:      q.Points,
		Explanation: q.Explanation,
		Images:      q.Images,
	}
}
