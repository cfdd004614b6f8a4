package bank

import "context"

// ListOpts filters bank listings.
type ListOpts struct {
	SubjectID string
	Q         string // substring match on question text
	Limit     int
	Offset    int
}

// Store is the question-bank persistence surface. The quiz submission flow
// only ever calls Create and Get; List/Delete back the authoring UI.
type Store interface {
	Create(ctx context.Context, q Question) (Question, error)
	Get(ctx context.Context, id string) (Question, error)
	List(ctx context.Context, opts ListOpts) ([]Question, error)
	Delete(ctx context.Context, id string) error
}
