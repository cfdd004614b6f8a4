package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps quizzes, snapshots embedded, in a document collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("quizzes")}
}

func (s *MongoStore) CreateQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	if _, err := s.col.InsertOne(ctx, q); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *MongoStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	var q Quiz
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Quiz{}, errors.New("quiz not found")
	}
	if err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *MongoStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]Quiz, error) {
	filter := bson.M{}
	if opts.CourseID != "" {
		filter["course_id"] = opts.CourseID
	}
	limit := int64(opts.Limit)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	fo := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(limit)
	cur, err := s.col.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Quiz{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) UpdateSnapshot(ctx context.Context, quizID, questionID string, upd SnapshotUpdate) (Quiz, error) {
	q, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	if err := applySnapshotUpdate(&q, questionID, upd); err != nil {
		return Quiz{}, err
	}
	return q, s.replaceQuestions(ctx, q)
}

func (s *MongoStore) RemoveSnapshot(ctx context.Context, quizID, questionID string) (Quiz, error) {
	q, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return Quiz{}, err
	}
	if err := markSnapshotDeleted(&q, questionID); err != nil {
		return Quiz{}, err
	}
	return q, s.replaceQuestions(ctx, q)
}

func (s *MongoStore) replaceQuestions(ctx context.Context, q Quiz) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": q.ID},
		bson.M{"$set": bson.M{"questions": q.Questions}})
	return err
}
