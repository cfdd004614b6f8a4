package bank

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps bank questions in a document collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("bank_questions")}
}

func (s *MongoStore) Create(ctx context.Context, q Question) (Question, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	if _, err := s.col.InsertOne(ctx, q); err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Question, error) {
	var q Question
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Question{}, errors.New("bank question not found")
	}
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *MongoStore) List(ctx context.Context, opts ListOpts) ([]Question, error) {
	filter := bson.M{}
	if opts.SubjectID != "" {
		filter["subject_id"] = opts.SubjectID
	}
	if opts.Q != "" {
		filter["text"] = bson.M{"$regex": opts.Q, "$options": "i"}
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
	out := []Question{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("bank question not found")
	}
	return nil
}
