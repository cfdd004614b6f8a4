package course

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	subjects *mongo.Collection
	courses  *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		subjects: db.Collection("subjects"),
		courses:  db.Collection("courses"),
	}
}

func (s *MongoStore) CreateSubject(ctx context.Context, sub Subject) (Subject, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if _, err := s.subjects.InsertOne(ctx, sub); err != nil {
		return Subject{}, err
	}
	return sub, nil
}

func (s *MongoStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	cur, err := s.subjects.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Subject{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) CreateCourse(ctx context.Context, c Course) (Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := s.courses.InsertOne(ctx, c); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *MongoStore) ListCourses(ctx context.Context, subjectID string) ([]Course, error) {
	filter := bson.M{}
	if subjectID != "" {
		filter["subject_id"] = subjectID
	}
	cur, err := s.courses.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Course{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
