package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practicecoach/internal/model"
)

// ErrSessionNotFound is returned by writes that target a missing session
var ErrSessionNotFound = errors.New("session not found")

type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	AppendAnswer(ctx context.Context, id string, answer model.AnswerRecord) error
	Complete(ctx context.Context, id string, agg model.SessionAggregate, completedAt time.Time) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Session, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	if session.Answers == nil {
		session.Answers = []model.AnswerRecord{}
	}

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// AppendAnswer pushes one answer and marks the session answered unless it is already completed
func (r *sessionRepo) AppendAnswer(ctx context.Context, id string, answer model.AnswerRecord) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"answers": answer}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}

	_, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.SessionCreated},
		bson.M{"$set": bson.M{"status": model.SessionAnswered}},
	)
	return err
}

func (r *sessionRepo) Complete(ctx context.Context, id string, agg model.SessionAggregate, completedAt time.Time) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":             model.SessionCompleted,
			"completedAt":        completedAt,
			"averageScore":       agg.AverageScore,
			"totalDuration":      agg.TotalDuration,
			"completedQuestions": agg.CompletedQuestions,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListByUser returns the user's sessions, newest first
func (r *sessionRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*model.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
