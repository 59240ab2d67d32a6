package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practicecoach/internal/model"
)

// QuestionRepo mirrors the in-process corpus into Mongo for reporting tools.
// The running service reads questions from memory, never from here.
type QuestionRepo interface {
	UpsertQuestions(ctx context.Context, questions []model.Question) (int64, error)
	UpsertEmailQuestions(ctx context.Context, emails []model.EmailQuestion) (int64, error)
	CountByType(ctx context.Context) (map[string]int, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) UpsertQuestions(ctx context.Context, questions []model.Question) (int64, error) {
	models := make([]mongo.WriteModel, 0, len(questions))
	for i := range questions {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": questions[i].ID}).
			SetReplacement(questions[i]).
			SetUpsert(true))
	}
	return r.bulkWrite(ctx, models)
}

func (r *questionRepo) UpsertEmailQuestions(ctx context.Context, emails []model.EmailQuestion) (int64, error) {
	models := make([]mongo.WriteModel, 0, len(emails))
	for i := range emails {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": emails[i].ID}).
			SetReplacement(emails[i]).
			SetUpsert(true))
	}
	return r.bulkWrite(ctx, models)
}

func (r *questionRepo) bulkWrite(ctx context.Context, models []mongo.WriteModel) (int64, error) {
	if len(models) == 0 {
		return 0, nil
	}
	res, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}

// CountByType groups the mirrored questions by their type field
func (r *questionRepo) CountByType(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}
