package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practicecoach/internal/model"
)

type InstitutionRepo interface {
	Create(ctx context.Context, inst *model.Institution) error
	GetByID(ctx context.Context, id string) (*model.Institution, error)
	GetByName(ctx context.Context, name string) (*model.Institution, error)
	List(ctx context.Context, kind model.InstitutionKind) ([]*model.Institution, error)
}

type institutionRepo struct {
	collection *mongo.Collection
}

func NewInstitutionRepo(db *mongo.Database) InstitutionRepo {
	return &institutionRepo{
		collection: db.Collection("institutions"),
	}
}

func (r *institutionRepo) Create(ctx context.Context, inst *model.Institution) error {
	if inst.ID == "" {
		inst.ID = primitive.NewObjectID().Hex()
	}
	if inst.CreatedAt.IsZero() {
		inst.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, inst)
	return err
}

func (r *institutionRepo) GetByID(ctx context.Context, id string) (*model.Institution, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *institutionRepo) GetByName(ctx context.Context, name string) (*model.Institution, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *institutionRepo) findOne(ctx context.Context, filter bson.M) (*model.Institution, error) {
	var inst model.Institution
	err := r.collection.FindOne(ctx, filter).Decode(&inst)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

// List returns institutions by name; an empty kind lists all
func (r *institutionRepo) List(ctx context.Context, kind model.InstitutionKind) ([]*model.Institution, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	institutions := []*model.Institution{}
	if err := cursor.All(ctx, &institutions); err != nil {
		return nil, err
	}
	return institutions, nil
}
