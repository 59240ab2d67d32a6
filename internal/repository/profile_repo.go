package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"practicecoach/internal/model"
)

// ErrDuplicateEmail is returned when a profile with the same email exists
var ErrDuplicateEmail = errors.New("email already registered")

type ProfileRepo interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	Update(ctx context.Context, profile *model.UserProfile) error
}

type profileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("user_profiles"),
	}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	if profile.ID == "" {
		profile.ID = primitive.NewObjectID().Hex()
	}
	profile.Email = strings.ToLower(profile.Email)
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, profile)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *profileRepo) findOne(ctx context.Context, filter bson.M) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *model.UserProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	return err
}
