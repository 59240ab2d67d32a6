package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"practicecoach/internal/model"
)

// ProfileCache is a read-through cache in front of the profile repository
type ProfileCache interface {
	Set(ctx context.Context, profile *model.UserProfile) error
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Delete(ctx context.Context, userID string) error
}

// cachedProfile keeps the password hash, which model.UserProfile hides from JSON
type cachedProfile struct {
	model.UserProfile
	PasswordHash string `json:"passwordHash"`
}

type profileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) ProfileCache {
	return &profileCache{
		client: client,
	}
}

func (c *profileCache) Set(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(cachedProfile{UserProfile: *profile, PasswordHash: profile.PasswordHash})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "profile:"+profile.ID, data, 10*time.Minute).Err()
}

func (c *profileCache) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	data, err := c.client.Get(ctx, "profile:"+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cp cachedProfile
	if err := json.Unmarshal([]byte(data), &cp); err != nil {
		return nil, err
	}
	profile := cp.UserProfile
	profile.PasswordHash = cp.PasswordHash
	return &profile, nil
}

func (c *profileCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, "profile:"+userID).Err()
}
