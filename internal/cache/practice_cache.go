package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"practicecoach/internal/model"
)

// PracticeCache holds in-flight practice runs
type PracticeCache interface {
	Set(ctx context.Context, run *model.PracticeRun) error
	Get(ctx context.Context, runID string) (*model.PracticeRun, error)
	Delete(ctx context.Context, runID string) error
}

type practiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPracticeCache creates a practice cache whose entries expire after ttl
func NewPracticeCache(client *redis.Client, ttl time.Duration) PracticeCache {
	return &practiceCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *practiceCache) key(runID string) string {
	return fmt.Sprintf("practice:run:%s", runID)
}

func (c *practiceCache) Set(ctx context.Context, run *model.PracticeRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(run.ID), data, c.ttl).Err()
}

// Get returns nil, nil when the run does not exist or has expired
func (c *practiceCache) Get(ctx context.Context, runID string) (*model.PracticeRun, error) {
	data, err := c.client.Get(ctx, c.key(runID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var run model.PracticeRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (c *practiceCache) Delete(ctx context.Context, runID string) error {
	return c.client.Del(ctx, c.key(runID)).Err()
}
