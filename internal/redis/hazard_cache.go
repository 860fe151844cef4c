package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type HazardCacheService interface {
	GetActive(ctx context.Context) ([]domain.Hazard, error)
	SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// HazardCache holds the last published list of queryable hazards so
// polling clients do not hit the store on every map refresh.
type HazardCache struct {
	client *goredis.Client
	key    string
}

func NewHazardCache(r *Redis) *HazardCache {
	return &HazardCache{
		client: r.Client,
		key:    "hazards:active",
	}
}

func (c *HazardCache) GetActive(ctx context.Context) ([]domain.Hazard, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var hazards []domain.Hazard
	if err := json.Unmarshal(data, &hazards); err != nil {
		return nil, err
	}

	return hazards, nil
}

func (c *HazardCache) SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error {
	b, err := json.Marshal(hazards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *HazardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
