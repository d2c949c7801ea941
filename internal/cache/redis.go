package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jithiee/FyndPro-Backend/internal/models"
)

const candidatesKey = "cache:employees:with_location"

// CandidateCache keeps the nearby-search candidate list (employees with
// coordinates) in redis as a JSON blob with a short TTL. Location writes
// invalidate it.
type CandidateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCandidateCache(client *redis.Client, ttl time.Duration) *CandidateCache {
	return &CandidateCache{
		client: client,
		ttl:    ttl,
	}
}

// GetCandidates returns nil with no error on a cache miss.
func (c *CandidateCache) GetCandidates(ctx context.Context) ([]models.User, error) {
	data, err := c.client.Get(ctx, candidatesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *CandidateCache) SetCandidates(ctx context.Context, users []models.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, candidatesKey, payload, c.ttl).Err()
}

func (c *CandidateCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, candidatesKey).Err()
}
