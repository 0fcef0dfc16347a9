package worlds

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/adventure-engine/internal/redis"
)

const (
	worldKeyPrefix = "world:"
	worldIndexKey  = "worlds"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis world repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  clk,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	data := &WorldData{
		ID:        input.ID,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: r.clock.Now().Unix(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world %s", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.ID), jsonData, 0)
	pipe.SAdd(ctx, worldIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store world %s", input.ID)
	}

	return &PutOutput{Data: copyData(data)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.ID == "" {
		return nil, errIDRequired
	}

	data, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Data: data}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}

	ids, err := r.client.SMembers(ctx, worldIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}
	sort.Strings(ids)

	worlds := make([]*WorldData, 0, len(ids))
	for _, id := range ids {
		data, err := r.load(ctx, id)
		if errors.IsNotFound(err) {
			// index entry outlived its document
			continue
		}
		if err != nil {
			return nil, err
		}
		worlds = append(worlds, data)
	}

	return &ListOutput{Worlds: worlds}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.ID == "" {
		return nil, errIDRequired
	}

	key := GetKey(input.ID)

	// Check if exists first to return proper error
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check world %s", input.ID)
	}
	if exists == 0 {
		return nil, errNotFound(input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, worldIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete world %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*WorldData, error) {
	result, err := r.client.Get(ctx, GetKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errNotFound(id)
		}
		return nil, errors.Wrapf(err, "failed to get world %s", id)
	}

	var data WorldData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world %s", id)
	}
	return &data, nil
}

// GetKey returns the Redis key for a world document
// Exposed for testing purposes
func GetKey(id string) string {
	return worldKeyPrefix + id
}
