package hotel

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hotel-api/internal/redis"
)

// Key pattern: hotel:{hotel_id}
const hotelKeyPrefix = "hotel:"

// RedisConfig contains configuration for the Redis hotel repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// redisSnapshot is the JSON document stored per hotel
type redisSnapshot struct {
	Hotel     *entities.Hotel `json:"hotel"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewRedis creates a new Redis-backed hotel repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func hotelKey(id string) string {
	return hotelKeyPrefix + id
}

// Get retrieves a hotel snapshot
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	data, err := r.client.Get(ctx, hotelKey(input.HotelID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("hotel %s not found", input.HotelID)
		}
		return nil, errors.Wrapf(err, "failed to get hotel %s from Redis", input.HotelID)
	}

	var stored redisSnapshot
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal hotel %s", input.HotelID)
	}
	if stored.Hotel == nil {
		return nil, errors.Internalf("hotel %s has an empty snapshot", input.HotelID)
	}

	return &GetOutput{
		Hotel:     stored.Hotel,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// Save replaces the hotel snapshot
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateHotel(input.Hotel); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	data, err := json.Marshal(redisSnapshot{Hotel: input.Hotel, UpdatedAt: now})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal hotel %s", input.Hotel.ID)
	}

	// Snapshots do not expire
	if err := r.client.Set(ctx, hotelKey(input.Hotel.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store hotel %s in Redis", input.Hotel.ID)
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

// Delete removes the hotel snapshot
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	removed, err := r.client.Del(ctx, hotelKey(input.HotelID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete hotel %s from Redis", input.HotelID)
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}
