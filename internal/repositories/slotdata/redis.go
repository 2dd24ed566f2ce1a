package slotdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/aus-world/internal/errors"
	"github.com/KirkDiggler/aus-world/internal/pkg/clock"
	"github.com/KirkDiggler/aus-world/internal/redis"
)

const (
	// Key pattern: slot_data:{seed}:{player}
	recordKeyPrefix = "slot_data:"
	// Set of player ids per seed: slot_data:{seed}:players
	playersKeySuffix = ":players"
)

// RedisConfig holds the dependencies for the redis repository
type RedisConfig struct {
	Client redis.Client
	Clock  clock.Clock
	// TTL expires records; zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redis.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a redis backed slot data repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	record, err := prepare(input, r.clock)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal slot data")
	}

	playersKey := r.playersKey(record.SeedName)
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, r.recordKey(record.SeedName, record.Player), body, r.ttl)
		pipe.SAdd(ctx, playersKey, record.Player)
		if r.ttl > 0 {
			pipe.Expire(ctx, playersKey, r.ttl)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save slot data",
			"seed_name", record.SeedName,
			"player", record.Player,
			"error", err)
		return nil, errors.Wrap(err, "failed to save slot data")
	}

	slog.DebugContext(ctx, "saved slot data",
		"seed_name", record.SeedName,
		"player", record.Player)
	return &SaveOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.SeedName, input.Player); err != nil {
		return nil, err
	}

	record, err := r.load(ctx, input.SeedName, input.Player)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.SeedName == "" {
		return nil, errors.InvalidArgument("seed name is required")
	}

	players, err := r.players(ctx, input.SeedName)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(players))
	for _, player := range players {
		record, err := r.load(ctx, input.SeedName, player)
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "slot data expired, cleaning up index",
				"seed_name", input.SeedName,
				"player", player)
			_ = r.client.SRem(ctx, r.playersKey(input.SeedName), player).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &ListOutput{Records: records}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SeedName == "" {
		return nil, errors.InvalidArgument("seed name is required")
	}

	players, err := r.players(ctx, input.SeedName)
	if err != nil {
		return nil, err
	}

	keys := []string{r.playersKey(input.SeedName)}
	for _, player := range players {
		keys = append(keys, r.recordKey(input.SeedName, player))
	}

	removed, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete slot data")
	}

	deleted := int(removed)
	if len(players) > 0 {
		// the index key itself is not a record
		deleted--
	}
	return &DeleteOutput{Deleted: deleted}, nil
}

func (r *redisRepository) load(ctx context.Context, seedName string, player int) (*Record, error) {
	body, err := r.client.Get(ctx, r.recordKey(seedName, player)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no slot data for player %d of seed %q", player, seedName).
				WithMeta("seed_name", seedName).
				WithMeta("player", player)
		}
		return nil, errors.Wrap(err, "failed to get slot data")
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal slot data")
	}
	record.Data, err = Normalize(record.Data)
	if err != nil {
		return nil, errors.Wrap(err, "stored slot data is corrupt")
	}
	return &record, nil
}

func (r *redisRepository) players(ctx context.Context, seedName string) ([]int, error) {
	members, err := r.client.SMembers(ctx, r.playersKey(seedName)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list slot data players")
	}

	players := make([]int, 0, len(members))
	for _, m := range members {
		p, err := strconv.Atoi(m)
		if err != nil {
			return nil, errors.Internalf("invalid player id %q in slot data index", m)
		}
		players = append(players, p)
	}
	sort.Ints(players)
	return players, nil
}

func (r *redisRepository) recordKey(seedName string, player int) string {
	return fmt.Sprintf("%s%s:%d", recordKeyPrefix, seedName, player)
}

func (r *redisRepository) playersKey(seedName string) string {
	return recordKeyPrefix + seedName + playersKeySuffix
}

// prepare validates a save and returns the record to store
func prepare(input *SaveInput, c clock.Clock) (*Record, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	in := input.Record
	if err := validateKey(in.SeedName, in.Player); err != nil {
		return nil, err
	}

	data, err := Normalize(in.Data)
	if err != nil {
		return nil, err
	}

	return &Record{
		SeedName:   in.SeedName,
		Player:     in.Player,
		PlayerName: in.PlayerName,
		Game:       in.Game,
		Data:       data,
		CreatedAt:  c.Now(),
	}, nil
}

func validateKey(seedName string, player int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("seed_name", seedName, vb)
	if player < 1 {
		vb.Fieldf("player", "must be at least 1, got %d", player)
	}
	return vb.Build()
}
