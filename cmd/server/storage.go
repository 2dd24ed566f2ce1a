package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/aus-world/internal/pkg/clock"
	"github.com/KirkDiggler/aus-world/internal/redis"
	"github.com/KirkDiggler/aus-world/internal/repositories/slotdata"
)

// newSlotDataRepo returns a redis repository when endpoints are given and
// an in-memory one otherwise
func newSlotDataRepo(endpoints string, ttl time.Duration) (slotdata.Repository, func(), error) {
	if strings.TrimSpace(endpoints) == "" {
		log.Println("No redis endpoint configured, slot data is kept in memory")
		return slotdata.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redis.Connect(strings.Split(endpoints, ","), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := slotdata.NewRedis(&slotdata.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		TTL:    ttl,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create slot data repository: %w", err)
	}

	return repo, func() { _ = client.Close() }, nil
}
