package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface repositories use
type Client interface {
	redis.UniversalClient
}

// Nil is returned by redis when a key does not exist
const Nil = redis.Nil
