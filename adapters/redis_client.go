package adapters

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisOption adjusts the parsed redis options before the client is created.
type RedisOption func(*redis.Options)

// NewRedisUniversalClient parses redisURL (redis://[user:pass@]host:port/db) and creates a
// universal client for it.
//
// Returns: (client, nil); (nil, error) when the URL does not parse.
//
// Called from discovererRedis for each discovery URL it sees, and from tests.
func NewRedisUniversalClient(redisURL string, options ...RedisOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:              []string{options.Addr},
		DB:                 options.DB,
		Username:           options.Username,
		Password:           options.Password,
		TLSConfig:          options.TLSConfig,
		WriteTimeout:       options.WriteTimeout,
		ReadTimeout:        options.ReadTimeout,
		DialTimeout:        options.DialTimeout,
		MaxRetries:         options.MaxRetries,
		PoolSize:           options.PoolSize,
		PoolTimeout:        options.PoolTimeout,
		MinIdleConns:       options.MinIdleConns,
		IdleTimeout:        options.IdleTimeout,
		IdleCheckFrequency: options.IdleCheckFrequency,
	}
}
