package config

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"         envDefault:"localhost"`
	Port        int           `env:"REDIS_PORT"         envDefault:"6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB"           envDefault:"0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

func LoadRedisConfig() (*RedisConfig, error) {
	return parse[RedisConfig]()
}

func (c *RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// GetClient connects and pings once so a bad address fails at startup.
func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        c.Addr(),
		Password:    c.Password,
		DB:          c.DB,
		DialTimeout: c.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr(), err)
	}

	return client, nil
}
