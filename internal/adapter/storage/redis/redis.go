package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pst-registry/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Role names what the registry keeps in Redis.
type Role string

const (
	RoleIdentity  Role = "identity"
	RoleRateLimit Role = "ratelimit"
)

func joinRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}

// NewClient connects to Redis and pings it once. roles are only logged.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger, roles ...Role) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping registry redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("roles", joinRoles(roles)).
		Msg("Registry Redis connected")

	return client, nil
}
