package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports whether the Redis instance backing the given roles
// answers PING.
type HealthCheck struct {
	client *goredis.Client
	name   string
}

func NewHealthCheck(client *goredis.Client, roles ...Role) *HealthCheck {
	name := "redis"
	if len(roles) > 0 {
		name += "[" + joinRoles(roles) + "]"
	}
	return &HealthCheck{client: client, name: name}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Name is "redis[identity,ratelimit]" style, listing the roles served.
func (h *HealthCheck) Name() string {
	return h.name
}
