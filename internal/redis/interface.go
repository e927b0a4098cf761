// Package redis wraps the go-redis client behind a narrow interface so
// repositories can be tested against miniredis or a generated mock.
package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so both single-instance and cluster
// deployments satisfy the same dependency.
type Client interface {
	redis.UniversalClient
}
