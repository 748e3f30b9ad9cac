package usecase

import (
	"context"
	"time"
)

// SynonymCache is the subset of the Redis adapter the resolver needs.
// Implementations must treat a missing key as (false, nil).
type SynonymCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
