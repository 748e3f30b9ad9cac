package cache

import (
	"context"
	"testing"
	"time"

	"jobquery/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewRedis(context.Background(), config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, nil)
	require.True(t, r.Available())
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis_SetGetJSON_RoundTrip(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "synonyms:data scientist", []string{"Data Analyst", "Ml Engineer"}, time.Hour))

	var got []string
	hit, err := r.GetJSON(ctx, "synonyms:data scientist", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"Data Analyst", "Ml Engineer"}, got)

	raw, err := mr.Get("synonyms:data scientist")
	require.NoError(t, err)
	assert.JSONEq(t, `["Data Analyst","Ml Engineer"]`, raw)
	assert.Equal(t, time.Hour, mr.TTL("synonyms:data scientist"))
}

func TestRedis_SetJSON_DefaultTTL(t *testing.T) {
	r, mr := newTestRedis(t)

	require.NoError(t, r.SetJSON(context.Background(), "k", []string{}, 0))

	assert.Equal(t, DefaultTTL, mr.TTL("k"))
}

func TestRedis_GetJSON_ExpiredIsMiss(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "k", []string{"a"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got []string
	hit, err := r.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_Delete(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "k", []string{"a"}, time.Minute))
	require.NoError(t, r.Delete(ctx, "k"))

	assert.False(t, mr.Exists("k"))
}

func TestRedis_Unavailable_BypassesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	r := NewRedis(context.Background(), config.RedisConfig{Host: host, Port: port}, nil)
	ctx := context.Background()

	assert.False(t, r.Available())
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.NoError(t, r.SetJSON(ctx, "k", []string{"a"}, time.Minute))

	var got []string
	hit, err := r.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())
}
