package services

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/logger"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisTestConfig(t *testing.T, addr string) *config.Config {
	t.Helper()
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	return &config.Config{Redis: config.RedisConfig{
		Enabled:      true,
		Host:         host,
		Port:         p,
		PoolSize:     2,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}}
}

func serviceHealth(t *testing.T, c *Container, name string) map[string]interface{} {
	t.Helper()
	h, ok := c.Health()[name].(map[string]interface{})
	require.True(t, ok, "no health entry for %s", name)
	return h
}

func TestContainerRedisHealth(t *testing.T) {
	mr := miniredis.RunT(t)

	c := NewContainerWithRepository(redisTestConfig(t, mr.Addr()), logger.Discard(), newFakeRepository())
	c.initRedis()
	defer c.Close()
	require.NotNil(t, c.GetRedisClient())

	redisHealth := serviceHealth(t, c, "redis")
	assert.Equal(t, models.StatusHealthy, redisHealth["status"])
	assert.IsType(t, int64(0), redisHealth["response_time_ms"])
	assert.Equal(t, models.StatusHealthy, serviceHealth(t, c, "database")["status"])

	mr.Close()
	redisHealth = serviceHealth(t, c, "redis")
	assert.Equal(t, models.StatusDegraded, redisHealth["status"])
	assert.NotEmpty(t, redisHealth["error"])
}

func TestContainerRedisUnreachableLeavesClientUnset(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := NewContainerWithRepository(redisTestConfig(t, addr), logger.Discard(), newFakeRepository())
	c.initRedis()
	defer c.Close()

	assert.Nil(t, c.GetRedisClient())
	assert.Equal(t, models.StatusDisabled, serviceHealth(t, c, "redis")["status"])
}

func TestContainerRedisDisabled(t *testing.T) {
	cfg := redisTestConfig(t, "127.0.0.1:6379")
	cfg.Redis.Enabled = false

	c := NewContainerWithRepository(cfg, logger.Discard(), newFakeRepository())
	c.initRedis()
	defer c.Close()

	assert.Nil(t, c.GetRedisClient())
	assert.Equal(t, models.StatusDisabled, serviceHealth(t, c, "redis")["status"])
}
