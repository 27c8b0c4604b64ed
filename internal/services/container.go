package services

import (
	"context"
	"fmt"
	"time"

	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/altechdata/postcode-api/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config        *config.Config
	logger        *logrus.Logger
	redisClient   *redis.Client
	Repository    repository.PostcodeRepository
	LookupService LookupServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	repo, err := repository.Open(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	container := NewContainerWithRepository(cfg, logger, repo)
	container.initRedis()

	return container, nil
}

// NewContainerWithRepository builds a container around an existing repository
func NewContainerWithRepository(cfg *config.Config, logger *logrus.Logger, repo repository.PostcodeRepository) *Container {
	return &Container{
		config:        cfg,
		logger:        logger,
		Repository:    repo,
		LookupService: NewLookupService(repo, logger),
	}
}

// initRedis initializes the Redis client used for shared rate limiting
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, rate limiting is per instance")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.WithError(err).Warn("Redis connection failed, rate limiting is per instance")
		_ = client.Close()
		return
	}

	c.logger.Info("Redis connection established")
	c.redisClient = client
}

// Close closes all service connections
func (c *Container) Close() error {
	var errs []error

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.Repository != nil {
		if err := c.Repository.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close repository: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		start := time.Now()
		err := c.redisClient.Ping(ctx).Err()
		elapsed := time.Since(start).Milliseconds()

		if err != nil {
			health["redis"] = map[string]interface{}{
				"status":           models.StatusDegraded,
				"error":            err.Error(),
				"response_time_ms": elapsed,
			}
		} else {
			health["redis"] = map[string]interface{}{
				"status":           models.StatusHealthy,
				"response_time_ms": elapsed,
			}
		}
	} else {
		health["redis"] = map[string]interface{}{
			"status": models.StatusDisabled,
		}
	}

	if c.LookupService != nil {
		health["database"] = c.LookupService.Health()
	}

	return health
}

// GetRedisClient returns the Redis client, nil when Redis is not in use
func (c *Container) GetRedisClient() *redis.Client {
	return c.redisClient
}
