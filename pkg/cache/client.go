package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"hawaiielite-properties/pkg/config"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client used by the search cache.
func InitRedis(cfg config.RedisConfig) error {
	var tlsConfig *tls.Config
	if cfg.TLSEnabled {
		if cfg.TLSCertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSCertFile)
			if err != nil {
				logger.GlobalLogger.Errorf("failed to load TLS certificate: %v", err)
				return fmt.Errorf("failed to load TLS certificate: %v", err)
			}
			tlsConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
			}
		} else {
			tlsConfig = &tls.Config{}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ping(ctx, client); err != nil {
		_ = client.Close()
		logger.GlobalLogger.Errorf("failed to connect to Redis addr=%s:%d: %v", cfg.Host, cfg.Port, err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	RedisClient = client
	logger.GlobalLogger.Printf("Redis connected addr=%s:%d db=%d", cfg.Host, cfg.Port, cfg.DB)
	return nil
}

// Ping checks the shared client. It reports an error when Redis was never initialised.
func Ping(ctx context.Context) error {
	if RedisClient == nil {
		return ErrNotConnected
	}
	return ping(ctx, RedisClient)
}

func ping(ctx context.Context, client *redis.Client) error {
	start := time.Now()
	err := client.Ping(ctx).Err()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
	}
	return err
}

// CloseRedis closes the shared client connection.
func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
		RedisClient = nil
	}
}
