package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/response"
)

// IdempotencyKeyHeader is the request header naming a client retry key
const IdempotencyKeyHeader = "Idempotency-Key"

// Deduper reports whether key is seen for the first time
type Deduper interface {
	AcquireOnce(ctx context.Context, key string) bool
}

// RedisDeduper remembers keys with SETNX for a TTL
type RedisDeduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisDeduper creates a deduper on rdb
func NewRedisDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisDeduper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisDeduper{rdb: rdb, ttl: ttl, logger: logger}
}

// AcquireOnce returns false only when key was already recorded.
// When redis is unreachable the request is allowed through.
func (d *RedisDeduper) AcquireOnce(ctx context.Context, key string) bool {
	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		d.logger.Warn("Redis idempotency check failed, allowing request",
			zap.String("key", key),
			zap.Error(err),
		)
		return true
	}
	if !ok {
		d.logger.Info("Rejected duplicated request", zap.String("key", key))
	}
	return ok
}

// Idempotency rejects a repeated mutating request carrying the same Idempotency-Key.
// Requests without the header, safe methods and a nil deduper pass through.
func Idempotency(deduper Deduper) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if deduper == nil || key == "" || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		dedupKey := fmt.Sprintf("idempotency:%s:%s:%s", c.Request.Method, c.Request.URL.Path, key)
		if !deduper.AcquireOnce(c.Request.Context(), dedupKey) {
			response.SendError(c, http.StatusConflict, response.ErrCodeDuplicateRequest, "Duplicate request")
			c.Abort()
			return
		}
		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
