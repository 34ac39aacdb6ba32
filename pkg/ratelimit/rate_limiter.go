package ratelimit

import (
	"context"
	"fmt"
	"time"

	"wayfinder/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

type RateLimitType string

const (
	RateLimitTypeDefault RateLimitType = "default"
	RateLimitTypePublic  RateLimitType = "public"
	RateLimitTypeQuery   RateLimitType = "query"
	RateLimitTypeSpeech  RateLimitType = "speech"
	RateLimitTypeSession RateLimitType = "session"
	RateLimitTypeHealth  RateLimitType = "health"
)

// Config holds per-bucket request limits for one sliding window
type Config struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	PublicRequests  int           `json:"public_requests"`
	QueryRequests   int           `json:"query_requests"`
	SpeechRequests  int           `json:"speech_requests"`
	SessionRequests int           `json:"session_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *redis.Client
	config *Config
}

func NewRateLimiter(client *redis.Client, config *Config) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// checks if request is allowed
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error) {
	limit := r.getLimit(limitType)

	if !r.config.Enabled || r.isWhitelisted(clientIP) {
		return &Result{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit,
			ResetTime: time.Now().Add(r.config.WindowDuration).Unix(),
		}, nil
	}

	key := constants.RateLimitKey(clientIP, string(limitType))
	return r.checkLimit(ctx, key, limit)
}

// performs the actual rate limit check using sliding window
func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-r.config.WindowDuration)

	// Lua script for atomic sliding window rate limiting. Returns an explicit
	// allowed flag: a bare count is ambiguous at exactly the limit, since the
	// last allowed request and the first rejected one both observe it.
	luaScript := `
		local key = KEYS[1]
		local window_start = tonumber(ARGV[1])
		local now = tonumber(ARGV[2])
		local limit = tonumber(ARGV[3])
		local window_seconds = tonumber(ARGV[4])

		-- Remove old entries
		redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

		-- Count current requests
		local current_count = redis.call('ZCARD', key)

		-- Check if limit exceeded; the rejected request is not recorded
		if current_count >= limit then
			redis.call('EXPIRE', key, window_seconds)
			return {0, current_count, 0}
		end

		-- Add current request
		redis.call('ZADD', key, now, now)
		redis.call('EXPIRE', key, window_seconds)

		return {1, current_count + 1, limit - current_count - 1}
	`

	result, err := r.client.Eval(ctx, luaScript, []string{key},
		windowStart.Unix(),
		now.Unix(),
		limit,
		int(r.config.WindowDuration.Seconds())).Result()

	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}

	return parseLimitResult(result, limit, now.Add(r.config.WindowDuration).Unix())
}

// parseLimitResult decodes the script reply. go-redis delivers Lua integers
// as int64, so the values are type-asserted, never formatted through strconv.
func parseLimitResult(result interface{}, limit int, resetTime int64) (*Result, error) {
	values, ok := result.([]interface{})
	if !ok || len(values) != 3 {
		return nil, fmt.Errorf("unexpected redis response %v", result)
	}

	allowed, okAllowed := values[0].(int64)
	remaining, okRemaining := values[2].(int64)
	if !okAllowed || !okRemaining {
		return nil, fmt.Errorf("unexpected redis response types %v", values)
	}

	return &Result{
		Allowed:   allowed == 1,
		Limit:     limit,
		Remaining: int(remaining),
		ResetTime: resetTime,
	}, nil
}

func (r *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypePublic:
		return r.config.PublicRequests
	case RateLimitTypeQuery:
		return r.config.QueryRequests
	case RateLimitTypeSpeech:
		return r.config.SpeechRequests
	case RateLimitTypeSession:
		return r.config.SessionRequests
	case RateLimitTypeHealth:
		return r.config.HealthRequests
	default:
		return r.config.DefaultRequests
	}
}

func (r *RateLimiter) isWhitelisted(ip string) bool {
	for _, whitelistedIP := range r.config.WhitelistedIPs {
		if ip == whitelistedIP {
			return true
		}
	}
	return false
}
