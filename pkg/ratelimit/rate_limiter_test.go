package ratelimit

import (
	"context"
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 60,
		PublicRequests:  100,
		QueryRequests:   30,
		SpeechRequests:  10,
		SessionRequests: 60,
		HealthRequests:  120,
		WhitelistedIPs:  []string{"10.0.0.1"},
	}
}

func TestParseLimitResult(t *testing.T) {
	// go-redis returns Lua integers as int64; the reply must be decoded by
	// type assertion, and an over-limit count must come out denied.
	cases := []struct {
		name          string
		reply         interface{}
		wantAllowed   bool
		wantRemaining int
		wantErr       bool
	}{
		{
			name:          "allowed with headroom",
			reply:         []interface{}{int64(1), int64(5), int64(55)},
			wantAllowed:   true,
			wantRemaining: 55,
		},
		{
			name:          "last allowed request",
			reply:         []interface{}{int64(1), int64(60), int64(0)},
			wantAllowed:   true,
			wantRemaining: 0,
		},
		{
			name:          "denied at the limit",
			reply:         []interface{}{int64(0), int64(60), int64(0)},
			wantAllowed:   false,
			wantRemaining: 0,
		},
		{
			name:          "denied far over the limit",
			reply:         []interface{}{int64(0), int64(75), int64(0)},
			wantAllowed:   false,
			wantRemaining: 0,
		},
		{
			name:    "wrong arity",
			reply:   []interface{}{int64(1), int64(5)},
			wantErr: true,
		},
		{
			name:    "wrong element types",
			reply:   []interface{}{"1", "5", "55"},
			wantErr: true,
		},
		{
			name:    "not a slice",
			reply:   int64(1),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := parseLimitResult(tc.reply, 60, 1234)
			if tc.wantErr {
				if err == nil {
					t.Fatal("parseLimitResult succeeded; want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLimitResult: %v", err)
			}

			if result.Allowed != tc.wantAllowed {
				t.Errorf("allowed = %v; want %v", result.Allowed, tc.wantAllowed)
			}
			if result.Remaining != tc.wantRemaining {
				t.Errorf("remaining = %d; want %d", result.Remaining, tc.wantRemaining)
			}
			if result.Limit != 60 || result.ResetTime != 1234 {
				t.Errorf("limit/reset = %d/%d; want 60/1234", result.Limit, result.ResetTime)
			}
		})
	}
}

func TestGetLimitBuckets(t *testing.T) {
	limiter := NewRateLimiter(nil, testConfig())

	cases := []struct {
		limitType RateLimitType
		want      int
	}{
		{RateLimitTypeDefault, 60},
		{RateLimitTypePublic, 100},
		{RateLimitTypeQuery, 30},
		{RateLimitTypeSpeech, 10},
		{RateLimitTypeSession, 60},
		{RateLimitTypeHealth, 120},
		{RateLimitType("unknown"), 60},
	}

	for _, tc := range cases {
		if got := limiter.getLimit(tc.limitType); got != tc.want {
			t.Errorf("getLimit(%s) = %d; want %d", tc.limitType, got, tc.want)
		}
	}
}

func TestIsAllowedBypasses(t *testing.T) {
	// Disabled limiter and whitelisted IPs never reach Redis, so a nil
	// client must not be touched.
	disabled := testConfig()
	disabled.Enabled = false
	limiter := NewRateLimiter(nil, disabled)

	result, err := limiter.IsAllowed(context.Background(), "192.168.1.5", RateLimitTypeSpeech)
	if err != nil {
		t.Fatalf("IsAllowed (disabled): %v", err)
	}
	if !result.Allowed || result.Remaining != 10 {
		t.Errorf("disabled result = %+v; want allowed with full bucket", result)
	}

	limiter = NewRateLimiter(nil, testConfig())
	result, err = limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeQuery)
	if err != nil {
		t.Fatalf("IsAllowed (whitelisted): %v", err)
	}
	if !result.Allowed {
		t.Error("whitelisted IP was not allowed")
	}
}

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/assistant/query", RateLimitTypeQuery},
		{"/api/v1/text-to-speech", RateLimitTypeSpeech},
		{"/api/v1/sessions/:id/zoom", RateLimitTypeSession},
		{"/api/v1/venue/locations", RateLimitTypePublic},
		{"/api/v1/map.svg", RateLimitTypePublic},
		{"/api/v1/something-else", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		if got := getRateLimitType(tc.path); got != tc.want {
			t.Errorf("getRateLimitType(%s) = %s; want %s", tc.path, got, tc.want)
		}
	}
}
