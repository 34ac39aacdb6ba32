package constants

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Wayfinder application
// Pattern: wayfinder:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	// TTL_TTS_AUDIO caches synthesized audio; the upstream API bills per
	// character, so repeated phrases are served from Redis.
	TTL_TTS_AUDIO = 24 * time.Hour
)

// ================== CACHE KEY BUILDERS ==================

// TTSAudioKey is the cache key for one synthesized utterance. Audio is keyed
// by a digest of voice and text so repeated phrases hit the cache regardless
// of length.
func TTSAudioKey(voiceID, text string) string {
	sum := sha256.Sum256([]byte(voiceID + "\x00" + text))
	return "wayfinder:tts:" + hex.EncodeToString(sum[:])
}

// RateLimitKey buckets request counters per client IP and limit type.
func RateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf("wayfinder:ratelimit:%s:%s", clientIP, limitType)
}
