package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Venue data fixture
	Venue VenueConfig

	// Assistant behavior
	Assistant AssistantConfig

	// Redis configuration
	Redis RedisConfig

	// Kafka analytics stream
	Kafka KafkaConfig

	// Text-to-speech proxy
	Speech SpeechConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel string
}

// VenueConfig holds venue fixture configuration
type VenueConfig struct {
	DataFile string
	CacheTTL time.Duration
}

// AssistantConfig holds query resolver configuration
type AssistantConfig struct {
	// Simulated processing delay bounds; the handler sleeps a random
	// duration in [ThinkingDelayMin, ThinkingDelayMax] before answering.
	ThinkingDelayMin time.Duration
	ThinkingDelayMax time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
	Enabled  bool
}

// KafkaConfig holds the analytics producer configuration
type KafkaConfig struct {
	Brokers    []string
	QueryTopic string
	Enabled    bool
}

// SpeechConfig holds text-to-speech proxy configuration
type SpeechConfig struct {
	APIKey         string
	DefaultVoiceID string
	BaseURL        string
	LocalCommand   string // local synthesizer binary, e.g. espeak-ng
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
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

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Venue data fixture
		Venue: VenueConfig{
			DataFile: getEnv("VENUE_DATA_FILE", "data/venue-data.json"),
			CacheTTL: getDurationEnv("VENUE_CACHE_TTL", 1*time.Hour),
		},

		// Assistant behavior
		Assistant: AssistantConfig{
			ThinkingDelayMin: getDurationEnv("THINKING_DELAY_MIN", 1*time.Second),
			ThinkingDelayMax: getDurationEnv("THINKING_DELAY_MAX", 2*time.Second),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
		},

		// Kafka analytics stream
		Kafka: KafkaConfig{
			Brokers:    getStringSliceEnv("KAFKA_BROKERS", []string{}),
			QueryTopic: getEnv("KAFKA_QUERY_TOPIC", "wayfinder-queries"),
			Enabled:    getBoolEnv("KAFKA_ENABLED", false),
		},

		// Text-to-speech proxy
		Speech: SpeechConfig{
			APIKey:         getEnv("ELEVENLABS_API_KEY", ""),
			DefaultVoiceID: getEnv("ELEVENLABS_VOICE_ID", ""),
			BaseURL:        getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),
			LocalCommand:   getEnv("SPEECH_LOCAL_COMMAND", "espeak-ng"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:  getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 100),
			QueryRequests:   getIntEnv("RATE_LIMIT_QUERY_REQUESTS", 30),
			SpeechRequests:  getIntEnv("RATE_LIMIT_SPEECH_REQUESTS", 10),
			SessionRequests: getIntEnv("RATE_LIMIT_SESSION_REQUESTS", 60),
			HealthRequests:  getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port
	if len(cfg.Kafka.Brokers) > 0 {
		cfg.Kafka.Enabled = true
	}

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
