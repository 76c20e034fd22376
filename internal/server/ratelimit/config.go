package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model-backed operations (strictest limits)
		{Path: "/style", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/items/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 2: write operations (moderate limits)
		{Path: "/items", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/items/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/profiles", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/profiles/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/favorites", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/favorites/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: credential endpoints (brute-force protection)
		{Path: "/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Reads are handled by the default limit; /health and /uploads/ are
		// unlimited via the matcher.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
