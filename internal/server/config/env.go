package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays DATABASE_URL, JWT_SECRET, JWT_EXPIRY and PORT.
// JWT_EXPIRY takes a Go duration or a whole number of days ("7d").
// A malformed JWT_EXPIRY or PORT panics.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		config.DatabaseDSN = v
	}

	if v, ok := os.LookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}

	if v, ok := os.LookupEnv("JWT_EXPIRY"); ok && v != "" {
		d, err := parseExpiry(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			panic(fmt.Errorf("invalid PORT %q: %w", v, err))
		}
		config.EndpointAddrHTTP = ":" + v
	}
}

func parseExpiry(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid JWT_EXPIRY %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_EXPIRY %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid JWT_EXPIRY %q", s)
	}
	return d, nil
}
