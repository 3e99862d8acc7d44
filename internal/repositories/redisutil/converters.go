// Package redisutil holds the small conversions shared by the Redis
// repositories for hash-backed rows.
package redisutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNilClient is returned when a repository is built without a client
var ErrNilClient = errors.New("redis client cannot be nil")

// Ping validates the client and checks the connection
func Ping(client *redis.Client) error {
	if client == nil {
		return ErrNilClient
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

// FormatTime encodes an optional timestamp for a hash field. Nil is "".
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime decodes a hash field written by FormatTime
func ParseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}

	return &t, nil
}

// FormatInt encodes an optional int for a hash field. Nil is "".
func FormatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// ParseInt decodes a hash field written by FormatInt
func ParseInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return &n, nil
}

// ParseInt64 decodes an int64 hash field, treating "" as zero
func ParseInt64(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return n, nil
}

// FormatBool encodes a bool hash field
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseBool decodes a hash field written by FormatBool
func ParseBool(value string) bool {
	return value == "1" || value == "true"
}
