package photo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/KirkDiggler/holidayhub/internal/repositories/redisutil"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	objectKeyPrefix = "photo:"

	fieldData        = "data"
	fieldContentType = "content_type"

	defaultContentType = "application/octet-stream"
)

var (
	// ErrObjectNotFound is returned when nothing is stored under bucket/key
	ErrObjectNotFound = errors.New("photo not found")

	// ErrObjectTooLarge is returned when an upload exceeds MaxBytes
	ErrObjectTooLarge = errors.New("photo too large")
)

// Config holds configuration for the Redis photo store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// BaseURL is prepended to bucket/key for public URLs, e.g. http://localhost:8080/photos
	BaseURL string

	// MaxBytes limits an upload; zero means 10MiB
	MaxBytes int
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client   *redis.Client
	baseURL  string
	maxBytes int
}

// NewRedis creates a new Redis-backed photo store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if err := redisutil.Ping(cfg.RedisClient); err != nil {
		return nil, err
	}

	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = 10 << 20
	}

	return &redisStore{
		client:   cfg.RedisClient,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Upload stores the bytes under bucket/key
func (s *redisStore) Upload(ctx context.Context, input *UploadInput) error {
	if input == nil || input.Bucket == "" || input.Key == "" {
		return errors.New("input, bucket and key cannot be empty")
	}

	if len(input.Data) == 0 {
		return errors.New("data cannot be empty")
	}

	if len(input.Data) > s.maxBytes {
		return ErrObjectTooLarge
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	err := s.client.HSet(ctx, objectKey(input.Bucket, input.Key), map[string]interface{}{
		fieldData:        input.Data,
		fieldContentType: contentType,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to upload photo: %w", err)
	}

	return nil
}

// PublicURL returns baseURL/bucket/key with each segment escaped
func (s *redisStore) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

// Get retrieves a stored object
func (s *redisStore) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Bucket == "" || input.Key == "" {
		return nil, errors.New("input, bucket and key cannot be empty")
	}

	fields, err := s.client.HGetAll(ctx, objectKey(input.Bucket, input.Key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrObjectNotFound
	}

	return &GetOutput{
		Data:        []byte(fields[fieldData]),
		ContentType: fields[fieldContentType],
	}, nil
}

func objectKey(bucket, key string) string {
	return objectKeyPrefix + bucket + ":" + key
}
