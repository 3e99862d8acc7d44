package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/repositories/redisutil"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"
	participantsKey      = "participants"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Notifier receives a change after every write; optional
	Notifier notify.Publisher

	// Clock and UUIDGenerator default to the system implementations
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	notifier notify.Publisher
	clock    clock.Clock
	uuid     uuid.UUID
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if err := redisutil.Ping(cfg.RedisClient); err != nil {
		return nil, err
	}

	repo := &redisRepository{
		client:   cfg.RedisClient,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
	}
	if repo.notifier == nil {
		repo.notifier = notify.Nop{}
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}

	return repo, nil
}

// CreateParticipant stores a new participant. Display names are not unique.
func (r *redisRepository) CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*CreateParticipantOutput, error) {
	if input == nil || input.DisplayName == "" {
		return nil, errors.New("input and display name cannot be empty")
	}

	participant := &models.Participant{
		ID:          r.uuid.NewUUID(),
		DisplayName: input.DisplayName,
		RealName:    input.RealName,
		CreatedAt:   r.clock.Now().UTC(),
	}

	participantJSON, err := json.Marshal(participant)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, participantKeyPrefix+participant.ID, participantJSON, 0)
	pipe.ZAdd(ctx, participantsKey, redis.Z{
		Score:  float64(participant.CreatedAt.UnixNano()),
		Member: participant.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	notify.Announce(ctx, r.notifier, &notify.Change{
		Table: notify.TableParticipants,
		Op:    notify.OpInsert,
		Key:   participant.ID,
	})

	return &CreateParticipantOutput{Participant: participant}, nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKeyPrefix+input.ParticipantID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// ListParticipants retrieves every participant in join order
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	ids, err := r.client.ZRange(ctx, participantsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, participantKeyPrefix+id)
	}

	// redis.Nil for a single key is expected; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for i, cmd := range cmds {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", ids[i], err)
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", ids[i], err)
		}
		participants = append(participants, &participant)
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}
