package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; the lease zset is scored by expiry in ms
	rosterKeyPrefix = "presence:"
	membersSuffix   = ":members"

	defaultTTL = 30 * time.Second
)

// pruneScript drops every lease that expired before ARGV[1] together with its
// member record, so a rejoin can never lose its record to a stale prune.
var pruneScript = redis.NewScript(`
local expired = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[1])
for _, id in ipairs(expired) do
	redis.call('ZREM', KEYS[1], id)
	redis.call('HDEL', KEYS[2], id)
end
return #expired
`)

// ErrNotPresent is returned when a heartbeat arrives for someone not in the roster
var ErrNotPresent = errors.New("participant not present")

// Config holds configuration for the Redis presence tracker
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Notifier receives a presence change on join and leave; optional
	Notifier notify.Publisher

	// Clock defaults to the system clock
	Clock clock.Clock

	// TTL is how long a lease lasts without a heartbeat
	TTL time.Duration
}

type redisTracker struct {
	client   *redis.Client
	notifier notify.Publisher
	clock    clock.Clock
	ttl      time.Duration
}

// NewRedis creates a new Redis-backed presence tracker
func NewRedis(cfg *Config) (*redisTracker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	tracker := &redisTracker{
		client:   cfg.RedisClient,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
		ttl:      cfg.TTL,
	}
	if tracker.notifier == nil {
		tracker.notifier = notify.Nop{}
	}
	if tracker.clock == nil {
		tracker.clock = clock.New()
	}
	if tracker.ttl <= 0 {
		tracker.ttl = defaultTTL
	}

	return tracker, nil
}

func rosterKey(game string) string {
	return rosterKeyPrefix + game
}

func membersKey(game string) string {
	return rosterKeyPrefix + game + membersSuffix
}

// Join announces a participant
func (t *redisTracker) Join(ctx context.Context, input *JoinInput) (*models.PresenceMember, error) {
	if input == nil || input.Game == "" || input.ParticipantID == "" {
		return nil, errors.New("input, game and participant ID cannot be empty")
	}

	member := &models.PresenceMember{
		ParticipantID: input.ParticipantID,
		DisplayName:   input.DisplayName,
		Avatar:        input.Avatar,
		ExpiresAt:     t.clock.Now().Add(t.ttl).UTC(),
	}

	memberJSON, err := json.Marshal(member)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presence member: %w", err)
	}

	pipe := t.client.TxPipeline()
	pipe.ZAdd(ctx, rosterKey(input.Game), redis.Z{
		Score:  float64(member.ExpiresAt.UnixMilli()),
		Member: member.ParticipantID,
	})
	pipe.HSet(ctx, membersKey(input.Game), member.ParticipantID, memberJSON)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to join presence: %w", err)
	}

	notify.Announce(ctx, t.notifier, &notify.Change{
		Table: notify.TablePresence,
		Op:    notify.OpUpsert,
		Key:   input.Game + ":" + member.ParticipantID,
	})

	return member, nil
}

// Heartbeat extends an existing lease without announcing anything
func (t *redisTracker) Heartbeat(ctx context.Context, input *HeartbeatInput) error {
	if input == nil || input.Game == "" || input.ParticipantID == "" {
		return errors.New("input, game and participant ID cannot be empty")
	}

	expiresAt := t.clock.Now().Add(t.ttl)

	if err := t.client.ZAddXX(ctx, rosterKey(input.Game), redis.Z{
		Score:  float64(expiresAt.UnixMilli()),
		Member: input.ParticipantID,
	}).Err(); err != nil {
		return fmt.Errorf("failed to extend presence: %w", err)
	}

	// ZADD XX never adds, and reports zero whether or not it updated
	if _, err := t.client.ZScore(ctx, rosterKey(input.Game), input.ParticipantID).Result(); err != nil {
		if err == redis.Nil {
			return ErrNotPresent
		}
		return fmt.Errorf("failed to check presence: %w", err)
	}

	return nil
}

// Leave drops a participant
func (t *redisTracker) Leave(ctx context.Context, input *LeaveInput) error {
	if input == nil || input.Game == "" || input.ParticipantID == "" {
		return errors.New("input, game and participant ID cannot be empty")
	}

	pipe := t.client.TxPipeline()
	pipe.ZRem(ctx, rosterKey(input.Game), input.ParticipantID)
	pipe.HDel(ctx, membersKey(input.Game), input.ParticipantID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to leave presence: %w", err)
	}

	notify.Announce(ctx, t.notifier, &notify.Change{
		Table: notify.TablePresence,
		Op:    notify.OpDelete,
		Key:   input.Game + ":" + input.ParticipantID,
	})

	return nil
}

// Roster prunes expired leases and returns who is left
func (t *redisTracker) Roster(ctx context.Context, input *RosterInput) (*RosterOutput, error) {
	if input == nil || input.Game == "" {
		return nil, errors.New("input and game cannot be empty")
	}

	now := strconv.FormatInt(t.clock.Now().UnixMilli(), 10)

	if err := pruneScript.Run(ctx, t.client, []string{rosterKey(input.Game), membersKey(input.Game)}, now).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune presence: %w", err)
	}

	live, err := t.client.ZRangeByScoreWithScores(ctx, rosterKey(input.Game), &redis.ZRangeBy{
		Min: now,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get presence: %w", err)
	}

	if len(live) == 0 {
		return &RosterOutput{Members: []*models.PresenceMember{}}, nil
	}

	ids := make([]string, len(live))
	for i, z := range live {
		ids[i] = z.Member.(string)
	}

	raw, err := t.client.HMGet(ctx, membersKey(input.Game), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get presence members: %w", err)
	}

	members := make([]*models.PresenceMember, 0, len(live))
	for i, value := range raw {
		memberJSON, ok := value.(string)
		if !ok {
			continue
		}

		var member models.PresenceMember
		if err := json.Unmarshal([]byte(memberJSON), &member); err != nil {
			continue
		}
		member.ExpiresAt = time.UnixMilli(int64(live[i].Score)).UTC()
		members = append(members, &member)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return strings.ToLower(members[i].DisplayName) < strings.ToLower(members[j].DisplayName)
	})

	return &RosterOutput{Members: members}, nil
}
