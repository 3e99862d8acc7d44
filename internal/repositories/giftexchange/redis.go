package giftexchange

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/repositories/redisutil"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix = "gift:entry:"
	entriesKey     = "gift:entries"
	stateKey       = "white_elephant:state:1"

	// Hash fields of an entry
	fieldID        = "id"
	fieldUserID    = "user_id"
	fieldIsHost    = "is_host"
	fieldNumber    = "number"
	fieldCreatedAt = "created_at"

	// Hash fields of the state row
	fieldCurrentTurn = "current_turn"
	fieldTimerEndsAt = "timer_ends_at"
	fieldVersion     = "version"

	defaultTurn = 1
)

var (
	// ErrEntryNotFound is returned when an entry does not exist
	ErrEntryNotFound = errors.New("gift exchange entry not found")

	// ErrStateNotFound is returned when the white elephant state does not exist
	ErrStateNotFound = errors.New("white elephant state not found")

	// ErrEntriesChanged is returned when entries were added or removed while
	// numbers were being assigned
	ErrEntriesChanged = errors.New("gift exchange entries changed during assignment")
)

// setExistingScript writes one field on every entry hash in KEYS that still
// exists, and returns how many it wrote. A concurrently deleted entry is
// skipped instead of being recreated as a partial hash.
var setExistingScript = redis.NewScript(`
local updated = 0
for _, key in ipairs(KEYS) do
	if redis.call('EXISTS', key) == 1 then
		redis.call('HSET', key, ARGV[1], ARGV[2])
		updated = updated + 1
	end
end
return updated
`)

// Config holds configuration for the Redis gift exchange repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Notifier receives a change after every write; optional
	Notifier notify.Publisher

	// Clock defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	notifier      notify.Publisher
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed gift exchange repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if err := redisutil.Ping(cfg.RedisClient); err != nil {
		return nil, err
	}

	repo := &redisRepository{
		client:        cfg.RedisClient,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if repo.notifier == nil {
		repo.notifier = notify.Nop{}
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.New()
	}

	return repo, nil
}

func (r *redisRepository) publish(ctx context.Context, table notify.Table, op notify.Op, key string) {
	notify.Announce(ctx, r.notifier, &notify.Change{Table: table, Op: op, Key: key})
}

// InsertEntry adds a gift entry
func (r *redisRepository) InsertEntry(ctx context.Context, input *InsertEntryInput) (*models.GiftExchangeEntry, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	entry := &models.GiftExchangeEntry{
		ID:        r.uuidGenerator.NewUUID(),
		UserID:    input.UserID,
		IsHost:    input.IsHost,
		Number:    input.Number,
		CreatedAt: r.clock.Now().UTC(),
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, entryKeyPrefix+entry.ID, map[string]interface{}{
		fieldID:        entry.ID,
		fieldUserID:    entry.UserID,
		fieldIsHost:    redisutil.FormatBool(entry.IsHost),
		fieldNumber:    redisutil.FormatInt(entry.Number),
		fieldCreatedAt: redisutil.FormatTime(&entry.CreatedAt),
	})
	pipe.ZAdd(ctx, entriesKey, redis.Z{Score: float64(entry.CreatedAt.UnixNano()), Member: entry.ID})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert gift entry: %w", err)
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpInsert, entry.ID)

	return entry, nil
}

// ListEntries retrieves entries in creation order
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := r.listEntries(ctx)
	if err != nil {
		return nil, err
	}

	if input == nil || input.UserID == "" {
		return &ListEntriesOutput{Entries: entries}, nil
	}

	filtered := make([]*models.GiftExchangeEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.UserID == input.UserID {
			filtered = append(filtered, entry)
		}
	}

	return &ListEntriesOutput{Entries: filtered}, nil
}

func (r *redisRepository) listEntries(ctx context.Context) ([]*models.GiftExchangeEntry, error) {
	ids, err := r.client.ZRange(ctx, entriesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get gift entry IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.GiftExchangeEntry{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, entryKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get gift entries: %w", err)
	}

	entries := make([]*models.GiftExchangeEntry, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		// Deleted between the range and the read
		if len(fields) == 0 {
			continue
		}

		entry, err := parseEntry(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to parse gift entry %s: %w", ids[i], err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SetHostForUser sets is_host on every entry the user holds
func (r *redisRepository) SetHostForUser(ctx context.Context, input *SetHostForUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	entries, err := r.listEntries(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.UserID == input.UserID {
			keys = append(keys, entryKeyPrefix+entry.ID)
		}
	}

	if len(keys) == 0 {
		return ErrEntryNotFound
	}

	updated, err := r.setExisting(ctx, keys, fieldIsHost, redisutil.FormatBool(input.IsHost))
	if err != nil {
		return fmt.Errorf("failed to set host for user: %w", err)
	}
	if updated == 0 {
		return ErrEntryNotFound
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpUpdate, input.UserID)

	return nil
}

// AssignNumbers writes every number in one transaction. The transaction is
// aborted if the entry set changes or does not match the assignment.
func (r *redisRepository) AssignNumbers(ctx context.Context, input *AssignNumbersInput) error {
	if input == nil || len(input.Numbers) == 0 {
		return errors.New("input and numbers cannot be empty")
	}

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		ids, err := tx.ZRange(ctx, entriesKey, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to get gift entry IDs: %w", err)
		}

		if len(ids) != len(input.Numbers) {
			return ErrEntriesChanged
		}
		for _, id := range ids {
			if _, ok := input.Numbers[id]; !ok {
				return ErrEntriesChanged
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for id, number := range input.Numbers {
				pipe.HSet(ctx, entryKeyPrefix+id, fieldNumber, strconv.Itoa(number))
			}
			return nil
		})
		return err
	}, entriesKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrEntriesChanged
		}
		if errors.Is(err, ErrEntriesChanged) {
			return err
		}
		return fmt.Errorf("failed to assign numbers: %w", err)
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpUpdate, "")

	return nil
}

// ClearNumbers sets number to null on every entry, keeping rows and host flags
func (r *redisRepository) ClearNumbers(ctx context.Context, input *ClearNumbersInput) error {
	ids, err := r.client.ZRange(ctx, entriesKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get gift entry IDs: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entryKeyPrefix + id
	}

	if _, err := r.setExisting(ctx, keys, fieldNumber, ""); err != nil {
		return fmt.Errorf("failed to clear numbers: %w", err)
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpUpdate, "")

	return nil
}

// DeleteEntry removes a single entry
func (r *redisRepository) DeleteEntry(ctx context.Context, input *DeleteEntryInput) error {
	if input == nil || input.EntryID == "" {
		return errors.New("input and entry ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, entryKeyPrefix+input.EntryID)
	pipe.ZRem(ctx, entriesKey, input.EntryID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete gift entry: %w", err)
	}

	if del.Val() == 0 {
		return ErrEntryNotFound
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpDelete, input.EntryID)

	return nil
}

// DeleteAll removes every entry
func (r *redisRepository) DeleteAll(ctx context.Context, input *DeleteAllInput) error {
	ids, err := r.client.ZRange(ctx, entriesKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get gift entry IDs: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, entryKeyPrefix+id)
	}
	pipe.Del(ctx, entriesKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete gift entries: %w", err)
	}

	r.publish(ctx, notify.TableGiftExchange, notify.OpDelete, "")

	return nil
}

// GetState retrieves the white elephant state
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.WhiteElephantState, error) {
	fields, err := r.client.HGetAll(ctx, stateKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get white elephant state: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrStateNotFound
	}

	return parseState(fields)
}

// EnsureState creates the state at turn 1 when missing
func (r *redisRepository) EnsureState(ctx context.Context, input *EnsureStateInput) (*models.WhiteElephantState, error) {
	created, err := r.client.HSetNX(ctx, stateKey, fieldCurrentTurn, defaultTurn).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create white elephant state: %w", err)
	}

	if created {
		r.publish(ctx, notify.TableWhiteElephantState, notify.OpInsert, "1")
	}

	return r.GetState(ctx, &GetStateInput{})
}

// PatchState applies only the fields set in the patch and bumps the version
func (r *redisRepository) PatchState(ctx context.Context, input *PatchStateInput) (*models.WhiteElephantState, error) {
	if input == nil || input.Patch == nil {
		return nil, errors.New("input and patch cannot be nil")
	}

	patch := input.Patch
	values := map[string]interface{}{}
	if patch.CurrentTurn != nil {
		values[fieldCurrentTurn] = strconv.Itoa(*patch.CurrentTurn)
	}
	if patch.ClearTimer {
		values[fieldTimerEndsAt] = ""
	}
	if patch.TimerEndsAt != nil {
		values[fieldTimerEndsAt] = redisutil.FormatTime(patch.TimerEndsAt)
	}

	if len(values) == 0 {
		return nil, errors.New("patch cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, stateKey, values)
	pipe.HIncrBy(ctx, stateKey, fieldVersion, 1)
	all := pipe.HGetAll(ctx, stateKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to patch white elephant state: %w", err)
	}

	state, err := parseState(all.Val())
	if err != nil {
		return nil, err
	}

	r.publish(ctx, notify.TableWhiteElephantState, notify.OpUpdate, "1")

	return state, nil
}

// IncrementTurn adds delta to current_turn. A missing state starts from turn 1.
func (r *redisRepository) IncrementTurn(ctx context.Context, input *IncrementTurnInput) (*models.WhiteElephantState, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	pipe := r.client.TxPipeline()
	pipe.HSetNX(ctx, stateKey, fieldCurrentTurn, defaultTurn)
	pipe.HIncrBy(ctx, stateKey, fieldCurrentTurn, int64(input.Delta))
	pipe.HIncrBy(ctx, stateKey, fieldVersion, 1)
	all := pipe.HGetAll(ctx, stateKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to increment turn: %w", err)
	}

	state, err := parseState(all.Val())
	if err != nil {
		return nil, err
	}

	r.publish(ctx, notify.TableWhiteElephantState, notify.OpUpdate, "1")

	return state, nil
}

func parseEntry(fields map[string]string) (*models.GiftExchangeEntry, error) {
	entry := &models.GiftExchangeEntry{
		ID:     fields[fieldID],
		UserID: fields[fieldUserID],
		IsHost: redisutil.ParseBool(fields[fieldIsHost]),
	}

	var err error
	if entry.Number, err = redisutil.ParseInt(fields[fieldNumber]); err != nil {
		return nil, err
	}

	createdAt, err := redisutil.ParseTime(fields[fieldCreatedAt])
	if err != nil {
		return nil, err
	}
	if createdAt != nil {
		entry.CreatedAt = *createdAt
	}

	return entry, nil
}

func parseState(fields map[string]string) (*models.WhiteElephantState, error) {
	state := &models.WhiteElephantState{
		ID:          models.WhiteElephantStateID,
		CurrentTurn: defaultTurn,
	}

	if turn, err := redisutil.ParseInt(fields[fieldCurrentTurn]); err != nil {
		return nil, fmt.Errorf("failed to parse current turn: %w", err)
	} else if turn != nil {
		state.CurrentTurn = *turn
	}

	var err error
	if state.TimerEndsAt, err = redisutil.ParseTime(fields[fieldTimerEndsAt]); err != nil {
		return nil, fmt.Errorf("failed to parse timer: %w", err)
	}
	if state.Version, err = redisutil.ParseInt64(fields[fieldVersion]); err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}

	return state, nil
}

// setExisting sets field to value on the given entry hashes that still exist
func (r *redisRepository) setExisting(ctx context.Context, keys []string, field, value string) (int64, error) {
	return setExistingScript.Run(ctx, r.client, keys, field, value).Int64()
}
