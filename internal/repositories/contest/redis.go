package contest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/repositories/redisutil"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix      = "contest:entry:"
	entriesKey          = "contest:entries"
	entriesByTypePrefix = "contest:entries:"
	entrySeqKey         = "contest:entry_seq"

	// votesKey is a hash keyed by "<entry_id>:<voter_id>", so a second
	// vote from the same voter overwrites the first
	votesKey = "contest:votes"
)

// ErrVoteNotFound is returned when a voter has not voted on an entry
var ErrVoteNotFound = errors.New("vote not found")

// Config holds configuration for the Redis contest repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Notifier receives a change after every write; optional
	Notifier notify.Publisher

	// Clock defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	notifier notify.Publisher
	clock    clock.Clock
}

// NewRedis creates a new Redis-backed contest repository
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
	}
	if repo.notifier == nil {
		repo.notifier = notify.Nop{}
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}

	return repo, nil
}

func voteField(entryID int64, voterID string) string {
	return strconv.FormatInt(entryID, 10) + ":" + voterID
}

// CreateEntry stores a new contest entry
func (r *redisRepository) CreateEntry(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.New("input and entry cannot be nil")
	}

	if !input.Entry.ContestType.IsValid() {
		return nil, fmt.Errorf("invalid contest type %q", input.Entry.ContestType)
	}

	id, err := r.client.Incr(ctx, entrySeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate entry ID: %w", err)
	}

	entry := *input.Entry
	entry.ID = id
	entry.CreatedAt = r.clock.Now().UTC()
	if entry.RepresentedParticipantID == "" {
		entry.RepresentedParticipantID = entry.OwnerID
	}

	entryJSON, err := json.Marshal(&entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entryKeyPrefix+strconv.FormatInt(id, 10), entryJSON, 0)
	pipe.ZAdd(ctx, entriesKey, redis.Z{Score: float64(id), Member: id})
	pipe.ZAdd(ctx, entriesByTypePrefix+string(entry.ContestType), redis.Z{Score: float64(id), Member: id})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	notify.Announce(ctx, r.notifier, &notify.Change{
		Table: notify.TableContestEntries,
		Op:    notify.OpInsert,
		Key:   strconv.FormatInt(id, 10),
	})

	return &CreateEntryOutput{Entry: &entry}, nil
}

// ListEntries retrieves entries in ascending ID order
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	indexKey := entriesKey
	if input != nil && input.ContestType != "" {
		indexKey = entriesByTypePrefix + string(input.ContestType)
	}

	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListEntriesOutput{
			Entries: []*models.ContestEntry{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, entryKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	entries := make([]*models.ContestEntry, 0, len(ids))
	for i, cmd := range cmds {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get entry %s: %w", ids[i], err)
		}

		var entry models.ContestEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", ids[i], err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// UpsertVote writes the vote, overwriting any previous vote by the same voter
func (r *redisRepository) UpsertVote(ctx context.Context, input *UpsertVoteInput) error {
	if input == nil || input.Vote == nil {
		return errors.New("input and vote cannot be nil")
	}

	vote := *input.Vote
	if vote.EntryID == 0 || vote.VoterID == "" {
		return errors.New("entry ID and voter ID cannot be empty")
	}

	if vote.Status == "" {
		vote.Status = models.VoteStatusRated
	}
	if vote.Status == models.VoteStatusRanOut {
		vote.Rating = nil
	}
	vote.UpdatedAt = r.clock.Now().UTC()

	voteJSON, err := json.Marshal(&vote)
	if err != nil {
		return fmt.Errorf("failed to marshal vote: %w", err)
	}

	field := voteField(vote.EntryID, vote.VoterID)
	if err := r.client.HSet(ctx, votesKey, field, voteJSON).Err(); err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	notify.Announce(ctx, r.notifier, &notify.Change{
		Table: notify.TableVotes,
		Op:    notify.OpUpsert,
		Key:   field,
	})

	return nil
}

// GetVote retrieves one voter's vote for one entry
func (r *redisRepository) GetVote(ctx context.Context, input *GetVoteInput) (*models.Vote, error) {
	if input == nil || input.EntryID == 0 || input.VoterID == "" {
		return nil, errors.New("input, entry ID and voter ID cannot be empty")
	}

	voteJSON, err := r.client.HGet(ctx, votesKey, voteField(input.EntryID, input.VoterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	var vote models.Vote
	if err := json.Unmarshal([]byte(voteJSON), &vote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vote: %w", err)
	}

	return &vote, nil
}

// ListVotes retrieves every vote ordered by entry then voter
func (r *redisRepository) ListVotes(ctx context.Context, input *ListVotesInput) (*ListVotesOutput, error) {
	raw, err := r.client.HGetAll(ctx, votesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}

	votes := make([]*models.Vote, 0, len(raw))
	for field, voteJSON := range raw {
		var vote models.Vote
		if err := json.Unmarshal([]byte(voteJSON), &vote); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vote %s: %w", field, err)
		}

		if input != nil && input.EntryID != 0 && vote.EntryID != input.EntryID {
			continue
		}
		votes = append(votes, &vote)
	}

	sort.Slice(votes, func(i, j int) bool {
		if votes[i].EntryID != votes[j].EntryID {
			return votes[i].EntryID < votes[j].EntryID
		}
		return votes[i].VoterID < votes[j].VoterID
	})

	return &ListVotesOutput{
		Votes: votes,
	}, nil
}
