package trivia

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
	questionKeyPrefix = "trivia:question:"
	questionsKey      = "trivia:questions"
	stateKey          = "trivia:state:1"
	submissionsKey    = "trivia:submissions"
	submissionSeqKey  = "trivia:submission_seq"

	// Hash fields of the state row
	fieldStatus            = "status"
	fieldCurrentQuestionID = "current_question_id"
	fieldTimerEndsAt       = "timer_ends_at"
	fieldHostID            = "host_id"
	fieldVersion           = "version"
)

var (
	// ErrStateNotFound is returned when the game state row does not exist
	ErrStateNotFound = errors.New("trivia game state not found")

	// ErrSubmissionNotFound is returned when a user has not answered a question
	ErrSubmissionNotFound = errors.New("trivia submission not found")

	// ErrDuplicateSubmission is the uniqueness violation on (user_id, question_id)
	ErrDuplicateSubmission = errors.New("duplicate trivia submission")

	// ErrHostAlreadyClaimed is returned when a different participant already hosts
	ErrHostAlreadyClaimed = errors.New("trivia host already claimed")
)

// claimHostScript sets host_id only when it is empty or already the claimant,
// and returns whoever is host afterwards.
var claimHostScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'host_id')
if current and current ~= '' and current ~= ARGV[1] then
	return current
end
redis.call('HSET', KEYS[1], 'host_id', ARGV[1])
redis.call('HINCRBY', KEYS[1], 'version', 1)
return ARGV[1]
`)

// Config holds configuration for the Redis trivia repository
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

// NewRedis creates a new Redis-backed trivia repository
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

func (r *redisRepository) publish(ctx context.Context, table notify.Table, op notify.Op, key string) {
	notify.Announce(ctx, r.notifier, &notify.Change{Table: table, Op: op, Key: key})
}

// SaveQuestions replaces the question set
func (r *redisRepository) SaveQuestions(ctx context.Context, input *SaveQuestionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	existing, err := r.client.ZRange(ctx, questionsKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get question IDs: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range existing {
		pipe.Del(ctx, questionKeyPrefix+id)
	}
	pipe.Del(ctx, questionsKey)

	for _, question := range input.Questions {
		if question == nil || question.ID == 0 {
			return errors.New("questions must have an ID")
		}

		questionJSON, err := json.Marshal(question)
		if err != nil {
			return fmt.Errorf("failed to marshal question %d: %w", question.ID, err)
		}

		pipe.Set(ctx, questionKeyPrefix+strconv.FormatInt(question.ID, 10), questionJSON, 0)
		pipe.ZAdd(ctx, questionsKey, redis.Z{Score: float64(question.ID), Member: question.ID})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}

	r.publish(ctx, notify.TableTriviaQuestions, notify.OpUpsert, "")

	return nil
}

// ListQuestions retrieves questions in ID order
func (r *redisRepository) ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error) {
	ids, err := r.client.ZRange(ctx, questionsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get question IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListQuestionsOutput{
			Questions: []*models.TriviaQuestion{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, questionKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	questions := make([]*models.TriviaQuestion, 0, len(ids))
	for i, cmd := range cmds {
		questionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get question %s: %w", ids[i], err)
		}

		var question models.TriviaQuestion
		if err := json.Unmarshal([]byte(questionJSON), &question); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question %s: %w", ids[i], err)
		}
		questions = append(questions, &question)
	}

	return &ListQuestionsOutput{
		Questions: questions,
	}, nil
}

// GetState retrieves the singleton game state
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.TriviaGameState, error) {
	fields, err := r.client.HGetAll(ctx, stateKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get trivia state: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrStateNotFound
	}

	return parseState(fields)
}

// EnsureState creates the default lobby state when the row is missing
func (r *redisRepository) EnsureState(ctx context.Context, input *EnsureStateInput) (*models.TriviaGameState, error) {
	created, err := r.client.HSetNX(ctx, stateKey, fieldStatus, string(models.TriviaStatusLobby)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create trivia state: %w", err)
	}

	if created {
		r.publish(ctx, notify.TableTriviaGameState, notify.OpInsert, "1")
	}

	return r.GetState(ctx, &GetStateInput{})
}

// PatchState applies only the fields set in the patch and bumps the version
func (r *redisRepository) PatchState(ctx context.Context, input *PatchStateInput) (*models.TriviaGameState, error) {
	if input == nil || input.Patch.IsEmpty() {
		return nil, errors.New("input and patch cannot be empty")
	}

	patch := input.Patch
	values := map[string]interface{}{}
	if patch.Status != nil {
		values[fieldStatus] = string(*patch.Status)
	}
	if patch.CurrentQuestionID != nil {
		values[fieldCurrentQuestionID] = strconv.FormatInt(*patch.CurrentQuestionID, 10)
	}
	if patch.ClearTimer {
		values[fieldTimerEndsAt] = ""
	}
	if patch.TimerEndsAt != nil {
		values[fieldTimerEndsAt] = redisutil.FormatTime(patch.TimerEndsAt)
	}
	if patch.HostID != nil {
		values[fieldHostID] = *patch.HostID
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, stateKey, values)
	pipe.HIncrBy(ctx, stateKey, fieldVersion, 1)
	all := pipe.HGetAll(ctx, stateKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to patch trivia state: %w", err)
	}

	state, err := parseState(all.Val())
	if err != nil {
		return nil, err
	}

	r.publish(ctx, notify.TableTriviaGameState, notify.OpUpdate, "1")

	return state, nil
}

// ClaimHost atomically claims the host role
func (r *redisRepository) ClaimHost(ctx context.Context, input *ClaimHostInput) (*models.TriviaGameState, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	host, err := claimHostScript.Run(ctx, r.client, []string{stateKey}, input.ParticipantID).Text()
	if err != nil {
		return nil, fmt.Errorf("failed to claim host: %w", err)
	}

	if host != input.ParticipantID {
		return nil, ErrHostAlreadyClaimed
	}

	r.publish(ctx, notify.TableTriviaGameState, notify.OpUpdate, "1")

	return r.GetState(ctx, &GetStateInput{})
}

// InsertSubmission stores the submission unless one already exists for the
// same (user, question). The store decides by insert order, not timestamps.
func (r *redisRepository) InsertSubmission(ctx context.Context, input *InsertSubmissionInput) (*models.TriviaSubmission, error) {
	if input == nil || input.Submission == nil {
		return nil, errors.New("input and submission cannot be nil")
	}

	submission := *input.Submission
	if submission.UserID == "" || submission.QuestionID == 0 {
		return nil, errors.New("user ID and question ID cannot be empty")
	}

	field := submissionField(submission.UserID, submission.QuestionID)

	exists, err := r.client.HExists(ctx, submissionsKey, field).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check submission: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	seq, err := r.client.Incr(ctx, submissionSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate submission sequence: %w", err)
	}
	submission.Seq = seq
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = r.clock.Now().UTC()
	}

	submissionJSON, err := json.Marshal(&submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	inserted, err := r.client.HSetNX(ctx, submissionsKey, field, submissionJSON).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}
	if !inserted {
		return nil, ErrDuplicateSubmission
	}

	r.publish(ctx, notify.TableTriviaSubmissions, notify.OpInsert, field)

	return &submission, nil
}

// GetSubmission retrieves one user's submission for one question
func (r *redisRepository) GetSubmission(ctx context.Context, input *GetSubmissionInput) (*models.TriviaSubmission, error) {
	if input == nil || input.UserID == "" || input.QuestionID == 0 {
		return nil, errors.New("input, user ID and question ID cannot be empty")
	}

	submissionJSON, err := r.client.HGet(ctx, submissionsKey, submissionField(input.UserID, input.QuestionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var submission models.TriviaSubmission
	if err := json.Unmarshal([]byte(submissionJSON), &submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	return &submission, nil
}

// ListSubmissions retrieves submissions in insert order
func (r *redisRepository) ListSubmissions(ctx context.Context, input *ListSubmissionsInput) (*ListSubmissionsOutput, error) {
	raw, err := r.client.HGetAll(ctx, submissionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	submissions := make([]*models.TriviaSubmission, 0, len(raw))
	for field, submissionJSON := range raw {
		var submission models.TriviaSubmission
		if err := json.Unmarshal([]byte(submissionJSON), &submission); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission %s: %w", field, err)
		}

		if input != nil {
			if input.UserID != "" && submission.UserID != input.UserID {
				continue
			}
			if input.QuestionID != 0 && submission.QuestionID != input.QuestionID {
				continue
			}
		}
		submissions = append(submissions, &submission)
	}

	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].Seq < submissions[j].Seq
	})

	return &ListSubmissionsOutput{
		Submissions: submissions,
	}, nil
}

func submissionField(userID string, questionID int64) string {
	return userID + ":" + strconv.FormatInt(questionID, 10)
}

func parseState(fields map[string]string) (*models.TriviaGameState, error) {
	state := &models.TriviaGameState{
		ID:     models.TriviaStateID,
		Status: models.TriviaStatus(fields[fieldStatus]),
		HostID: fields[fieldHostID],
	}
	if state.Status == "" {
		state.Status = models.TriviaStatusLobby
	}

	var err error
	if state.CurrentQuestionID, err = redisutil.ParseInt64(fields[fieldCurrentQuestionID]); err != nil {
		return nil, fmt.Errorf("failed to parse current question: %w", err)
	}
	if state.TimerEndsAt, err = redisutil.ParseTime(fields[fieldTimerEndsAt]); err != nil {
		return nil, fmt.Errorf("failed to parse timer: %w", err)
	}
	if state.Version, err = redisutil.ParseInt64(fields[fieldVersion]); err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}

	return state, nil
}
