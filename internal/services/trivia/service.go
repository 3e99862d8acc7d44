package trivia

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	triviaRepo "github.com/KirkDiggler/holidayhub/internal/repositories/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	roundDuration   time.Duration
	triviaRepo      triviaRepo.Repository
	participantRepo participantRepo.Repository
	clock           clock.Clock
}

// New creates a new trivia service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TriviaRepo == nil {
		return nil, ErrNilTriviaRepo
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	svc := &service{
		roundDuration:   cfg.RoundDuration,
		triviaRepo:      cfg.TriviaRepo,
		participantRepo: cfg.ParticipantRepo,
		clock:           cfg.Clock,
	}
	if svc.roundDuration <= 0 {
		svc.roundDuration = DefaultRoundDuration
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}

	return svc, nil
}

// ClaimHost makes the caller the host if nobody else is
func (s *service) ClaimHost(ctx context.Context, input *ClaimHostInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	if _, err := s.triviaRepo.EnsureState(ctx, &triviaRepo.EnsureStateInput{}); err != nil {
		return nil, err
	}

	state, err := s.triviaRepo.ClaimHost(ctx, &triviaRepo.ClaimHostInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, triviaRepo.ErrHostAlreadyClaimed) {
			return nil, ErrHostTaken
		}
		return nil, err
	}

	log.Info().Str("participant_id", input.ParticipantID).Msg("trivia host claimed")

	return &StateOutput{State: state}, nil
}

// ForceReset is the recovery path from an abandoned host, so it does not
// check who is calling
func (s *service) ForceReset(ctx context.Context, input *ForceResetInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, false, &Event{Type: EventForceReset})
}

// StartGame opens the first question
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, true, &Event{
		Type:     EventStartGame,
		Duration: s.duration(input.Duration),
	})
}

// Reveal closes the current question
func (s *service) Reveal(ctx context.Context, input *RevealInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, true, &Event{Type: EventReveal})
}

// NextQuestion moves on from a revealed question
func (s *service) NextQuestion(ctx context.Context, input *NextQuestionInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, true, &Event{
		Type:     EventNext,
		Duration: s.duration(input.Duration),
	})
}

// StartBonus opens the bonus round
func (s *service) StartBonus(ctx context.Context, input *StartBonusInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, true, &Event{
		Type:     EventStartBonus,
		Duration: s.duration(input.Duration),
	})
}

// ResetGame returns to the lobby. Submissions are kept.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*StateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	return s.apply(ctx, input.ParticipantID, true, &Event{Type: EventReset})
}

func (s *service) duration(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	return s.roundDuration
}

// apply reads the latest state, runs the transition and writes only the
// fields the transition changed
func (s *service) apply(ctx context.Context, participantID string, hostOnly bool, event *Event) (*StateOutput, error) {
	state, err := s.triviaRepo.EnsureState(ctx, &triviaRepo.EnsureStateInput{})
	if err != nil {
		return nil, err
	}

	if hostOnly && state.HostID != participantID {
		return nil, ErrNotHost
	}

	questions, err := s.triviaRepo.ListQuestions(ctx, &triviaRepo.ListQuestionsInput{})
	if err != nil {
		return nil, err
	}

	event.Now = s.clock.Now()
	patch, err := Transition(state, questions.Questions, event)
	if err != nil {
		return nil, err
	}

	updated, err := s.triviaRepo.PatchState(ctx, &triviaRepo.PatchStateInput{Patch: patch})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("participant_id", participantID).
		Str("event", string(event.Type)).
		Str("from", string(state.Status)).
		Str("to", string(updated.Status)).
		Int64("question_id", updated.CurrentQuestionID).
		Msg("trivia transition")

	return &StateOutput{State: updated}, nil
}

// SubmitAnswer scores the answer against the caller's view and inserts it.
// The phase is not checked: an answer that reaches the store before the host
// moves on counts, and the store's uniqueness decides duplicates.
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return nil, ErrMissingAnswer
	}

	if input.View == nil || input.View.CurrentQuestion == nil {
		return nil, ErrNoActiveQuestion
	}

	if input.View.MySubmission != nil {
		return nil, ErrAlreadyAnswered
	}

	question := input.View.CurrentQuestion
	now := s.clock.Now().UTC()
	isCorrect := scoring.IsCorrectAnswer(answer, question.CorrectAnswer)

	submission, err := s.triviaRepo.InsertSubmission(ctx, &triviaRepo.InsertSubmissionInput{
		Submission: &models.TriviaSubmission{
			UserID:      input.ParticipantID,
			QuestionID:  question.ID,
			Answer:      answer,
			IsCorrect:   isCorrect,
			Points:      scoring.TriviaPoints(isCorrect, input.View.State.TimerEndsAt, now),
			SubmittedAt: now,
		},
	})
	if err != nil {
		if errors.Is(err, triviaRepo.ErrDuplicateSubmission) {
			return nil, ErrAlreadyAnswered
		}
		return nil, err
	}

	return &SubmitAnswerOutput{Submission: submission}, nil
}

// ImportQuestions validates and replaces the question set
func (s *service) ImportQuestions(ctx context.Context, input *ImportQuestionsInput) error {
	if input == nil || len(input.Questions) == 0 {
		return ErrNoQuestions
	}

	seen := make(map[int64]bool, len(input.Questions))
	for _, question := range input.Questions {
		if question == nil || question.ID <= 0 || strings.TrimSpace(question.Text) == "" || strings.TrimSpace(question.CorrectAnswer) == "" {
			return ErrInvalidQuestion
		}
		if seen[question.ID] {
			return ErrDuplicateQuestion
		}
		seen[question.ID] = true
	}

	if err := s.triviaRepo.SaveQuestions(ctx, &triviaRepo.SaveQuestionsInput{
		Questions: input.Questions,
	}); err != nil {
		return err
	}

	log.Info().Int("count", len(input.Questions)).Msg("trivia questions imported")

	return nil
}

// Load fetches every raw row the view is derived from. A missing state row
// is created in the lobby.
func (s *service) Load(ctx context.Context) (*Raw, error) {
	state, err := s.triviaRepo.EnsureState(ctx, &triviaRepo.EnsureStateInput{})
	if err != nil {
		return nil, err
	}

	questions, err := s.triviaRepo.ListQuestions(ctx, &triviaRepo.ListQuestionsInput{})
	if err != nil {
		return nil, err
	}

	submissions, err := s.triviaRepo.ListSubmissions(ctx, &triviaRepo.ListSubmissionsInput{})
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	return &Raw{
		State:        state,
		Questions:    questions.Questions,
		Submissions:  submissions.Submissions,
		Participants: participants.Participants,
	}, nil
}
