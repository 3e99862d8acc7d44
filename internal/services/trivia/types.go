package trivia

import (
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	triviaRepo "github.com/KirkDiggler/holidayhub/internal/repositories/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
)

// DefaultRoundDuration is how long a question stays on the clock
const DefaultRoundDuration = 20 * time.Second

// Config holds the dependencies of the trivia service
type Config struct {
	// RoundDuration is used when an action does not give its own
	RoundDuration time.Duration

	// Repository dependencies
	TriviaRepo      triviaRepo.Repository
	ParticipantRepo participantRepo.Repository

	// Clock defaults to the system clock
	Clock clock.Clock
}

// StateOutput contains the game state after an action
type StateOutput struct {
	State *models.TriviaGameState
}

// ClaimHostInput contains parameters for claiming the host role
type ClaimHostInput struct {
	ParticipantID string
}

// ForceResetInput contains parameters for a force reset
type ForceResetInput struct {
	ParticipantID string
}

// StartGameInput contains parameters for starting the game
type StartGameInput struct {
	ParticipantID string

	// Duration overrides the configured round duration when set
	Duration time.Duration
}

// RevealInput contains parameters for revealing the answer
type RevealInput struct {
	ParticipantID string
}

// NextQuestionInput contains parameters for advancing
type NextQuestionInput struct {
	ParticipantID string
	Duration      time.Duration
}

// StartBonusInput contains parameters for opening the bonus round
type StartBonusInput struct {
	ParticipantID string
	Duration      time.Duration
}

// ResetGameInput contains parameters for resetting to the lobby
type ResetGameInput struct {
	ParticipantID string
}

// SubmitAnswerInput contains the answer and the view it was given against
type SubmitAnswerInput struct {
	ParticipantID string
	Answer        string

	// View is the caller's current derived view; its question and deadline
	// are what the answer is scored against
	View *View
}

// SubmitAnswerOutput contains the stored submission
type SubmitAnswerOutput struct {
	Submission *models.TriviaSubmission
}

// ImportQuestionsInput contains the full question set
type ImportQuestionsInput struct {
	Questions []*models.TriviaQuestion
}

// Raw is every row the trivia view depends on
type Raw struct {
	State        *models.TriviaGameState
	Questions    []*models.TriviaQuestion
	Submissions  []*models.TriviaSubmission
	Participants []*models.Participant
}

// View is what one participant's screen shows, derived from Raw
type View struct {
	State  models.TriviaGameState
	IsHost bool

	CurrentQuestion *models.TriviaQuestion
	QuestionNumber  int
	QuestionCount   int

	// SecondsLeft is only counted while a question is active
	SecondsLeft int

	MySubmission *models.TriviaSubmission
	MyTotalScore int

	// AnswerStats is filled once the current answer is revealed
	AnswerStats []*scoring.AnswerCount

	// Leaderboard is the top five between questions and everyone at the end
	Leaderboard []*scoring.LeaderboardEntry
}
