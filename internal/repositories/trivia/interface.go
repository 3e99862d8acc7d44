package trivia

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/holidayhub/internal/repositories/trivia Repository

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// Repository defines the interface for trivia questions, game state and submissions
type Repository interface {
	// SaveQuestions replaces the question set
	SaveQuestions(ctx context.Context, input *SaveQuestionsInput) error

	// ListQuestions retrieves questions in ID order
	ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error)

	// GetState retrieves the singleton game state
	GetState(ctx context.Context, input *GetStateInput) (*models.TriviaGameState, error)

	// EnsureState creates the singleton in the lobby if it is missing and returns it
	EnsureState(ctx context.Context, input *EnsureStateInput) (*models.TriviaGameState, error)

	// PatchState applies a targeted field update to the game state
	PatchState(ctx context.Context, input *PatchStateInput) (*models.TriviaGameState, error)

	// ClaimHost sets host_id if it is unset or already the claimant
	ClaimHost(ctx context.Context, input *ClaimHostInput) (*models.TriviaGameState, error)

	// InsertSubmission stores a submission; the first insert per (user, question) wins
	InsertSubmission(ctx context.Context, input *InsertSubmissionInput) (*models.TriviaSubmission, error)

	// GetSubmission retrieves one user's submission for one question
	GetSubmission(ctx context.Context, input *GetSubmissionInput) (*models.TriviaSubmission, error)

	// ListSubmissions retrieves submissions in insert order
	ListSubmissions(ctx context.Context, input *ListSubmissionsInput) (*ListSubmissionsOutput, error)
}
