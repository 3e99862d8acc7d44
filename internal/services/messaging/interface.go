package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinMessage returns a welcome for a participant who just joined
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetTurnMessage returns the white elephant line for a participant's status
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetAnswerResultMessage returns the line shown after a trivia reveal
	GetAnswerResultMessage(ctx context.Context, input *GetAnswerResultMessageInput) (*GetAnswerResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
