package trivia

import "context"

// Service defines the interface for trivia operations
type Service interface {
	// ClaimHost makes the caller the host if nobody else is
	ClaimHost(ctx context.Context, input *ClaimHostInput) (*StateOutput, error)

	// ForceReset returns to the lobby and clears the host. Anyone may call it.
	ForceReset(ctx context.Context, input *ForceResetInput) (*StateOutput, error)

	// StartGame opens the first question
	StartGame(ctx context.Context, input *StartGameInput) (*StateOutput, error)

	// Reveal closes the current question and shows the answer
	Reveal(ctx context.Context, input *RevealInput) (*StateOutput, error)

	// NextQuestion moves on from a revealed question
	NextQuestion(ctx context.Context, input *NextQuestionInput) (*StateOutput, error)

	// StartBonus opens the first bonus question after the bonus intro
	StartBonus(ctx context.Context, input *StartBonusInput) (*StateOutput, error)

	// ResetGame returns to the lobby keeping the host and all scores
	ResetGame(ctx context.Context, input *ResetGameInput) (*StateOutput, error)

	// SubmitAnswer scores and stores the caller's answer to the question in view
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// ImportQuestions replaces the question set
	ImportQuestions(ctx context.Context, input *ImportQuestionsInput) error

	// Load fetches every raw row the trivia view is derived from
	Load(ctx context.Context) (*Raw, error)
}
