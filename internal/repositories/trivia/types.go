package trivia

import "github.com/KirkDiggler/holidayhub/internal/models"

// SaveQuestionsInput contains the full question set
type SaveQuestionsInput struct {
	Questions []*models.TriviaQuestion
}

// ListQuestionsInput contains parameters for listing questions
type ListQuestionsInput struct {
}

// ListQuestionsOutput contains questions in ID order
type ListQuestionsOutput struct {
	Questions []*models.TriviaQuestion
}

// GetStateInput contains parameters for reading the game state
type GetStateInput struct {
}

// EnsureStateInput contains parameters for creating the default game state
type EnsureStateInput struct {
}

// PatchStateInput contains the targeted update to apply
type PatchStateInput struct {
	Patch *models.TriviaStatePatch
}

// ClaimHostInput identifies the participant claiming the host role
type ClaimHostInput struct {
	ParticipantID string
}

// InsertSubmissionInput contains the submission to insert
type InsertSubmissionInput struct {
	Submission *models.TriviaSubmission
}

// GetSubmissionInput identifies a single submission
type GetSubmissionInput struct {
	UserID     string
	QuestionID int64
}

// ListSubmissionsInput filters submissions; zero values match everything
type ListSubmissionsInput struct {
	UserID     string
	QuestionID int64
}

// ListSubmissionsOutput contains submissions in insert order
type ListSubmissionsOutput struct {
	Submissions []*models.TriviaSubmission
}
