package trivia

// TriviaError is a custom error type for trivia errors
type TriviaError string

// Error implements the error interface
func (e TriviaError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotHost            TriviaError = "only the host can do that"
	ErrHostTaken          TriviaError = "another participant is already the host"
	ErrInvalidTransition  TriviaError = "that action is not allowed in the current phase"
	ErrAlreadyAnswered    TriviaError = "already answered this question"
	ErrNoQuestions        TriviaError = "no trivia questions loaded"
	ErrQuestionNotFound   TriviaError = "current question not found"
	ErrNoActiveQuestion   TriviaError = "there is no question to answer"
	ErrMissingAnswer      TriviaError = "answer cannot be empty"
	ErrMissingParticipant TriviaError = "participant ID cannot be empty"
	ErrInvalidQuestion    TriviaError = "questions need an ID, text and a correct answer"
	ErrDuplicateQuestion  TriviaError = "two questions share the same ID"
	ErrNilConfig          TriviaError = "config cannot be nil"
	ErrNilTriviaRepo      TriviaError = "trivia repository cannot be nil"
	ErrNilParticipantRepo TriviaError = "participant repository cannot be nil"
)
