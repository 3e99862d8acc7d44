package models

import (
	"time"
)

// TriviaStatus is the phase of the trivia game
type TriviaStatus string

const (
	// TriviaStatusLobby is waiting for the host to start
	TriviaStatusLobby TriviaStatus = "lobby"

	// TriviaStatusActive means a question is open for answers
	TriviaStatusActive TriviaStatus = "active"

	// TriviaStatusRevealed means the answer of the current question is shown
	TriviaStatusRevealed TriviaStatus = "revealed"

	// TriviaStatusBonusIntro is the interstitial before the bonus questions
	TriviaStatusBonusIntro TriviaStatus = "bonus_intro"

	// TriviaStatusEnded means there are no more questions
	TriviaStatusEnded TriviaStatus = "ended"
)

// IsLobby returns true if the game is waiting to start
func (s TriviaStatus) IsLobby() bool {
	return s == TriviaStatusLobby || s == ""
}

// IsActive returns true if a question is open
func (s TriviaStatus) IsActive() bool {
	return s == TriviaStatusActive
}

// IsRevealed returns true if the current answer is shown
func (s TriviaStatus) IsRevealed() bool {
	return s == TriviaStatusRevealed
}

// IsBonusIntro returns true during the bonus interstitial
func (s TriviaStatus) IsBonusIntro() bool {
	return s == TriviaStatusBonusIntro
}

// IsEnded returns true once the game is over
func (s TriviaStatus) IsEnded() bool {
	return s == TriviaStatusEnded
}

// TriviaStateID is the id of the one and only trivia game state row
const TriviaStateID = 1

// TriviaQuestion is immutable and loaded once per game
type TriviaQuestion struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`

	// Options is nil for free-text questions
	Options []string `json:"options"`

	CorrectAnswer string `json:"correct_answer"`
	IsBonus       bool   `json:"is_bonus"`
}

// TriviaGameState is the singleton every client renders from
type TriviaGameState struct {
	ID                int64        `json:"id"`
	Status            TriviaStatus `json:"status"`
	CurrentQuestionID int64        `json:"current_question_id"`
	TimerEndsAt       *time.Time   `json:"timer_ends_at"`
	HostID            string       `json:"host_id"`

	// Version is bumped by the store on every patch
	Version int64 `json:"version"`
}

// HasHost reports whether someone has claimed the host role
func (s *TriviaGameState) HasHost() bool {
	return s.HostID != ""
}

// TriviaSubmission is a participant's one answer to one question
type TriviaSubmission struct {
	UserID      string    `json:"user_id"`
	QuestionID  int64     `json:"question_id"`
	Answer      string    `json:"answer"`
	IsCorrect   bool      `json:"is_correct"`
	Points      int       `json:"points"`
	SubmittedAt time.Time `json:"submitted_at"`

	// Seq is the store insert order
	Seq int64 `json:"seq"`
}

// TriviaStatePatch is a targeted update of the trivia state. Nil fields are
// left untouched so concurrent host actions on other fields are not clobbered.
type TriviaStatePatch struct {
	Status            *TriviaStatus
	CurrentQuestionID *int64
	TimerEndsAt       *time.Time
	ClearTimer        bool
	HostID            *string
}

// IsEmpty reports whether the patch changes nothing
func (p *TriviaStatePatch) IsEmpty() bool {
	return p == nil || (p.Status == nil && p.CurrentQuestionID == nil && p.TimerEndsAt == nil && !p.ClearTimer && p.HostID == nil)
}

// Apply returns a copy of the state with the patch applied
func (p *TriviaStatePatch) Apply(state TriviaGameState) TriviaGameState {
	if p == nil {
		return state
	}
	if p.Status != nil {
		state.Status = *p.Status
	}
	if p.CurrentQuestionID != nil {
		state.CurrentQuestionID = *p.CurrentQuestionID
	}
	if p.ClearTimer {
		state.TimerEndsAt = nil
	}
	if p.TimerEndsAt != nil {
		t := *p.TimerEndsAt
		state.TimerEndsAt = &t
	}
	if p.HostID != nil {
		state.HostID = *p.HostID
	}
	return state
}
