package trivia

import (
	"sort"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// EventType is a host action on the trivia state
type EventType string

const (
	EventStartGame  EventType = "start_game"
	EventReveal     EventType = "reveal"
	EventNext       EventType = "next"
	EventStartBonus EventType = "start_bonus"
	EventReset      EventType = "reset"
	EventForceReset EventType = "force_reset"
)

// Event carries what a transition needs besides the current state
type Event struct {
	Type EventType

	// Now and Duration set the deadline of a question that opens
	Now      time.Time
	Duration time.Duration
}

// Transition returns the patch that moves state through event, or
// ErrInvalidTransition when the pair is not allowed. Questions may be in any
// order. Timer expiry is never an event: a round stays open until revealed.
func Transition(state *models.TriviaGameState, questions []*models.TriviaQuestion, event *Event) (*models.TriviaStatePatch, error) {
	switch event.Type {
	case EventStartGame:
		if !state.Status.IsLobby() {
			return nil, ErrInvalidTransition
		}
		ordered := sortQuestions(questions)
		if len(ordered) == 0 {
			return nil, ErrNoQuestions
		}
		return openQuestion(ordered[0], event), nil

	case EventReveal:
		if !state.Status.IsActive() {
			return nil, ErrInvalidTransition
		}
		return &models.TriviaStatePatch{Status: status(models.TriviaStatusRevealed)}, nil

	case EventNext:
		if !state.Status.IsRevealed() {
			return nil, ErrInvalidTransition
		}
		current, next, err := neighbours(state.CurrentQuestionID, questions)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return endGame(), nil
		}
		if next.IsBonus && !current.IsBonus {
			return &models.TriviaStatePatch{
				Status:     status(models.TriviaStatusBonusIntro),
				ClearTimer: true,
			}, nil
		}
		return openQuestion(next, event), nil

	case EventStartBonus:
		if !state.Status.IsBonusIntro() {
			return nil, ErrInvalidTransition
		}
		_, next, err := neighbours(state.CurrentQuestionID, questions)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return endGame(), nil
		}
		return openQuestion(next, event), nil

	case EventReset:
		if !state.Status.IsEnded() {
			return nil, ErrInvalidTransition
		}
		return lobby(), nil

	case EventForceReset:
		patch := lobby()
		noHost := ""
		patch.HostID = &noHost
		return patch, nil
	}

	return nil, ErrInvalidTransition
}

func status(s models.TriviaStatus) *models.TriviaStatus {
	return &s
}

func openQuestion(question *models.TriviaQuestion, event *Event) *models.TriviaStatePatch {
	id := question.ID
	endsAt := event.Now.Add(event.Duration).UTC()
	return &models.TriviaStatePatch{
		Status:            status(models.TriviaStatusActive),
		CurrentQuestionID: &id,
		TimerEndsAt:       &endsAt,
	}
}

func endGame() *models.TriviaStatePatch {
	return &models.TriviaStatePatch{
		Status:     status(models.TriviaStatusEnded),
		ClearTimer: true,
	}
}

func lobby() *models.TriviaStatePatch {
	var none int64
	return &models.TriviaStatePatch{
		Status:            status(models.TriviaStatusLobby),
		CurrentQuestionID: &none,
		ClearTimer:        true,
	}
}

func sortQuestions(questions []*models.TriviaQuestion) []*models.TriviaQuestion {
	ordered := make([]*models.TriviaQuestion, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// neighbours finds the current question and the one after it; next is nil
// when current is last
func neighbours(currentID int64, questions []*models.TriviaQuestion) (*models.TriviaQuestion, *models.TriviaQuestion, error) {
	ordered := sortQuestions(questions)
	for i, question := range ordered {
		if question.ID != currentID {
			continue
		}
		if i+1 < len(ordered) {
			return question, ordered[i+1], nil
		}
		return question, nil, nil
	}
	return nil, nil, ErrQuestionNotFound
}
