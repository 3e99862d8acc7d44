package trivia

import (
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/stretchr/testify/suite"
)

type TransitionTestSuite struct {
	suite.Suite
	questions []*models.TriviaQuestion
	now       time.Time
}

func (s *TransitionTestSuite) SetupTest() {
	// Deliberately out of order
	s.questions = []*models.TriviaQuestion{
		{ID: 2, Text: "Two", CorrectAnswer: "b"},
		{ID: 1, Text: "One", CorrectAnswer: "a"},
		{ID: 3, Text: "Bonus one", CorrectAnswer: "c", IsBonus: true},
		{ID: 4, Text: "Bonus two", CorrectAnswer: "d", IsBonus: true},
	}
	s.now = time.Date(2025, 12, 20, 19, 0, 0, 0, time.UTC)
}

func TestTransitionTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionTestSuite))
}

func (s *TransitionTestSuite) event(eventType EventType) *Event {
	return &Event{Type: eventType, Now: s.now, Duration: 20 * time.Second}
}

func (s *TransitionTestSuite) state(status models.TriviaStatus, questionID int64) *models.TriviaGameState {
	return &models.TriviaGameState{ID: 1, Status: status, CurrentQuestionID: questionID, HostID: "host"}
}

func (s *TransitionTestSuite) TestStartGameOpensFirstQuestion() {
	patch, err := Transition(s.state(models.TriviaStatusLobby, 0), s.questions, s.event(EventStartGame))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusActive, *patch.Status)
	s.Equal(int64(1), *patch.CurrentQuestionID)
	s.True(s.now.Add(20 * time.Second).Equal(*patch.TimerEndsAt))
	s.Nil(patch.HostID)
}

func (s *TransitionTestSuite) TestStartGameWithoutQuestions() {
	_, err := Transition(s.state(models.TriviaStatusLobby, 0), nil, s.event(EventStartGame))
	s.ErrorIs(err, ErrNoQuestions)
}

func (s *TransitionTestSuite) TestRevealOnlyChangesStatus() {
	patch, err := Transition(s.state(models.TriviaStatusActive, 1), s.questions, s.event(EventReveal))
	s.Require().NoError(err)

	s.Equal(&models.TriviaStatePatch{Status: status(models.TriviaStatusRevealed)}, patch)
}

func (s *TransitionTestSuite) TestNextOpensFollowingQuestion() {
	patch, err := Transition(s.state(models.TriviaStatusRevealed, 1), s.questions, s.event(EventNext))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusActive, *patch.Status)
	s.Equal(int64(2), *patch.CurrentQuestionID)
	s.NotNil(patch.TimerEndsAt)
}

func (s *TransitionTestSuite) TestNextIntoBonusGoesThroughIntro() {
	patch, err := Transition(s.state(models.TriviaStatusRevealed, 2), s.questions, s.event(EventNext))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusBonusIntro, *patch.Status)
	s.Nil(patch.CurrentQuestionID)
	s.True(patch.ClearTimer)
}

func (s *TransitionTestSuite) TestStartBonusOpensFirstBonusQuestion() {
	patch, err := Transition(s.state(models.TriviaStatusBonusIntro, 2), s.questions, s.event(EventStartBonus))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusActive, *patch.Status)
	s.Equal(int64(3), *patch.CurrentQuestionID)
}

func (s *TransitionTestSuite) TestNextBetweenBonusQuestionsSkipsIntro() {
	patch, err := Transition(s.state(models.TriviaStatusRevealed, 3), s.questions, s.event(EventNext))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusActive, *patch.Status)
	s.Equal(int64(4), *patch.CurrentQuestionID)
}

func (s *TransitionTestSuite) TestNextAfterLastQuestionEnds() {
	patch, err := Transition(s.state(models.TriviaStatusRevealed, 4), s.questions, s.event(EventNext))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusEnded, *patch.Status)
	s.True(patch.ClearTimer)
}

func (s *TransitionTestSuite) TestStartBonusWithNothingLeftEnds() {
	questions := []*models.TriviaQuestion{{ID: 1, CorrectAnswer: "a"}}

	patch, err := Transition(s.state(models.TriviaStatusBonusIntro, 1), questions, s.event(EventStartBonus))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusEnded, *patch.Status)
}

func (s *TransitionTestSuite) TestNextWithUnknownCurrentQuestion() {
	_, err := Transition(s.state(models.TriviaStatusRevealed, 42), s.questions, s.event(EventNext))
	s.ErrorIs(err, ErrQuestionNotFound)
}

func (s *TransitionTestSuite) TestResetKeepsHost() {
	patch, err := Transition(s.state(models.TriviaStatusEnded, 4), s.questions, s.event(EventReset))
	s.Require().NoError(err)

	s.Equal(models.TriviaStatusLobby, *patch.Status)
	s.Equal(int64(0), *patch.CurrentQuestionID)
	s.True(patch.ClearTimer)
	s.Nil(patch.HostID)
}

func (s *TransitionTestSuite) TestResetOnlyFromEnded() {
	for _, from := range []models.TriviaStatus{
		models.TriviaStatusLobby,
		models.TriviaStatusActive,
		models.TriviaStatusRevealed,
		models.TriviaStatusBonusIntro,
	} {
		patch, err := Transition(s.state(from, 1), s.questions, s.event(EventReset))
		s.ErrorIs(err, ErrInvalidTransition, "reset from %s", from)
		s.Nil(patch)
	}
}

func (s *TransitionTestSuite) TestForceResetClearsHost() {
	for _, from := range []models.TriviaStatus{
		models.TriviaStatusLobby,
		models.TriviaStatusActive,
		models.TriviaStatusRevealed,
		models.TriviaStatusBonusIntro,
		models.TriviaStatusEnded,
	} {
		patch, err := Transition(s.state(from, 1), s.questions, s.event(EventForceReset))
		s.Require().NoError(err)
		s.Equal(models.TriviaStatusLobby, *patch.Status)
		s.Require().NotNil(patch.HostID)
		s.Equal("", *patch.HostID)
	}
}

func (s *TransitionTestSuite) TestInvalidPairsAreRejected() {
	invalid := []struct {
		from  models.TriviaStatus
		event EventType
	}{
		{models.TriviaStatusActive, EventStartGame},
		{models.TriviaStatusRevealed, EventStartGame},
		{models.TriviaStatusEnded, EventStartGame},
		{models.TriviaStatusLobby, EventReveal},
		{models.TriviaStatusRevealed, EventReveal},
		{models.TriviaStatusLobby, EventNext},
		{models.TriviaStatusActive, EventNext},
		{models.TriviaStatusBonusIntro, EventNext},
		{models.TriviaStatusEnded, EventNext},
		{models.TriviaStatusRevealed, EventStartBonus},
		{models.TriviaStatusActive, EventStartBonus},
		{models.TriviaStatusActive, EventType("skip")},
	}

	for _, tc := range invalid {
		_, err := Transition(s.state(tc.from, 1), s.questions, s.event(tc.event))
		s.ErrorIs(err, ErrInvalidTransition, "%s from %s", tc.event, tc.from)
	}
}

func (s *TransitionTestSuite) TestTimerExpiryDoesNotChangeAnything() {
	// A long-expired active round can still be revealed, not skipped
	state := s.state(models.TriviaStatusActive, 1)
	expired := s.now.Add(-time.Hour)
	state.TimerEndsAt = &expired

	patch, err := Transition(state, s.questions, s.event(EventReveal))
	s.Require().NoError(err)
	s.Equal(models.TriviaStatusRevealed, *patch.Status)
}
