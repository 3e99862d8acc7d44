package trivia

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/KirkDiggler/holidayhub/internal/models"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	triviaRepo "github.com/KirkDiggler/holidayhub/internal/repositories/trivia"
	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type TriviaServiceTestSuite struct {
	suite.Suite
	mr              *miniredis.Miniredis
	client          *redis.Client
	clock           *clockwork.FakeClock
	triviaRepo      triviaRepo.Repository
	participantRepo participantRepo.Repository
	service         Service
	ctx             context.Context

	hostID  string
	guestID string
}

func (s *TriviaServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 12, 20, 19, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.triviaRepo, err = triviaRepo.NewRedis(&triviaRepo.Config{
		RedisClient: s.client,
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	s.participantRepo, err = participantRepo.NewRedis(&participantRepo.Config{
		RedisClient:   s.client,
		Clock:         s.clock,
		UUIDGenerator: &uuid.Sequence{Prefix: "participant"},
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		TriviaRepo:      s.triviaRepo,
		ParticipantRepo: s.participantRepo,
		Clock:           s.clock,
	})
	s.Require().NoError(err)
	s.service = svc

	host, err := s.participantRepo.CreateParticipant(s.ctx, &participantRepo.CreateParticipantInput{DisplayName: "Host"})
	s.Require().NoError(err)
	s.hostID = host.Participant.ID

	guest, err := s.participantRepo.CreateParticipant(s.ctx, &participantRepo.CreateParticipantInput{DisplayName: "Guest"})
	s.Require().NoError(err)
	s.guestID = guest.Participant.ID

	s.Require().NoError(s.service.ImportQuestions(s.ctx, &ImportQuestionsInput{
		Questions: []*models.TriviaQuestion{
			{ID: 1, Text: "Which reindeer has a red nose?", Options: []string{"Rudolph", "Comet"}, CorrectAnswer: "Rudolph"},
			{ID: 2, Text: "How many ghosts visit Scrooge?", CorrectAnswer: "4"},
			{ID: 3, Text: "Bonus: year of the first Christmas card?", CorrectAnswer: "1843", IsBonus: true},
		},
	}))
}

func (s *TriviaServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestTriviaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TriviaServiceTestSuite))
}

func (s *TriviaServiceTestSuite) view(viewerID string) *View {
	raw, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	return DeriveView(raw, viewerID, s.clock.Now())
}

func (s *TriviaServiceTestSuite) claimAndStart() {
	_, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	_, err = s.service.StartGame(s.ctx, &StartGameInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
}

func (s *TriviaServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{ParticipantRepo: s.participantRepo})
	s.ErrorIs(err, ErrNilTriviaRepo)

	_, err = New(&Config{TriviaRepo: s.triviaRepo})
	s.ErrorIs(err, ErrNilParticipantRepo)
}

func (s *TriviaServiceTestSuite) TestLoadCreatesLobbyState() {
	view := s.view(s.guestID)

	s.Equal(models.TriviaStatusLobby, view.State.Status)
	s.Equal(3, view.QuestionCount)
	s.Nil(view.CurrentQuestion)
	s.False(view.IsHost)
}

func (s *TriviaServiceTestSuite) TestSecondHostClaimIsRejected() {
	_, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.hostID})
	s.Require().NoError(err)

	_, err = s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.guestID})
	s.ErrorIs(err, ErrHostTaken)

	s.Equal(s.hostID, s.view(s.guestID).State.HostID)
}

func (s *TriviaServiceTestSuite) TestConcurrentHostClaimsHaveOneWinner() {
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []string{s.hostID, s.guestID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, results[i] = s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: id})
		}(i, id)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			s.ErrorIs(err, ErrHostTaken)
		}
	}
	s.Equal(1, successes)
}

func (s *TriviaServiceTestSuite) TestForceResetAllowsReclaim() {
	s.claimAndStart()

	output, err := s.service.ForceReset(s.ctx, &ForceResetInput{ParticipantID: s.guestID})
	s.Require().NoError(err)
	s.Equal(models.TriviaStatusLobby, output.State.Status)
	s.False(output.State.HasHost())

	_, err = s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.guestID})
	s.NoError(err)
}

func (s *TriviaServiceTestSuite) TestHostActionsRequireHost() {
	s.claimAndStart()

	_, err := s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.guestID})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.service.ResetGame(s.ctx, &ResetGameInput{ParticipantID: s.guestID})
	s.ErrorIs(err, ErrNotHost)
}

func (s *TriviaServiceTestSuite) TestStartGameUsesRoundDuration() {
	s.claimAndStart()

	view := s.view(s.guestID)
	s.Equal(models.TriviaStatusActive, view.State.Status)
	s.Equal(int64(1), view.CurrentQuestion.ID)
	s.Equal(1, view.QuestionNumber)
	s.Equal(20, view.SecondsLeft)

	s.clock.Advance(25 * time.Second)
	view = s.view(s.guestID)
	s.Equal(0, view.SecondsLeft)
	s.Equal(models.TriviaStatusActive, view.State.Status)
}

func (s *TriviaServiceTestSuite) TestSubmitAnswerScoresAgainstDeadline() {
	s.claimAndStart()
	s.clock.Advance(10 * time.Second)

	output, err := s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{
		ParticipantID: s.guestID,
		Answer:        " rudolph ",
		View:          s.view(s.guestID),
	})
	s.Require().NoError(err)
	s.True(output.Submission.IsCorrect)
	s.Equal(1100, output.Submission.Points)
	s.Equal("rudolph", output.Submission.Answer)

	view := s.view(s.guestID)
	s.Require().NotNil(view.MySubmission)
	s.Equal(1100, view.MyTotalScore)
}

func (s *TriviaServiceTestSuite) TestSecondSubmissionIsRejected() {
	s.claimAndStart()
	staleView := s.view(s.guestID)

	_, err := s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "Rudolph", View: staleView})
	s.Require().NoError(err)

	// The local view already knows about the answer
	_, err = s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "Comet", View: s.view(s.guestID)})
	s.ErrorIs(err, ErrAlreadyAnswered)

	// A stale view reaches the store, which rejects it
	_, err = s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "Comet", View: staleView})
	s.ErrorIs(err, ErrAlreadyAnswered)

	submissions, err := s.triviaRepo.ListSubmissions(s.ctx, &triviaRepo.ListSubmissionsInput{UserID: s.guestID})
	s.Require().NoError(err)
	s.Require().Len(submissions.Submissions, 1)
	s.Equal("Rudolph", submissions.Submissions[0].Answer)
	s.Equal(1200, submissions.Submissions[0].Points)
}

func (s *TriviaServiceTestSuite) TestLateSubmissionStillCounts() {
	s.claimAndStart()
	view := s.view(s.guestID)

	_, err := s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)

	output, err := s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "Rudolph", View: view})
	s.Require().NoError(err)
	s.Equal(1000, output.Submission.Points)
}

func (s *TriviaServiceTestSuite) TestSubmitAnswerValidation() {
	_, err := s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "  ", View: s.view(s.guestID)})
	s.ErrorIs(err, ErrMissingAnswer)

	_, err = s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: s.guestID, Answer: "x", View: s.view(s.guestID)})
	s.ErrorIs(err, ErrNoActiveQuestion)

	_, err = s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{Answer: "x"})
	s.ErrorIs(err, ErrMissingParticipant)
}

func (s *TriviaServiceTestSuite) TestFullGameFlow() {
	s.claimAndStart()

	answer := func(id, text string) {
		_, err := s.service.SubmitAnswer(s.ctx, &SubmitAnswerInput{ParticipantID: id, Answer: text, View: s.view(id)})
		s.Require().NoError(err)
	}

	answer(s.guestID, "Rudolph")
	answer(s.hostID, "Comet")

	_, err := s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.hostID})
	s.Require().NoError(err)

	view := s.view(s.hostID)
	s.Equal(models.TriviaStatusRevealed, view.State.Status)
	s.True(view.IsHost)
	s.Require().Len(view.Leaderboard, 2)
	s.Equal("Guest", view.Leaderboard[0].DisplayName)
	s.Equal(1200, view.Leaderboard[0].Points)
	s.Require().Len(view.AnswerStats, 2)
	s.Equal(1, view.AnswerStats[0].Count)
	s.True(view.AnswerStats[0].IsCorrect)

	_, err = s.service.NextQuestion(s.ctx, &NextQuestionInput{ParticipantID: s.hostID, Duration: 45 * time.Second})
	s.Require().NoError(err)
	view = s.view(s.guestID)
	s.Equal(int64(2), view.CurrentQuestion.ID)
	s.Equal(45, view.SecondsLeft)
	s.Nil(view.MySubmission)

	_, err = s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.hostID})
	s.Require().NoError(err)

	_, err = s.service.NextQuestion(s.ctx, &NextQuestionInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	s.Equal(models.TriviaStatusBonusIntro, s.view(s.guestID).State.Status)

	_, err = s.service.StartBonus(s.ctx, &StartBonusInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	view = s.view(s.guestID)
	s.Equal(models.TriviaStatusActive, view.State.Status)
	s.Equal(int64(3), view.CurrentQuestion.ID)

	_, err = s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	_, err = s.service.NextQuestion(s.ctx, &NextQuestionInput{ParticipantID: s.hostID})
	s.Require().NoError(err)

	view = s.view(s.guestID)
	s.Equal(models.TriviaStatusEnded, view.State.Status)
	s.Len(view.Leaderboard, 2)

	// Reset keeps host and scores
	_, err = s.service.ResetGame(s.ctx, &ResetGameInput{ParticipantID: s.hostID})
	s.Require().NoError(err)
	view = s.view(s.guestID)
	s.Equal(models.TriviaStatusLobby, view.State.Status)
	s.Equal(s.hostID, view.State.HostID)
	s.Equal(1200, view.MyTotalScore)
}

func (s *TriviaServiceTestSuite) TestInvalidTransitionFromService() {
	_, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.hostID})
	s.Require().NoError(err)

	_, err = s.service.Reveal(s.ctx, &RevealInput{ParticipantID: s.hostID})
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *TriviaServiceTestSuite) TestImportQuestionsValidates() {
	err := s.service.ImportQuestions(s.ctx, &ImportQuestionsInput{
		Questions: []*models.TriviaQuestion{{ID: 1, Text: "No answer"}},
	})
	s.ErrorIs(err, ErrInvalidQuestion)

	err = s.service.ImportQuestions(s.ctx, &ImportQuestionsInput{})
	s.ErrorIs(err, ErrNoQuestions)
}

func (s *TriviaServiceTestSuite) TestImportQuestionsRejectsDuplicateIDs() {
	err := s.service.ImportQuestions(s.ctx, &ImportQuestionsInput{
		Questions: []*models.TriviaQuestion{
			{ID: 2, Text: "Explicit two", CorrectAnswer: "a"},
			{ID: 1, Text: "Defaulted one", CorrectAnswer: "b"},
			{ID: 2, Text: "Defaulted two", CorrectAnswer: "c"},
		},
	})
	s.ErrorIs(err, ErrDuplicateQuestion)

	stored, err := s.triviaRepo.ListQuestions(s.ctx, &triviaRepo.ListQuestionsInput{})
	s.Require().NoError(err)
	s.Require().Len(stored.Questions, 3)
	s.Equal("Which reindeer has a red nose?", stored.Questions[0].Text)
}
