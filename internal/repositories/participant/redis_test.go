package participant

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	clock   *clockwork.FakeClock
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.testNow = time.Date(2025, 12, 20, 17, 0, 0, 0, time.UTC)
	s.clock = clockwork.NewFakeClockAt(s.testNow)

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		Clock:         s.clock,
		UUIDGenerator: &uuid.Sequence{Prefix: "participant"},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetParticipant() {
	ctx := context.Background()

	output, err := s.repo.CreateParticipant(ctx, &CreateParticipantInput{
		DisplayName: "Cheese Wizard",
		RealName:    "Pat",
	})
	s.Require().NoError(err)
	s.Equal("participant-1", output.Participant.ID)
	s.True(output.Participant.CreatedAt.Equal(s.testNow))

	participant, err := s.repo.GetParticipant(ctx, &GetParticipantInput{ParticipantID: "participant-1"})
	s.Require().NoError(err)
	s.Equal("Cheese Wizard", participant.DisplayName)
	s.Equal("Pat", participant.RealName)
}

func (s *RedisRepositoryTestSuite) TestCreateParticipantAllowsDuplicateNames() {
	ctx := context.Background()

	first, err := s.repo.CreateParticipant(ctx, &CreateParticipantInput{DisplayName: "Sam"})
	s.Require().NoError(err)
	second, err := s.repo.CreateParticipant(ctx, &CreateParticipantInput{DisplayName: "Sam"})
	s.Require().NoError(err)

	s.NotEqual(first.Participant.ID, second.Participant.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateParticipantRequiresName() {
	_, err := s.repo.CreateParticipant(context.Background(), &CreateParticipantInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{ParticipantID: "missing"})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsInJoinOrder() {
	ctx := context.Background()

	for _, name := range []string{"Ada", "Bo", "Cy"} {
		_, err := s.repo.CreateParticipant(ctx, &CreateParticipantInput{DisplayName: name})
		s.Require().NoError(err)
		s.clock.Advance(time.Second)
	}

	output, err := s.repo.ListParticipants(ctx, &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 3)
	s.Equal("Ada", output.Participants[0].DisplayName)
	s.Equal("Bo", output.Participants[1].DisplayName)
	s.Equal("Cy", output.Participants[2].DisplayName)
}
