package presence

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	notifyMocks "github.com/KirkDiggler/holidayhub/internal/notify/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisTrackerTestSuite struct {
	suite.Suite
	mr           *miniredis.Miniredis
	client       *redis.Client
	clock        *clockwork.FakeClock
	mockCtrl     *gomock.Controller
	mockNotifier *notifyMocks.MockPublisher
	tracker      Tracker
	ctx          context.Context
}

func (s *RedisTrackerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 12, 20, 19, 0, 0, 0, time.UTC))
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = notifyMocks.NewMockPublisher(s.mockCtrl)
	s.ctx = context.Background()

	tracker, err := NewRedis(&Config{
		RedisClient: s.client,
		Notifier:    s.mockNotifier,
		Clock:       s.clock,
		TTL:         10 * time.Second,
	})
	s.Require().NoError(err)
	s.tracker = tracker
}

func (s *RedisTrackerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisTrackerTestSuite))
}

func (s *RedisTrackerTestSuite) join(id, name string) {
	_, err := s.tracker.Join(s.ctx, &JoinInput{Game: "trivia", ParticipantID: id, DisplayName: name})
	s.Require().NoError(err)
}

func (s *RedisTrackerTestSuite) roster() []string {
	output, err := s.tracker.Roster(s.ctx, &RosterInput{Game: "trivia"})
	s.Require().NoError(err)

	names := make([]string, 0, len(output.Members))
	for _, member := range output.Members {
		names = append(names, member.DisplayName)
	}
	return names
}

func (s *RedisTrackerTestSuite) TestJoinPublishesAndAppearsInRoster() {
	s.mockNotifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change *notify.Change) error {
			s.Equal(notify.TablePresence, change.Table)
			s.Equal(notify.OpUpsert, change.Op)
			return nil
		}).
		Times(2)

	s.join("p2", "zed")
	s.join("p1", "Amy")

	s.Equal([]string{"Amy", "zed"}, s.roster())
}

func (s *RedisTrackerTestSuite) TestExpiredMembersAreDropped() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.join("p1", "Amy")
	s.clock.Advance(5 * time.Second)
	s.join("p2", "Bo")

	s.clock.Advance(6 * time.Second)
	s.Equal([]string{"Bo"}, s.roster())

	// The pruned member is gone for good until they rejoin
	err := s.tracker.Heartbeat(s.ctx, &HeartbeatInput{Game: "trivia", ParticipantID: "p1"})
	s.ErrorIs(err, ErrNotPresent)
}

func (s *RedisTrackerTestSuite) TestPruneKeepsRecordsOfLiveMembers() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.join("p1", "Amy")
	s.join("p2", "Bo")
	s.clock.Advance(11 * time.Second)

	// Amy comes back after her lease ran out but before anyone pruned it
	s.join("p1", "Amy")
	s.Equal([]string{"Amy"}, s.roster())

	keys, err := s.mr.HKeys(membersKey("trivia"))
	s.Require().NoError(err)
	s.Equal([]string{"p1"}, keys)

	s.Require().NoError(s.tracker.Heartbeat(s.ctx, &HeartbeatInput{Game: "trivia", ParticipantID: "p1"}))
	s.clock.Advance(8 * time.Second)
	s.Equal([]string{"Amy"}, s.roster())
}

func (s *RedisTrackerTestSuite) TestHeartbeatExtendsLease() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.join("p1", "Amy")
	s.clock.Advance(8 * time.Second)
	s.Require().NoError(s.tracker.Heartbeat(s.ctx, &HeartbeatInput{Game: "trivia", ParticipantID: "p1"}))
	s.clock.Advance(8 * time.Second)

	s.Equal([]string{"Amy"}, s.roster())
}

func (s *RedisTrackerTestSuite) TestLeave() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	s.join("p1", "Amy")
	s.join("p2", "Bo")
	s.Require().NoError(s.tracker.Leave(s.ctx, &LeaveInput{Game: "trivia", ParticipantID: "p1"}))

	s.Equal([]string{"Bo"}, s.roster())
}

func (s *RedisTrackerTestSuite) TestRostersAreSeparatePerGame() {
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.join("p1", "Amy")
	_, err := s.tracker.Join(s.ctx, &JoinInput{Game: "contest", ParticipantID: "p2", DisplayName: "Bo"})
	s.Require().NoError(err)

	s.Equal([]string{"Amy"}, s.roster())
}

func (s *RedisTrackerTestSuite) TestEmptyRoster() {
	s.Empty(s.roster())
}
