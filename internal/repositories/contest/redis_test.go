package contest

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	notifyMocks "github.com/KirkDiggler/holidayhub/internal/notify/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr           *miniredis.Miniredis
	client       *redis.Client
	repo         Repository
	mockCtrl     *gomock.Controller
	mockNotifier *notifyMocks.MockPublisher
	testNow      time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = notifyMocks.NewMockPublisher(s.mockCtrl)

	s.testNow = time.Date(2025, 12, 21, 15, 0, 0, 0, time.UTC)

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Notifier:    s.mockNotifier,
		Clock:       clockwork.NewFakeClockAt(s.testNow),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) expectPublish(table notify.Table, op notify.Op, times int) {
	s.mockNotifier.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change *notify.Change) error {
			s.Equal(table, change.Table)
			s.Equal(op, change.Op)
			return nil
		}).
		Times(times)
}

func (s *RedisRepositoryTestSuite) createEntry(contestType models.ContestType, title string) *models.ContestEntry {
	output, err := s.repo.CreateEntry(context.Background(), &CreateEntryInput{
		Entry: &models.ContestEntry{
			ContestType: contestType,
			Title:       title,
			ImageURL:    "http://localhost/photos/" + title,
			OwnerID:     "owner-1",
		},
	})
	s.Require().NoError(err)
	return output.Entry
}

func rating(n int) *int {
	return &n
}

func (s *RedisRepositoryTestSuite) TestCreateEntryAssignsIncreasingIDs() {
	s.expectPublish(notify.TableContestEntries, notify.OpInsert, 2)

	first := s.createEntry(models.ContestTypeCheese, "Brie")
	second := s.createEntry(models.ContestTypeSweater, "Reindeer")

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
	s.Equal("owner-1", first.RepresentedParticipantID)
	s.True(first.CreatedAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestCreateEntryRejectsUnknownType() {
	_, err := s.repo.CreateEntry(context.Background(), &CreateEntryInput{
		Entry: &models.ContestEntry{ContestType: "pie", Title: "Apple"},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListEntriesByType() {
	s.expectPublish(notify.TableContestEntries, notify.OpInsert, 3)

	s.createEntry(models.ContestTypeCheese, "Brie")
	s.createEntry(models.ContestTypeSweater, "Reindeer")
	s.createEntry(models.ContestTypeCheese, "Gouda")

	all, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Require().NoError(err)
	s.Len(all.Entries, 3)

	cheese, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{ContestType: models.ContestTypeCheese})
	s.Require().NoError(err)
	s.Require().Len(cheese.Entries, 2)
	s.Equal("Brie", cheese.Entries[0].Title)
	s.Equal("Gouda", cheese.Entries[1].Title)
}

func (s *RedisRepositoryTestSuite) TestUpsertVoteReplacesPriorVote() {
	s.expectPublish(notify.TableVotes, notify.OpUpsert, 2)
	ctx := context.Background()

	s.Require().NoError(s.repo.UpsertVote(ctx, &UpsertVoteInput{
		Vote: &models.Vote{EntryID: 1, VoterID: "voter-1", Rating: rating(3)},
	}))
	s.Require().NoError(s.repo.UpsertVote(ctx, &UpsertVoteInput{
		Vote: &models.Vote{EntryID: 1, VoterID: "voter-1", Rating: rating(5)},
	}))

	votes, err := s.repo.ListVotes(ctx, &ListVotesInput{EntryID: 1})
	s.Require().NoError(err)
	s.Require().Len(votes.Votes, 1)
	s.Equal(5, votes.Votes[0].RatingValue())
	s.Equal(models.VoteStatusRated, votes.Votes[0].Status)
}

func (s *RedisRepositoryTestSuite) TestUpsertVoteRanOutDropsRating() {
	s.expectPublish(notify.TableVotes, notify.OpUpsert, 1)
	ctx := context.Background()

	s.Require().NoError(s.repo.UpsertVote(ctx, &UpsertVoteInput{
		Vote: &models.Vote{EntryID: 2, VoterID: "voter-1", Rating: rating(4), Status: models.VoteStatusRanOut},
	}))

	vote, err := s.repo.GetVote(ctx, &GetVoteInput{EntryID: 2, VoterID: "voter-1"})
	s.Require().NoError(err)
	s.Nil(vote.Rating)
	s.False(vote.IsRated())
}

func (s *RedisRepositoryTestSuite) TestGetVoteNotFound() {
	_, err := s.repo.GetVote(context.Background(), &GetVoteInput{EntryID: 1, VoterID: "nobody"})
	s.ErrorIs(err, ErrVoteNotFound)
}

func (s *RedisRepositoryTestSuite) TestListVotesOrdered() {
	s.expectPublish(notify.TableVotes, notify.OpUpsert, 3)
	ctx := context.Background()

	for _, vote := range []*models.Vote{
		{EntryID: 2, VoterID: "a", Rating: rating(1)},
		{EntryID: 1, VoterID: "b", Rating: rating(2)},
		{EntryID: 1, VoterID: "a", Rating: rating(3)},
	} {
		s.Require().NoError(s.repo.UpsertVote(ctx, &UpsertVoteInput{Vote: vote}))
	}

	votes, err := s.repo.ListVotes(ctx, &ListVotesInput{})
	s.Require().NoError(err)
	s.Require().Len(votes.Votes, 3)
	s.Equal(int64(1), votes.Votes[0].EntryID)
	s.Equal("a", votes.Votes[0].VoterID)
	s.Equal("b", votes.Votes[1].VoterID)
	s.Equal(int64(2), votes.Votes[2].EntryID)
}

func (s *RedisRepositoryTestSuite) TestPublishFailureKeepsCommittedVote() {
	ctx := context.Background()
	s.mockNotifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(redis.ErrClosed)

	err := s.repo.UpsertVote(ctx, &UpsertVoteInput{
		Vote: &models.Vote{EntryID: 1, VoterID: "a", Rating: rating(4)},
	})
	s.Require().NoError(err)

	vote, err := s.repo.GetVote(ctx, &GetVoteInput{EntryID: 1, VoterID: "a"})
	s.Require().NoError(err)
	s.Require().NotNil(vote.Rating)
	s.Equal(4, *vote.Rating)
}
