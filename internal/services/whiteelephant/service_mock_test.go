package whiteelephant

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	giftRepo "github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange"
	giftMocks "github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WhiteElephantServiceMockTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGiftRepo *giftMocks.MockRepository
	service      Service
	ctx          context.Context

	testHostID string
}

func (s *WhiteElephantServiceMockTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGiftRepo = giftMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.testHostID = "test-host-id"

	svc, err := New(&Config{
		GiftRepo: s.mockGiftRepo,
		Random:   rand.New(rand.NewSource(1)),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *WhiteElephantServiceMockTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWhiteElephantServiceMockTestSuite(t *testing.T) {
	suite.Run(t, new(WhiteElephantServiceMockTestSuite))
}

func (s *WhiteElephantServiceMockTestSuite) expectHost() {
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{UserID: s.testHostID}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{
			{ID: "gift-1", UserID: s.testHostID, IsHost: true},
		}}, nil)
}

func (s *WhiteElephantServiceMockTestSuite) TestAssignNumbersReportsConcurrentChange() {
	s.expectHost()
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{
			{ID: "gift-1", UserID: s.testHostID, IsHost: true},
			{ID: "gift-2", UserID: "guest"},
		}}, nil)
	s.mockGiftRepo.EXPECT().
		AssignNumbers(s.ctx, gomock.Any()).
		Return(giftRepo.ErrEntriesChanged)

	_, err := s.service.AssignNumbers(s.ctx, &AssignNumbersInput{ParticipantID: s.testHostID})

	s.ErrorIs(err, ErrEntriesChanged)
}

func (s *WhiteElephantServiceMockTestSuite) TestAssignNumbersWithoutEntries() {
	s.expectHost()
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{}}, nil)

	_, err := s.service.AssignNumbers(s.ctx, &AssignNumbersInput{ParticipantID: s.testHostID})

	s.ErrorIs(err, ErrNoEntries)
}

func (s *WhiteElephantServiceMockTestSuite) TestClaimHostLostEntriesRace() {
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{UserID: s.testHostID}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{
			{ID: "gift-1", UserID: s.testHostID},
		}}, nil)
	s.mockGiftRepo.EXPECT().
		SetHostForUser(s.ctx, &giftRepo.SetHostForUserInput{UserID: s.testHostID, IsHost: true}).
		Return(giftRepo.ErrEntryNotFound)

	err := s.service.ClaimHost(s.ctx, &ClaimHostInput{ParticipantID: s.testHostID})

	s.ErrorIs(err, ErrNoGiftEntry)
}

func (s *WhiteElephantServiceMockTestSuite) TestRefreshContinuesWhenGhostDeleteFails() {
	ghost := models.GhostNumber
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{UserID: "guest"}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{
			{ID: "ghost-1", UserID: "guest", Number: &ghost},
			{ID: "ghost-2", UserID: "guest", Number: &ghost},
		}}, nil)
	s.mockGiftRepo.EXPECT().
		DeleteEntry(s.ctx, &giftRepo.DeleteEntryInput{EntryID: "ghost-1"}).
		Return(errors.New("connection reset"))
	s.mockGiftRepo.EXPECT().
		DeleteEntry(s.ctx, &giftRepo.DeleteEntryInput{EntryID: "ghost-2"}).
		Return(nil)
	s.mockGiftRepo.EXPECT().
		ListEntries(s.ctx, &giftRepo.ListEntriesInput{}).
		Return(&giftRepo.ListEntriesOutput{Entries: []*models.GiftExchangeEntry{
			{ID: "ghost-1", UserID: "guest", Number: &ghost},
		}}, nil)
	s.mockGiftRepo.EXPECT().
		EnsureState(s.ctx, gomock.Any()).
		Return(&models.WhiteElephantState{CurrentTurn: 1}, nil)

	raw, err := s.service.Refresh(s.ctx, &RefreshInput{ParticipantID: "guest"})

	s.Require().NoError(err)
	s.Len(raw.Entries, 1)
	s.Equal(StatusGuestWaiting, DeriveView(raw, "guest", time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)).Status)
}
