package whiteelephant

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	giftRepo "github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	giftRepo giftRepo.Repository
	clock    clock.Clock

	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new white elephant service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GiftRepo == nil {
		return nil, ErrNilGiftRepo
	}

	svc := &service{
		giftRepo: cfg.GiftRepo,
		clock:    cfg.Clock,
		random:   cfg.Random,
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.random == nil {
		svc.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return svc, nil
}

// AddGift puts one more gift in the pool. A participant may add several.
func (s *service) AddGift(ctx context.Context, input *AddGiftInput) (*AddGiftOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	entry, err := s.giftRepo.InsertEntry(ctx, &giftRepo.InsertEntryInput{
		UserID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}

	return &AddGiftOutput{Entry: entry}, nil
}

// ClaimHost promotes the caller's entries. Ghost entries do not count.
func (s *service) ClaimHost(ctx context.Context, input *ClaimHostInput) error {
	if input == nil || input.ParticipantID == "" {
		return ErrMissingParticipant
	}

	mine, err := s.giftRepo.ListEntries(ctx, &giftRepo.ListEntriesInput{UserID: input.ParticipantID})
	if err != nil {
		return err
	}

	valid := 0
	for _, entry := range mine.Entries {
		if !entry.IsGhost() {
			valid++
		}
	}
	if valid == 0 {
		return ErrNoGiftEntry
	}

	if err := s.giftRepo.SetHostForUser(ctx, &giftRepo.SetHostForUserInput{
		UserID: input.ParticipantID,
		IsHost: true,
	}); err != nil {
		if errors.Is(err, giftRepo.ErrEntryNotFound) {
			return ErrNoGiftEntry
		}
		return err
	}

	log.Info().Str("participant_id", input.ParticipantID).Msg("white elephant host claimed")

	return nil
}

func (s *service) requireHost(ctx context.Context, participantID string) error {
	if participantID == "" {
		return ErrMissingParticipant
	}

	mine, err := s.giftRepo.ListEntries(ctx, &giftRepo.ListEntriesInput{UserID: participantID})
	if err != nil {
		return err
	}

	for _, entry := range mine.Entries {
		if entry.IsHost {
			return nil
		}
	}

	return ErrNotHost
}

// Shuffle returns a uniformly random permutation of 1..n (Fisher-Yates)
func Shuffle(n int, random *rand.Rand) []int {
	numbers := make([]int, n)
	for i := range numbers {
		numbers[i] = i + 1
	}

	for i := n - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}

	return numbers
}

// AssignNumbers gives every entry a distinct number in 1..N in one write
func (s *service) AssignNumbers(ctx context.Context, input *AssignNumbersInput) (*AssignNumbersOutput, error) {
	if input == nil {
		return nil, ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return nil, err
	}

	all, err := s.giftRepo.ListEntries(ctx, &giftRepo.ListEntriesInput{})
	if err != nil {
		return nil, err
	}

	if len(all.Entries) == 0 {
		return nil, ErrNoEntries
	}

	s.mu.Lock()
	numbers := Shuffle(len(all.Entries), s.random)
	s.mu.Unlock()

	assignment := make(map[string]int, len(all.Entries))
	for i, entry := range all.Entries {
		assignment[entry.ID] = numbers[i]
	}

	if err := s.giftRepo.AssignNumbers(ctx, &giftRepo.AssignNumbersInput{Numbers: assignment}); err != nil {
		if errors.Is(err, giftRepo.ErrEntriesChanged) {
			return nil, ErrEntriesChanged
		}
		return nil, err
	}

	log.Info().Str("participant_id", input.ParticipantID).Int("entries", len(assignment)).Msg("white elephant numbers assigned")

	return &AssignNumbersOutput{Numbers: assignment}, nil
}

// SetTurn moves the turn counter; any value is accepted
func (s *service) SetTurn(ctx context.Context, input *SetTurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return nil, err
	}

	turn := input.Turn
	state, err := s.giftRepo.PatchState(ctx, &giftRepo.PatchStateInput{
		Patch: &models.WhiteElephantStatePatch{CurrentTurn: &turn},
	})
	if err != nil {
		return nil, err
	}

	return &TurnOutput{State: state}, nil
}

// AdvanceTurn moves the turn counter by delta without bounds
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return nil, err
	}

	state, err := s.giftRepo.IncrementTurn(ctx, &giftRepo.IncrementTurnInput{Delta: input.Delta})
	if err != nil {
		return nil, err
	}

	log.Debug().Int("turn", state.CurrentTurn).Msg("white elephant turn changed")

	return &TurnOutput{State: state}, nil
}

// StartTimer sets the countdown deadline. Nothing happens when it runs out.
func (s *service) StartTimer(ctx context.Context, input *StartTimerInput) (*TurnOutput, error) {
	if input == nil {
		return nil, ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return nil, err
	}

	endsAt := s.clock.Now().Add(TimerDuration).UTC()
	state, err := s.giftRepo.PatchState(ctx, &giftRepo.PatchStateInput{
		Patch: &models.WhiteElephantStatePatch{TimerEndsAt: &endsAt},
	})
	if err != nil {
		return nil, err
	}

	return &TurnOutput{State: state}, nil
}

// ResetNumbers clears every number
func (s *service) ResetNumbers(ctx context.Context, input *ResetNumbersInput) error {
	if input == nil {
		return ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return err
	}

	return s.giftRepo.ClearNumbers(ctx, &giftRepo.ClearNumbersInput{})
}

// Nuke deletes every entry, host entries included
func (s *service) Nuke(ctx context.Context, input *NukeInput) error {
	if input == nil {
		return ErrMissingParticipant
	}

	if err := s.requireHost(ctx, input.ParticipantID); err != nil {
		return err
	}

	if err := s.giftRepo.DeleteAll(ctx, &giftRepo.DeleteAllInput{}); err != nil {
		return err
	}

	log.Warn().Str("participant_id", input.ParticipantID).Msg("white elephant entries deleted")

	return nil
}

// Refresh deletes the caller's ghost entries without asking, then reads
// everything. The read happens after the delete so a concurrent refresh
// deleting the same row is harmless.
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*Raw, error) {
	if input != nil && input.ParticipantID != "" {
		mine, err := s.giftRepo.ListEntries(ctx, &giftRepo.ListEntriesInput{UserID: input.ParticipantID})
		if err != nil {
			return nil, err
		}

		for _, entry := range mine.Entries {
			if !entry.IsGhost() {
				continue
			}

			err := s.giftRepo.DeleteEntry(ctx, &giftRepo.DeleteEntryInput{EntryID: entry.ID})
			if err != nil && !errors.Is(err, giftRepo.ErrEntryNotFound) {
				log.Warn().Err(err).Str("entry_id", entry.ID).Msg("failed to delete ghost gift entry")
				continue
			}
			log.Info().Str("entry_id", entry.ID).Str("participant_id", input.ParticipantID).Msg("deleted ghost gift entry")
		}
	}

	entries, err := s.giftRepo.ListEntries(ctx, &giftRepo.ListEntriesInput{})
	if err != nil {
		return nil, err
	}

	state, err := s.giftRepo.EnsureState(ctx, &giftRepo.EnsureStateInput{})
	if err != nil {
		return nil, err
	}

	return &Raw{
		Entries: entries.Entries,
		State:   state,
	}, nil
}
