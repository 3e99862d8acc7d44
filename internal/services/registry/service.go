package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/holidayhub/internal/models"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/rs/zerolog/log"
)

// DefaultBlockedWords keeps names family friendly
var DefaultBlockedWords = []string{
	"shit", "fuck", "bitch", "ass", "damn", "crap", "piss", "dick", "cock", "pussy",
}

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	identities      IdentityStore
	blocked         []string
}

// New creates a new registry
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.IdentityStore == nil {
		return nil, ErrNilIdentityStore
	}

	blocked := cfg.BlockedWords
	if len(blocked) == 0 {
		blocked = DefaultBlockedWords
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		identities:      cfg.IdentityStore,
		blocked:         blocked,
	}, nil
}

// IsNameAllowed reports whether name contains none of the blocked words.
// Matching is a case-insensitive substring check.
func IsNameAllowed(name string, blocked []string) bool {
	lower := strings.ToLower(name)
	for _, word := range blocked {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return false
		}
	}
	return true
}

// Join validates the names locally, creates the participant and saves the
// identity on this device
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, ErrMissingName
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, ErrMissingName
	}

	realName := strings.TrimSpace(input.RealName)
	if realName == "" {
		realName = displayName
	}

	if !IsNameAllowed(displayName, s.blocked) || !IsNameAllowed(realName, s.blocked) {
		return nil, ErrNameNotAllowed
	}

	output, err := s.participantRepo.CreateParticipant(ctx, &participantRepo.CreateParticipantInput{
		DisplayName: displayName,
		RealName:    realName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.identities.SaveIdentity(identityOf(output.Participant)); err != nil {
		return nil, err
	}

	log.Info().Str("participant_id", output.Participant.ID).Str("display_name", displayName).Msg("participant joined")

	return &JoinOutput{Participant: output.Participant}, nil
}

// Verify checks the stored identity against the store. An identity whose
// participant is gone is cleared; a failed lookup keeps it.
func (s *service) Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error) {
	identity := s.identities.Identity()
	if identity == nil {
		return &VerifyOutput{}, nil
	}

	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: identity.ID,
	})
	if errors.Is(err, participantRepo.ErrParticipantNotFound) {
		if err := s.identities.ClearIdentity(); err != nil {
			return nil, err
		}
		log.Info().Str("participant_id", identity.ID).Msg("dropped stale local identity")
		return &VerifyOutput{Dropped: true}, nil
	}
	if err != nil {
		return &VerifyOutput{Identity: identity}, err
	}

	return &VerifyOutput{Identity: identityOf(participant)}, nil
}

// SignOut clears the local identity
func (s *service) SignOut(ctx context.Context, input *SignOutInput) error {
	return s.identities.ClearIdentity()
}

func identityOf(participant *models.Participant) *localstate.Identity {
	return &localstate.Identity{
		ID:          participant.ID,
		DisplayName: participant.DisplayName,
		RealName:    participant.RealName,
	}
}
