package registry

import (
	"github.com/KirkDiggler/holidayhub/internal/models"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
)

// Config holds the dependencies of the registry
type Config struct {
	ParticipantRepo participantRepo.Repository
	IdentityStore   IdentityStore

	// BlockedWords replaces the default list when set
	BlockedWords []string
}

// JoinInput contains the names to join with
type JoinInput struct {
	DisplayName string

	// RealName defaults to the display name
	RealName string
}

// JoinOutput contains the new participant
type JoinOutput struct {
	Participant *models.Participant
}

// VerifyInput contains parameters for verifying the stored identity
type VerifyInput struct {
}

// VerifyOutput contains the identity that is still valid, if any
type VerifyOutput struct {
	Identity *localstate.Identity

	// Dropped is true when a stored identity was cleared
	Dropped bool
}

// SignOutInput contains parameters for signing out
type SignOutInput struct {
}
