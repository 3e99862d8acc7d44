package registry

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
)

// Service defines the interface for joining the party on this device
type Service interface {
	// Join creates a participant and remembers it locally
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Verify drops a stored identity whose participant no longer exists
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)

	// SignOut forgets the local identity only
	SignOut(ctx context.Context, input *SignOutInput) error
}

// IdentityStore is where the device keeps who it joined as
type IdentityStore interface {
	Identity() *localstate.Identity
	SaveIdentity(identity *localstate.Identity) error
	ClearIdentity() error
}
