package whiteelephant

import "context"

// Service defines the interface for white elephant operations
type Service interface {
	// AddGift puts one more gift in the pool for the caller
	AddGift(ctx context.Context, input *AddGiftInput) (*AddGiftOutput, error)

	// ClaimHost promotes the caller's entries to host
	ClaimHost(ctx context.Context, input *ClaimHostInput) error

	// AssignNumbers shuffles 1..N over every entry. Calling it again reshuffles.
	AssignNumbers(ctx context.Context, input *AssignNumbersInput) (*AssignNumbersOutput, error)

	// SetTurn moves the turn counter to an exact value
	SetTurn(ctx context.Context, input *SetTurnInput) (*TurnOutput, error)

	// AdvanceTurn moves the turn counter by a delta, which may be negative
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*TurnOutput, error)

	// StartTimer starts the display countdown
	StartTimer(ctx context.Context, input *StartTimerInput) (*TurnOutput, error)

	// ResetNumbers clears every number, keeping entries and host flags
	ResetNumbers(ctx context.Context, input *ResetNumbersInput) error

	// Nuke deletes every entry
	Nuke(ctx context.Context, input *NukeInput) error

	// Refresh deletes the caller's ghost entries and then loads every raw row
	Refresh(ctx context.Context, input *RefreshInput) (*Raw, error)
}
