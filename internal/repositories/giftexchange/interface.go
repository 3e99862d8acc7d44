package giftexchange

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange Repository

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// Repository defines the interface for gift exchange entries and the white elephant state
type Repository interface {
	// InsertEntry adds a gift entry with no number
	InsertEntry(ctx context.Context, input *InsertEntryInput) (*models.GiftExchangeEntry, error)

	// ListEntries retrieves entries in creation order
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// SetHostForUser sets is_host on every entry the user holds
	SetHostForUser(ctx context.Context, input *SetHostForUserInput) error

	// AssignNumbers writes a whole number assignment atomically
	AssignNumbers(ctx context.Context, input *AssignNumbersInput) error

	// ClearNumbers sets number to null on every entry
	ClearNumbers(ctx context.Context, input *ClearNumbersInput) error

	// DeleteEntry removes a single entry
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) error

	// DeleteAll removes every entry
	DeleteAll(ctx context.Context, input *DeleteAllInput) error

	// GetState retrieves the white elephant state
	GetState(ctx context.Context, input *GetStateInput) (*models.WhiteElephantState, error)

	// EnsureState creates the white elephant state at turn 1 if it is missing
	EnsureState(ctx context.Context, input *EnsureStateInput) (*models.WhiteElephantState, error)

	// PatchState applies a targeted field update to the white elephant state
	PatchState(ctx context.Context, input *PatchStateInput) (*models.WhiteElephantState, error)

	// IncrementTurn adds delta to current_turn without bounds
	IncrementTurn(ctx context.Context, input *IncrementTurnInput) (*models.WhiteElephantState, error)
}
