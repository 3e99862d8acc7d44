package giftexchange

import "github.com/KirkDiggler/holidayhub/internal/models"

// InsertEntryInput contains the data for a new entry
type InsertEntryInput struct {
	UserID string
	IsHost bool

	// Number is normally nil; set only when importing existing rows
	Number *int
}

// ListEntriesInput contains parameters for listing entries
type ListEntriesInput struct {
	// UserID limits the list to one participant's entries when set
	UserID string
}

// ListEntriesOutput contains entries in creation order
type ListEntriesOutput struct {
	Entries []*models.GiftExchangeEntry
}

// SetHostForUserInput identifies whose entries change host flag
type SetHostForUserInput struct {
	UserID string
	IsHost bool
}

// AssignNumbersInput maps entry ID to its pick number
type AssignNumbersInput struct {
	Numbers map[string]int
}

// ClearNumbersInput contains parameters for clearing all numbers
type ClearNumbersInput struct {
}

// DeleteEntryInput identifies the entry to delete
type DeleteEntryInput struct {
	EntryID string
}

// DeleteAllInput contains parameters for deleting every entry
type DeleteAllInput struct {
}

// GetStateInput contains parameters for reading the white elephant state
type GetStateInput struct {
}

// EnsureStateInput contains parameters for creating the default state
type EnsureStateInput struct {
}

// PatchStateInput contains the targeted update to apply
type PatchStateInput struct {
	Patch *models.WhiteElephantStatePatch
}

// IncrementTurnInput contains the turn delta, which may be negative
type IncrementTurnInput struct {
	Delta int
}
