package models

import (
	"time"
)

// GhostNumber marks a corrupt or orphaned gift exchange entry
const GhostNumber = -999

// WhiteElephantStateID is the id of the white elephant state row
const WhiteElephantStateID = 1

// GiftExchangeEntry is one gift brought by a participant
type GiftExchangeEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	IsHost bool   `json:"is_host"`

	// Number is nil until the host assigns numbers
	Number *int `json:"number"`

	CreatedAt time.Time `json:"created_at"`
}

// IsGhost reports whether the entry carries the ghost sentinel
func (e *GiftExchangeEntry) IsGhost() bool {
	return e.Number != nil && *e.Number == GhostNumber
}

// HasNumber reports whether a real pick number is assigned
func (e *GiftExchangeEntry) HasNumber() bool {
	return e.Number != nil && *e.Number != GhostNumber
}

// WhiteElephantState holds the turn counter and countdown
type WhiteElephantState struct {
	ID int64 `json:"id"`

	// CurrentTurn is host driven and not clamped to the number of entries
	CurrentTurn int        `json:"current_turn"`
	TimerEndsAt *time.Time `json:"timer_ends_at"`
	Version     int64      `json:"version"`
}

// WhiteElephantStatePatch is a targeted update of the white elephant state
type WhiteElephantStatePatch struct {
	CurrentTurn *int
	TimerEndsAt *time.Time
	ClearTimer  bool
}
