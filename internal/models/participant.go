package models

import (
	"time"
)

// Participant is a person who joined the event under a chosen display name
type Participant struct {
	// ID is the stable identifier handed out on join
	ID string `json:"id"`

	// DisplayName is the user-chosen, unauthenticated name
	DisplayName string `json:"display_name"`

	// RealName is an optional real name shown to admins
	RealName string `json:"real_name"`

	// CreatedAt is when the participant joined
	CreatedAt time.Time `json:"created_at"`
}
