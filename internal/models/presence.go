package models

import (
	"time"
)

// PresenceMember is an ephemeral roster entry for a connected client
type PresenceMember struct {
	ParticipantID string    `json:"participant_id"`
	DisplayName   string    `json:"display_name"`
	Avatar        string    `json:"avatar"`
	ExpiresAt     time.Time `json:"expires_at"`
}
