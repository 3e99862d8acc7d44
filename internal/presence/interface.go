package presence

//go:generate mockgen -package=mocks -destination=mocks/mock_tracker.go github.com/KirkDiggler/holidayhub/internal/presence Tracker

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// Tracker keeps a best-effort roster of connected participants per game.
// Nothing in scoring or game state reads it, so callers may ignore its errors.
type Tracker interface {
	// Join announces a participant and starts their lease
	Join(ctx context.Context, input *JoinInput) (*models.PresenceMember, error)

	// Heartbeat extends a participant's lease
	Heartbeat(ctx context.Context, input *HeartbeatInput) error

	// Leave drops a participant immediately
	Leave(ctx context.Context, input *LeaveInput) error

	// Roster returns members whose lease has not expired
	Roster(ctx context.Context, input *RosterInput) (*RosterOutput, error)
}

// JoinInput contains the announcing participant
type JoinInput struct {
	Game          string
	ParticipantID string
	DisplayName   string
	Avatar        string
}

// HeartbeatInput identifies the lease to extend
type HeartbeatInput struct {
	Game          string
	ParticipantID string
}

// LeaveInput identifies who left
type LeaveInput struct {
	Game          string
	ParticipantID string
}

// RosterInput identifies the game
type RosterInput struct {
	Game string
}

// RosterOutput contains live members ordered by display name
type RosterOutput struct {
	Members []*models.PresenceMember
}
