package contest

import (
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/KirkDiggler/holidayhub/internal/livesync"
	"github.com/KirkDiggler/holidayhub/internal/models"
	contestRepo "github.com/KirkDiggler/holidayhub/internal/repositories/contest"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	"github.com/KirkDiggler/holidayhub/internal/repositories/photo"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
)

// PhotoBucket is where entry photos are stored
const PhotoBucket = "contest-photos"

// Config holds the dependencies of the contest service
type Config struct {
	// Repository dependencies
	ContestRepo     contestRepo.Repository
	ParticipantRepo participantRepo.Repository
	PhotoStore      photo.Store

	// PendingTTL bounds how long an unconfirmed vote is shown
	PendingTTL time.Duration

	// Clock and UUIDGenerator default to the system implementations
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SubmitEntryInput contains a new entry and its photo
type SubmitEntryInput struct {
	ParticipantID string
	ContestType   models.ContestType
	Title         string

	// RepresentedParticipantID is who the entry is for; defaults to the caller
	RepresentedParticipantID string

	Description   string
	AllergenFlags []string

	Image            []byte
	ImageExtension   string
	ImageContentType string
}

// SubmitEntryOutput contains the stored entry
type SubmitEntryOutput struct {
	Entry *models.ContestEntry
}

// RateInput contains a vote. Rating is ignored when RanOut is set.
type RateInput struct {
	ParticipantID string
	EntryID       int64
	Rating        int
	RanOut        bool
}

// RateOutput contains the vote as written
type RateOutput struct {
	Vote *models.Vote
}

// LoadInput contains parameters for loading the contest
type LoadInput struct {
	ContestType models.ContestType
}

// Raw is every row the contest view depends on
type Raw struct {
	Entries      []*models.ContestEntry
	Votes        []*models.Vote
	Participants []*models.Participant

	// Pending holds the local client's unconfirmed votes by entry ID
	Pending map[int64]*livesync.Pending[models.Vote]
}

// ViewOptions select who is looking and how the list is ordered
type ViewOptions struct {
	Admin       bool
	ContestType models.ContestType

	// SortKey overrides the default order; admins default to total stars,
	// everyone else to entry ID
	SortKey scoring.SortKey

	// Confidence overrides the Bayesian prior weight
	Confidence float64
}

// EntryView is one row of the contest screen
type EntryView struct {
	Entry *models.ContestEntry

	// RepresentedName is the display name of the participant the entry is for
	RepresentedName string

	// Score is nil unless the viewer is an admin
	Score *scoring.EntryScore

	MyRating *int
	MyStatus models.VoteStatus
}

// View is what one participant's contest screen shows, derived from Raw
type View struct {
	ContestType models.ContestType
	Admin       bool
	GlobalAvg   float64
	Entries     []*EntryView
}
