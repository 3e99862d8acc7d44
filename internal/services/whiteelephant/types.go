package whiteelephant

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/models"
	giftRepo "github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange"
)

// TimerDuration is the fixed length of a pick countdown
const TimerDuration = 30 * time.Second

// ParticipantStatus is where a participant stands in the exchange
type ParticipantStatus string

const (
	// StatusGuestLobby has no gift in the pool yet
	StatusGuestLobby ParticipantStatus = "guest_lobby"

	// StatusGuestWaiting has a gift but no number
	StatusGuestWaiting ParticipantStatus = "guest_waiting"

	// StatusGuestAssigned has at least one number
	StatusGuestAssigned ParticipantStatus = "guest_assigned"

	// StatusSpectator has no gift and numbers are already out
	StatusSpectator ParticipantStatus = "spectator"
)

// Config holds the dependencies of the white elephant service
type Config struct {
	// Repository dependencies
	GiftRepo giftRepo.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// Random drives the shuffle; defaults to a time-seeded source
	Random *rand.Rand
}

// AddGiftInput contains parameters for adding a gift
type AddGiftInput struct {
	ParticipantID string
}

// AddGiftOutput contains the new entry
type AddGiftOutput struct {
	Entry *models.GiftExchangeEntry
}

// ClaimHostInput contains parameters for claiming host
type ClaimHostInput struct {
	ParticipantID string
}

// AssignNumbersInput contains parameters for assigning numbers
type AssignNumbersInput struct {
	ParticipantID string
}

// AssignNumbersOutput maps entry ID to its assigned number
type AssignNumbersOutput struct {
	Numbers map[string]int
}

// SetTurnInput contains the new turn
type SetTurnInput struct {
	ParticipantID string
	Turn          int
}

// AdvanceTurnInput contains the turn delta
type AdvanceTurnInput struct {
	ParticipantID string
	Delta         int
}

// StartTimerInput contains parameters for starting the countdown
type StartTimerInput struct {
	ParticipantID string
}

// TurnOutput contains the state after a turn or timer change
type TurnOutput struct {
	State *models.WhiteElephantState
}

// ResetNumbersInput contains parameters for clearing numbers
type ResetNumbersInput struct {
	ParticipantID string
}

// NukeInput contains parameters for deleting every entry
type NukeInput struct {
	ParticipantID string
}

// RefreshInput identifies whose ghost entries to clean up
type RefreshInput struct {
	ParticipantID string
}

// Raw is every row the white elephant view depends on
type Raw struct {
	Entries []*models.GiftExchangeEntry
	State   *models.WhiteElephantState
}

// View is what one participant's screen shows, derived from Raw
type View struct {
	Status  ParticipantStatus
	IsHost  bool
	HasHost bool

	// Started is true once any real number is assigned
	Started bool

	MyEntries []*models.GiftExchangeEntry

	// MyNumbers is ascending and never contains the ghost sentinel
	MyNumbers []int

	EntryCount  int
	CurrentTurn int

	// InRange is false when the host has moved the turn outside 1..EntryCount
	InRange bool

	// IsMyTurn is true when one of MyNumbers is the current turn
	IsMyTurn bool

	SecondsLeft int
}
