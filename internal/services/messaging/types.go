package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/holidayhub/internal/services/whiteelephant"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorKind groups errors that get the same alert
type ErrorKind string

const (
	ErrorKindAlreadyAnswered   ErrorKind = "already_answered"
	ErrorKindHostTaken         ErrorKind = "host_taken"
	ErrorKindNotHost           ErrorKind = "not_host"
	ErrorKindMissingInfo       ErrorKind = "missing_info"
	ErrorKindUnsupportedImage  ErrorKind = "unsupported_image"
	ErrorKindNameNotAllowed    ErrorKind = "name_not_allowed"
	ErrorKindInvalidTransition ErrorKind = "invalid_transition"
	ErrorKindNoGiftEntry       ErrorKind = "no_gift_entry"
	ErrorKindEntriesChanged    ErrorKind = "entries_changed"
	ErrorKindNotReady          ErrorKind = "not_ready"
	ErrorKindInvalidRating     ErrorKind = "invalid_rating"
	ErrorKindTransient         ErrorKind = "transient"
)

// GetJoinMessageInput contains parameters for getting a join message
type GetJoinMessageInput struct {
	DisplayName string

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetJoinMessageOutput contains the generated message
type GetJoinMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetTurnMessageInput describes where a participant stands in the exchange
type GetTurnMessageInput struct {
	Status      whiteelephant.ParticipantStatus
	IsMyTurn    bool
	CurrentTurn int
	MyNumbers   []int
}

// GetTurnMessageOutput contains the generated message
type GetTurnMessageOutput struct {
	Title   string
	Message string
}

// GetAnswerResultMessageInput describes the caller's answer to the revealed question
type GetAnswerResultMessageInput struct {
	Answered  bool
	IsCorrect bool
	Points    int
}

// GetAnswerResultMessageOutput contains the generated message
type GetAnswerResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the alert to show
type GetErrorMessageOutput struct {
	Kind    ErrorKind
	Title   string
	Message string
	Tone    MessageTone

	// Refetch is true when the screen should reload from the store
	Refetch bool
}

// Config contains configuration for the messaging service
type Config struct {
	// Random picks between message variants; defaults to a time-seeded source
	Random *rand.Rand
}
