package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	triviaRepo "github.com/KirkDiggler/holidayhub/internal/repositories/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/contest"
	"github.com/KirkDiggler/holidayhub/internal/services/registry"
	"github.com/KirkDiggler/holidayhub/internal/services/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/whiteelephant"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	svc := &service{}
	if cfg != nil {
		svc.rand = cfg.Random
	}
	if svc.rand == nil {
		svc.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return svc, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.Intn(len(messages))]
}

// GetJoinMessage returns a message for when a participant joins the party
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	messages := []string{
		"Welcome to the party, %s! Grab some cheese.",
		"%s has arrived! Someone hide the good gifts.",
		"Look who made it! Merry everything, %s.",
		"%s is here. Let the festivities commence!",
		"Ho ho ho, %s! Your sweater better be ugly.",
	}

	return &GetJoinMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.DisplayName),
		Tone:    tone,
	}, nil
}

// GetTurnMessage returns the white elephant banner for a participant
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch {
	case input.IsMyTurn:
		return &GetTurnMessageOutput{
			Title:   "It's your turn!",
			Message: s.pick([]string{
				"Pick a gift or steal one. No pressure.",
				"Go on, steal something nice.",
				"Everyone is watching. Choose wisely.",
			}),
		}, nil
	case input.Status == whiteelephant.StatusGuestAssigned:
		return &GetTurnMessageOutput{
			Title:   fmt.Sprintf("Now picking: #%d", input.CurrentTurn),
			Message: fmt.Sprintf("Your numbers: %v", input.MyNumbers),
		}, nil
	case input.Status == whiteelephant.StatusGuestWaiting:
		return &GetTurnMessageOutput{
			Title:   "You're in!",
			Message: "Waiting for the host to hand out numbers.",
		}, nil
	case input.Status == whiteelephant.StatusSpectator:
		return &GetTurnMessageOutput{
			Title:   "Spectating",
			Message: "Numbers are out. Enjoy the chaos from the sidelines.",
		}, nil
	default:
		return &GetTurnMessageOutput{
			Title:   "White Elephant",
			Message: "Bring a gift to join the exchange.",
		}, nil
	}
}

// GetAnswerResultMessage returns the line shown once the answer is revealed
func (s *service) GetAnswerResultMessage(ctx context.Context, input *GetAnswerResultMessageInput) (*GetAnswerResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch {
	case !input.Answered:
		return &GetAnswerResultMessageOutput{
			Message: s.pick([]string{
				"Too slow! The elves answered for you. Badly.",
				"No answer? Bold strategy.",
			}),
			Tone: ToneFunny,
		}, nil
	case input.IsCorrect:
		return &GetAnswerResultMessageOutput{
			Message: fmt.Sprintf("Correct! +%d points", input.Points),
			Tone:    ToneCelebration,
		}, nil
	default:
		return &GetAnswerResultMessageOutput{
			Message: s.pick([]string{
				"Not quite. There's always the next one!",
				"Wrong, but with festive spirit.",
			}),
			Tone: ToneEncouraging,
		}, nil
	}
}

type errorCopy struct {
	title    string
	messages []string
	refetch  bool
}

var errorCopies = map[ErrorKind]errorCopy{
	ErrorKindAlreadyAnswered: {
		title:    "Already Answered",
		messages: []string{"You already answered this one. No take-backs!"},
	},
	ErrorKindHostTaken: {
		title:    "Host Taken",
		messages: []string{"Someone else is already running the show."},
		refetch:  true,
	},
	ErrorKindNotHost: {
		title:    "Host Only",
		messages: []string{"Only the host can do that."},
	},
	ErrorKindMissingInfo: {
		title:    "Missing Info",
		messages: []string{"Please provide a name and a photo."},
	},
	ErrorKindUnsupportedImage: {
		title:    "Unsupported Photo",
		messages: []string{"Photos need to be a JPEG, PNG, GIF, WebP or HEIC image."},
	},
	ErrorKindNameNotAllowed: {
		title:    "Naughty List",
		messages: []string{"Let's keep it family friendly!"},
	},
	ErrorKindInvalidTransition: {
		title:    "Not Now",
		messages: []string{"The game has moved on. Refreshing."},
		refetch:  true,
	},
	ErrorKindNoGiftEntry: {
		title:    "No Gift",
		messages: []string{"Add a gift to the pool before you can host."},
	},
	ErrorKindEntriesChanged: {
		title:    "Try Again",
		messages: []string{"Gifts changed while numbers were being drawn. Try again."},
		refetch:  true,
	},
	ErrorKindNotReady: {
		title:    "Not Ready",
		messages: []string{"There's nothing to do here yet."},
		refetch:  true,
	},
	ErrorKindInvalidRating: {
		title:    "Invalid Rating",
		messages: []string{"Ratings go from zero to five stars."},
	},
	ErrorKindTransient: {
		title: "Error",
		messages: []string{
			"Something went wrong! Try again.",
			"The sleigh hit some turbulence. Try again.",
			"Couldn't reach the North Pole. Try again in a moment.",
		},
		refetch: true,
	},
}

// ClassifyError maps an error from any game service to its alert kind.
// Anything unrecognised is treated as a transient store failure.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, trivia.ErrAlreadyAnswered),
		errors.Is(err, triviaRepo.ErrDuplicateSubmission):
		return ErrorKindAlreadyAnswered
	case errors.Is(err, trivia.ErrHostTaken),
		errors.Is(err, triviaRepo.ErrHostAlreadyClaimed):
		return ErrorKindHostTaken
	case errors.Is(err, trivia.ErrNotHost),
		errors.Is(err, whiteelephant.ErrNotHost):
		return ErrorKindNotHost
	case errors.Is(err, contest.ErrMissingEntryInfo),
		errors.Is(err, registry.ErrMissingName),
		errors.Is(err, trivia.ErrMissingAnswer):
		return ErrorKindMissingInfo
	case errors.Is(err, contest.ErrUnsupportedImage):
		return ErrorKindUnsupportedImage
	case errors.Is(err, registry.ErrNameNotAllowed):
		return ErrorKindNameNotAllowed
	case errors.Is(err, trivia.ErrInvalidTransition):
		return ErrorKindInvalidTransition
	case errors.Is(err, whiteelephant.ErrNoGiftEntry):
		return ErrorKindNoGiftEntry
	case errors.Is(err, whiteelephant.ErrEntriesChanged):
		return ErrorKindEntriesChanged
	case errors.Is(err, trivia.ErrNoQuestions),
		errors.Is(err, trivia.ErrNoActiveQuestion),
		errors.Is(err, whiteelephant.ErrNoEntries):
		return ErrorKindNotReady
	case errors.Is(err, contest.ErrInvalidRating):
		return ErrorKindInvalidRating
	default:
		return ErrorKindTransient
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	kind := ClassifyError(input.Err)
	text := errorCopies[kind]

	return &GetErrorMessageOutput{
		Kind:    kind,
		Title:   text.title,
		Message: s.pick(text.messages),
		Tone:    tone,
		Refetch: text.refetch,
	}, nil
}
