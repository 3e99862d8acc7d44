package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/presence"
	contestRepo "github.com/KirkDiggler/holidayhub/internal/repositories/contest"
	giftRepo "github.com/KirkDiggler/holidayhub/internal/repositories/giftexchange"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	"github.com/KirkDiggler/holidayhub/internal/repositories/photo"
	triviaRepo "github.com/KirkDiggler/holidayhub/internal/repositories/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/contest"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/KirkDiggler/holidayhub/internal/services/messaging"
	"github.com/KirkDiggler/holidayhub/internal/services/registry"
	"github.com/KirkDiggler/holidayhub/internal/services/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/whiteelephant"
	"github.com/redis/go-redis/v9"
)

// errNotJoined is returned by commands that need a local identity
var errNotJoined = errors.New("not joined yet, run `holidayhub join <name>` first")

// app is everything a subcommand may need, built once per invocation
type app struct {
	redis    *redis.Client
	notifier *notify.RedisNotifier
	presence presence.Tracker
	photos   photo.Store
	store    *localstate.Store

	participants  participantRepo.Repository
	registry      registry.Service
	trivia        trivia.Service
	whiteElephant whiteelephant.Service
	contest       contest.Service
	messages      messaging.Service
}

func newApp(cfg *Config) (*app, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})

	a, err := buildApp(cfg, client)
	if err != nil {
		client.Close()
		return nil, err
	}

	return a, nil
}

func buildApp(cfg *Config, client *redis.Client) (*app, error) {
	notifier, err := notify.NewRedis(&notify.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: client,
		Notifier:    notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create participant repository: %w", err)
	}

	contests, err := contestRepo.NewRedis(&contestRepo.Config{
		RedisClient: client,
		Notifier:    notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contest repository: %w", err)
	}

	trivias, err := triviaRepo.NewRedis(&triviaRepo.Config{
		RedisClient: client,
		Notifier:    notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trivia repository: %w", err)
	}

	gifts, err := giftRepo.NewRedis(&giftRepo.Config{
		RedisClient: client,
		Notifier:    notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gift exchange repository: %w", err)
	}

	photos, err := photo.NewRedis(&photo.Config{
		RedisClient: client,
		BaseURL:     cfg.photoBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create photo store: %w", err)
	}

	tracker, err := presence.NewRedis(&presence.Config{
		RedisClient: client,
		Notifier:    notifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create presence tracker: %w", err)
	}

	statePath := cfg.stateFile
	if statePath == "" {
		statePath, err = localstate.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	store, err := localstate.Open(statePath)
	if err != nil {
		return nil, err
	}

	registrySvc, err := registry.New(&registry.Config{
		ParticipantRepo: participants,
		IdentityStore:   store,
	})
	if err != nil {
		return nil, err
	}

	triviaSvc, err := trivia.New(&trivia.Config{
		RoundDuration:   cfg.roundDuration,
		TriviaRepo:      trivias,
		ParticipantRepo: participants,
	})
	if err != nil {
		return nil, err
	}

	whiteElephantSvc, err := whiteelephant.New(&whiteelephant.Config{
		GiftRepo: gifts,
	})
	if err != nil {
		return nil, err
	}

	contestSvc, err := contest.New(&contest.Config{
		ContestRepo:     contests,
		ParticipantRepo: participants,
		PhotoStore:      photos,
	})
	if err != nil {
		return nil, err
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		return nil, err
	}

	return &app{
		redis:         client,
		notifier:      notifier,
		presence:      tracker,
		photos:        photos,
		store:         store,
		participants:  participants,
		registry:      registrySvc,
		trivia:        triviaSvc,
		whiteElephant: whiteElephantSvc,
		contest:       contestSvc,
		messages:      messagingSvc,
	}, nil
}

func (a *app) Close() error {
	return a.redis.Close()
}

// identity verifies the stored identity and returns it, or errNotJoined
func (a *app) identity(ctx context.Context) (*localstate.Identity, error) {
	output, err := a.registry.Verify(ctx, &registry.VerifyInput{})
	if err != nil {
		return nil, err
	}
	if output.Identity == nil {
		return nil, errNotJoined
	}
	return output.Identity, nil
}

// explain turns a service error into the alert text the player sees
func (a *app) explain(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, errNotJoined) {
		return err
	}

	output, msgErr := a.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return err
	}

	return fmt.Errorf("%s: %s (%w)", output.Title, output.Message, err)
}

// withApp builds the app for one command run and always closes it
func withApp(cfg *Config, run func(ctx context.Context, a *app) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.explain(ctx, run(ctx, a))
	}
}

// findParticipant resolves a display name to a participant ID. An empty
// name resolves to the empty ID.
func (a *app) findParticipant(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	output, err := a.participants.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return "", err
	}

	found := ""
	for _, participant := range output.Participants {
		if !strings.EqualFold(participant.DisplayName, name) {
			continue
		}
		if found != "" {
			return "", fmt.Errorf("more than one participant is called %q", name)
		}
		found = participant.ID
	}

	if found == "" {
		return "", fmt.Errorf("no participant is called %q", name)
	}
	return found, nil
}
