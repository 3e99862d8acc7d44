package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/livesync"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/presence"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/rs/zerolog/log"
)

// watchSpec describes one live screen
type watchSpec[R, V any] struct {
	game   notify.Game
	load   func(ctx context.Context) (R, error)
	derive func(raw R, now time.Time) V
	render func(w io.Writer, view V)
}

// watch keeps a screen live until ctx is done. Every change re-reads and
// re-derives everything; the one-second tick only moves countdowns.
func watch[R, V any](ctx context.Context, a *app, out io.Writer, identity *localstate.Identity, spec *watchSpec[R, V]) error {
	stopPresence := a.holdPresence(ctx, spec.game, identity)
	defer stopPresence()

	syncer, err := livesync.New(&livesync.Config[R, V]{
		Subscriber: a.notifier,
		Tables:     notify.TablesFor(spec.game),
		Load:       spec.load,
		Derive:     spec.derive,
		OnView: func(view V) {
			fmt.Fprint(out, "\033[H\033[2J")
			spec.render(out, view)
		},
		OnError: func(err error) {
			fmt.Fprintf(out, "! %v\n", a.explain(ctx, err))
		},
		Tick: time.Second,
	})
	if err != nil {
		return err
	}

	err = syncer.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// holdPresence joins the game's roster and renews the lease until the
// returned stop func is called. Failures are only logged.
func (a *app) holdPresence(ctx context.Context, game notify.Game, identity *localstate.Identity) func() {
	join := func() {
		if _, err := a.presence.Join(ctx, &presence.JoinInput{
			Game:          string(game),
			ParticipantID: identity.ID,
			DisplayName:   identity.DisplayName,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to join presence")
		}
	}
	join()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := a.presence.Heartbeat(ctx, &presence.HeartbeatInput{
					Game:          string(game),
					ParticipantID: identity.ID,
				})
				if errors.Is(err, presence.ErrNotPresent) {
					join()
				} else if err != nil {
					log.Warn().Err(err).Msg("failed to renew presence")
				}
			}
		}
	}()

	return func() {
		close(done)

		leaveCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.presence.Leave(leaveCtx, &presence.LeaveInput{
			Game:          string(game),
			ParticipantID: identity.ID,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to leave presence")
		}
	}
}
