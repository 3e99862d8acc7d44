package livesync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ErrSubscriptionClosed is returned by Run when the change feed ends
var ErrSubscriptionClosed = errors.New("change subscription closed")

// Config wires a Syncer. R is the raw rows a screen depends on and V is the
// view derived from them.
type Config[R, V any] struct {
	Subscriber notify.Subscriber
	Tables     []notify.Table

	// Load fetches every raw row the view needs
	Load func(ctx context.Context) (R, error)

	// Derive must be pure: the same raw rows and time give the same view
	Derive func(raw R, now time.Time) V

	// OnView receives every derived view
	OnView func(view V)

	// OnError receives load failures; they never stop the syncer
	OnError func(err error)

	// Tick re-derives from the last raw rows so countdowns move; zero disables it
	Tick time.Duration

	// Clock defaults to the system clock
	Clock clockwork.Clock
}

// Syncer keeps a view current by re-reading everything on each change
type Syncer[R, V any] struct {
	cfg    Config[R, V]
	clock  clockwork.Clock
	resync chan struct{}

	mu     sync.Mutex
	raw    R
	view   V
	loaded bool
}

// New creates a syncer; nothing happens until Run
func New[R, V any](cfg *Config[R, V]) (*Syncer[R, V], error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Subscriber == nil {
		return nil, errors.New("subscriber cannot be nil")
	}

	if len(cfg.Tables) == 0 {
		return nil, errors.New("at least one table is required")
	}

	if cfg.Load == nil || cfg.Derive == nil {
		return nil, errors.New("load and derive cannot be nil")
	}

	s := &Syncer[R, V]{
		cfg:    *cfg,
		clock:  cfg.Clock,
		resync: make(chan struct{}, 1),
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.cfg.OnView == nil {
		s.cfg.OnView = func(V) {}
	}
	if s.cfg.OnError == nil {
		s.cfg.OnError = func(err error) {
			log.Warn().Err(err).Msg("sync load failed")
		}
	}

	return s, nil
}

// Run subscribes, performs the initial load, and then reloads on every
// change, resync request and tick until ctx is done. The subscription is
// opened before the first load so no change can fall between them.
func (s *Syncer[R, V]) Run(ctx context.Context) error {
	sub, err := s.cfg.Subscriber.Subscribe(ctx, s.cfg.Tables...)
	if err != nil {
		return err
	}
	defer sub.Close()

	s.reload(ctx)

	var tick <-chan time.Time
	if s.cfg.Tick > 0 {
		ticker := s.clock.NewTicker(s.cfg.Tick)
		defer ticker.Stop()
		tick = ticker.Chan()
	}

	changes := sub.C()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case change, ok := <-changes:
			if !ok {
				return ErrSubscriptionClosed
			}
			log.Debug().Str("table", string(change.Table)).Str("op", string(change.Op)).Msg("change received")
			drain(changes)
			s.reload(ctx)

		case <-s.resync:
			s.reload(ctx)

		case <-tick:
			s.rederive()
		}
	}
}

// Resync asks Run for a full re-fetch, e.g. after a failed write or when
// the client regains focus. It never blocks.
func (s *Syncer[R, V]) Resync() {
	select {
	case s.resync <- struct{}{}:
	default:
	}
}

// Current returns the last derived view
func (s *Syncer[R, V]) Current() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view, s.loaded
}

func (s *Syncer[R, V]) reload(ctx context.Context) {
	raw, err := s.cfg.Load(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.cfg.OnError(err)
		}
		return
	}

	view := s.cfg.Derive(raw, s.clock.Now())

	s.mu.Lock()
	s.raw = raw
	s.view = view
	s.loaded = true
	s.mu.Unlock()

	s.cfg.OnView(view)
}

func (s *Syncer[R, V]) rederive() {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	view := s.cfg.Derive(s.raw, s.clock.Now())
	s.view = view
	s.mu.Unlock()

	s.cfg.OnView(view)
}

// drain coalesces a burst of changes into one reload
func drain(changes <-chan *notify.Change) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
