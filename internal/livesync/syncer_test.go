package livesync

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type rawCounter struct {
	Count    int
	Deadline time.Time
}

type counterView struct {
	Count       int
	SecondsLeft int
}

type SyncerTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	notifier *notify.RedisNotifier
	clock    *clockwork.FakeClock
	ctx      context.Context
	cancel   context.CancelFunc
	views    chan counterView
	errs     chan error
}

func (s *SyncerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.notifier, err = notify.NewRedis(&notify.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC))
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)
	s.views = make(chan counterView, 16)
	s.errs = make(chan error, 16)
}

func (s *SyncerTestSuite) TearDownTest() {
	s.cancel()
	s.client.Close()
	s.mr.Close()
}

func TestSyncerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncerTestSuite))
}

func (s *SyncerTestSuite) load(ctx context.Context) (*rawCounter, error) {
	value, err := s.client.Get(ctx, "counter").Result()
	if errors.Is(err, redis.Nil) {
		value = "0"
	} else if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}

	return &rawCounter{
		Count:    count,
		Deadline: time.Date(2025, 12, 24, 18, 0, 10, 0, time.UTC),
	}, nil
}

func derive(raw *rawCounter, now time.Time) counterView {
	left := int(raw.Deadline.Sub(now) / time.Second)
	if left < 0 {
		left = 0
	}
	return counterView{Count: raw.Count, SecondsLeft: left}
}

func (s *SyncerTestSuite) start(cfg *Config[*rawCounter, counterView]) *Syncer[*rawCounter, counterView] {
	if cfg.Load == nil {
		cfg.Load = s.load
	}
	cfg.Subscriber = s.notifier
	cfg.Tables = []notify.Table{notify.TableVotes}
	cfg.Derive = derive
	cfg.OnView = func(v counterView) { s.views <- v }
	cfg.OnError = func(err error) { s.errs <- err }
	cfg.Clock = s.clock

	syncer, err := New(cfg)
	s.Require().NoError(err)

	go func() {
		_ = syncer.Run(s.ctx)
	}()

	return syncer
}

func (s *SyncerTestSuite) nextView() counterView {
	select {
	case v := <-s.views:
		return v
	case <-s.ctx.Done():
		s.FailNow("timed out waiting for view")
	}
	return counterView{}
}

func (s *SyncerTestSuite) TestNewValidatesConfig() {
	_, err := New[int, int](nil)
	s.Error(err)

	_, err = New(&Config[int, int]{Subscriber: s.notifier})
	s.Error(err)
}

func (s *SyncerTestSuite) TestInitialLoadAndReloadOnChange() {
	s.Require().NoError(s.client.Set(s.ctx, "counter", 1, 0).Err())
	syncer := s.start(&Config[*rawCounter, counterView]{})

	s.Equal(1, s.nextView().Count)

	s.Require().NoError(s.client.Set(s.ctx, "counter", 7, 0).Err())
	s.Require().NoError(s.notifier.Publish(s.ctx, &notify.Change{Table: notify.TableVotes, Op: notify.OpUpsert}))

	s.Equal(7, s.nextView().Count)

	current, ok := syncer.Current()
	s.True(ok)
	s.Equal(7, current.Count)
}

func (s *SyncerTestSuite) TestChangesOnOtherTablesAreIgnored() {
	s.start(&Config[*rawCounter, counterView]{})
	s.nextView()

	s.Require().NoError(s.notifier.Publish(s.ctx, &notify.Change{Table: notify.TableGiftExchange, Op: notify.OpInsert}))
	s.Require().NoError(s.client.Set(s.ctx, "counter", 2, 0).Err())
	s.Require().NoError(s.notifier.Publish(s.ctx, &notify.Change{Table: notify.TableVotes, Op: notify.OpUpsert}))

	s.Equal(2, s.nextView().Count)
}

func (s *SyncerTestSuite) TestLoadErrorIsReportedAndResyncRecovers() {
	failures := 1
	syncer := s.start(&Config[*rawCounter, counterView]{
		Load: func(ctx context.Context) (*rawCounter, error) {
			if failures > 0 {
				failures--
				return nil, errors.New("store unavailable")
			}
			return s.load(ctx)
		},
	})

	select {
	case err := <-s.errs:
		s.EqualError(err, "store unavailable")
	case <-s.ctx.Done():
		s.FailNow("timed out waiting for error")
	}

	_, ok := syncer.Current()
	s.False(ok)

	syncer.Resync()
	s.Equal(0, s.nextView().Count)
}

func (s *SyncerTestSuite) TestTickRederivesCountdownWithoutReload() {
	loads := 0
	s.start(&Config[*rawCounter, counterView]{
		Tick: time.Second,
		Load: func(ctx context.Context) (*rawCounter, error) {
			loads++
			return s.load(ctx)
		},
	})

	s.Equal(10, s.nextView().SecondsLeft)

	s.Require().NoError(s.clock.BlockUntilContext(s.ctx, 1))
	s.clock.Advance(time.Second)

	s.Equal(9, s.nextView().SecondsLeft)
	s.Equal(1, loads)
}
