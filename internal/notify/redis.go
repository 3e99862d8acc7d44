package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultChannelPrefix = "holidayhub:changes:"

// Config holds configuration for the Redis notifier
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// ChannelPrefix is prepended to the table name to form the pub/sub channel
	ChannelPrefix string

	// Buffer is the size of each subscription's delivery channel
	Buffer int
}

// RedisNotifier publishes and subscribes to changes over Redis pub/sub
type RedisNotifier struct {
	client *redis.Client
	prefix string
	buffer int
}

// NewRedis creates a new Redis-backed notifier
func NewRedis(cfg *Config) (*RedisNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = defaultChannelPrefix
	}

	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = 64
	}

	return &RedisNotifier{
		client: cfg.RedisClient,
		prefix: prefix,
		buffer: buffer,
	}, nil
}

func (n *RedisNotifier) channel(table Table) string {
	return n.prefix + string(table)
}

// Publish sends a change to every subscriber of change.Table
func (n *RedisNotifier) Publish(ctx context.Context, change *Change) error {
	if change == nil || change.Table == "" {
		return errors.New("change and table cannot be empty")
	}

	if change.At.IsZero() {
		change.At = time.Now().UTC()
	}

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel(change.Table), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change: %w", err)
	}

	return nil
}

// Subscribe listens on the given tables. The returned subscription is live
// once Subscribe returns: every change published afterwards is delivered.
func (n *RedisNotifier) Subscribe(ctx context.Context, tables ...Table) (*Subscription, error) {
	if len(tables) == 0 {
		return nil, errors.New("at least one table is required")
	}

	channels := make([]string, 0, len(tables))
	for _, table := range tables {
		channels = append(channels, n.channel(table))
	}

	ps := n.client.Subscribe(ctx, channels...)

	// Wait for every subscribe confirmation before handing the subscription out
	for range channels {
		reply, err := ps.Receive(ctx)
		if err != nil {
			_ = ps.Close()
			return nil, fmt.Errorf("failed to subscribe: %w", err)
		}
		if _, ok := reply.(*redis.Subscription); !ok {
			_ = ps.Close()
			return nil, fmt.Errorf("unexpected subscribe reply %T", reply)
		}
	}

	sub := &Subscription{
		ps:     ps,
		tables: tables,
		ch:     make(chan *Change, n.buffer),
		done:   make(chan struct{}),
	}
	go sub.run()

	return sub, nil
}

// Subscription is a handle on an open subscription
type Subscription struct {
	ps     *redis.PubSub
	tables []Table
	ch     chan *Change
	done   chan struct{}
	once   sync.Once
	err    error
}

// C delivers changes until the subscription is closed
func (s *Subscription) C() <-chan *Change {
	return s.ch
}

// Tables returns the tables this subscription listens on
func (s *Subscription) Tables() []Table {
	return s.tables
}

// Close unsubscribes and closes C
func (s *Subscription) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.err = s.ps.Close()
	})
	return s.err
}

func (s *Subscription) run() {
	defer close(s.ch)

	for msg := range s.ps.Channel() {
		var change Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			log.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed change notification")
			continue
		}

		select {
		case s.ch <- &change:
		case <-s.done:
			return
		}
	}
}
