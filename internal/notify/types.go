package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Table names a group of rows clients can subscribe to
type Table string

const (
	TableParticipants       Table = "participants"
	TableContestEntries     Table = "contest_entries"
	TableVotes              Table = "votes"
	TableTriviaQuestions    Table = "trivia_questions"
	TableTriviaGameState    Table = "trivia_game_state"
	TableTriviaSubmissions  Table = "trivia_submissions"
	TableGiftExchange       Table = "gift_exchange"
	TableWhiteElephantState Table = "white_elephant_state"
	TablePresence           Table = "presence"
)

// Op is the kind of write that produced a change
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
)

// Change is a row-level change notification. It only says what changed;
// subscribers re-read the rows they need.
type Change struct {
	Table Table     `json:"table"`
	Op    Op        `json:"op"`
	Key   string    `json:"key"`
	At    time.Time `json:"at"`
}

// Game groups the tables a game screen listens to
type Game string

const (
	GameTrivia        Game = "trivia"
	GameWhiteElephant Game = "white_elephant"
	GameContest       Game = "contest"
)

// IsValid reports whether the game is known
func (g Game) IsValid() bool {
	_, ok := gameTables[g]
	return ok
}

var gameTables = map[Game][]Table{
	GameTrivia:        {TableTriviaGameState, TableTriviaSubmissions, TableTriviaQuestions, TablePresence},
	GameWhiteElephant: {TableGiftExchange, TableWhiteElephantState},
	GameContest:       {TableVotes, TableContestEntries, TableParticipants},
}

// TablesFor returns the tables a client of the game subscribes to
func TablesFor(game Game) []Table {
	tables := gameTables[game]
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// Publisher fans a change out to every subscriber of its table
//
//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/holidayhub/internal/notify Publisher
type Publisher interface {
	Publish(ctx context.Context, change *Change) error
}

// Subscriber opens subscriptions on one or more tables
type Subscriber interface {
	Subscribe(ctx context.Context, tables ...Table) (*Subscription, error)
}

// Nop drops every change. Used when a repository is built without a notifier.
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(ctx context.Context, change *Change) error {
	return nil
}

// Announce publishes a change for a write that has already committed.
// Failures are logged, not returned.
func Announce(ctx context.Context, publisher Publisher, change *Change) {
	if err := publisher.Publish(ctx, change); err != nil {
		log.Warn().Err(err).
			Str("table", string(change.Table)).
			Str("op", string(change.Op)).
			Str("key", change.Key).
			Msg("failed to publish change")
	}
}
