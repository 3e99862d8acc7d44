package contest

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/holidayhub/internal/repositories/contest Repository

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// Repository defines the interface for contest entries and votes
type Repository interface {
	// CreateEntry stores a new contest entry and assigns its ID
	CreateEntry(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error)

	// ListEntries retrieves entries in ID order, optionally for one contest type
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// UpsertVote writes the vote for (entry, voter), replacing any prior vote
	UpsertVote(ctx context.Context, input *UpsertVoteInput) error

	// GetVote retrieves one voter's vote for one entry
	GetVote(ctx context.Context, input *GetVoteInput) (*models.Vote, error)

	// ListVotes retrieves every vote, optionally for one entry
	ListVotes(ctx context.Context, input *ListVotesInput) (*ListVotesOutput, error)
}
