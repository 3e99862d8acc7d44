package contest

import "github.com/KirkDiggler/holidayhub/internal/models"

// CreateEntryInput contains the entry to create; ID and CreatedAt are assigned
type CreateEntryInput struct {
	Entry *models.ContestEntry
}

// CreateEntryOutput contains the stored entry
type CreateEntryOutput struct {
	Entry *models.ContestEntry
}

// ListEntriesInput filters entries by contest type when set
type ListEntriesInput struct {
	ContestType models.ContestType
}

// ListEntriesOutput contains entries in ascending ID order
type ListEntriesOutput struct {
	Entries []*models.ContestEntry
}

// UpsertVoteInput contains the vote to write
type UpsertVoteInput struct {
	Vote *models.Vote
}

// GetVoteInput identifies a single vote
type GetVoteInput struct {
	EntryID int64
	VoterID string
}

// ListVotesInput filters votes by entry when EntryID is non-zero
type ListVotesInput struct {
	EntryID int64
}

// ListVotesOutput contains votes ordered by entry then voter
type ListVotesOutput struct {
	Votes []*models.Vote
}
