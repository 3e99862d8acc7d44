package contest

import (
	"context"
)

// Service defines the interface for contest entries and voting
type Service interface {
	// SubmitEntry uploads the photo and creates the entry
	SubmitEntry(ctx context.Context, input *SubmitEntryInput) (*SubmitEntryOutput, error)

	// Rate records the caller's rating or ran-out marker for an entry
	Rate(ctx context.Context, input *RateInput) (*RateOutput, error)

	// Load fetches every row the contest view needs
	Load(ctx context.Context, input *LoadInput) (*Raw, error)
}
