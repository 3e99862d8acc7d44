package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/holidayhub/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// Repository defines the interface for participant persistence
type Repository interface {
	// CreateParticipant stores a new participant under a generated ID
	CreateParticipant(ctx context.Context, input *CreateParticipantInput) (*CreateParticipantOutput, error)

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants retrieves every participant in join order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)
}
