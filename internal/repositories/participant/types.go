package participant

import "github.com/KirkDiggler/holidayhub/internal/models"

// CreateParticipantInput contains parameters for creating a participant
type CreateParticipantInput struct {
	DisplayName string
	RealName    string
}

// CreateParticipantOutput contains the created participant
type CreateParticipantOutput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct {
}

// ListParticipantsOutput contains the listed participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}
