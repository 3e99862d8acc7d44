package contest

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/holidayhub/internal/common/clock"
	"github.com/KirkDiggler/holidayhub/internal/common/uuid"
	"github.com/KirkDiggler/holidayhub/internal/livesync"
	"github.com/KirkDiggler/holidayhub/internal/models"
	contestRepo "github.com/KirkDiggler/holidayhub/internal/repositories/contest"
	participantRepo "github.com/KirkDiggler/holidayhub/internal/repositories/participant"
	"github.com/KirkDiggler/holidayhub/internal/repositories/photo"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	contestRepo     contestRepo.Repository
	participantRepo participantRepo.Repository
	photoStore      photo.Store
	clock           clock.Clock
	uuid            uuid.UUID

	// pending holds this client's votes that the store has not echoed back yet
	pending *livesync.PendingSet[int64, models.Vote]
}

// New creates a new contest service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ContestRepo == nil {
		return nil, ErrNilContestRepo
	}

	if cfg.PhotoStore == nil {
		return nil, ErrNilPhotoStore
	}

	svc := &service{
		contestRepo:     cfg.ContestRepo,
		participantRepo: cfg.ParticipantRepo,
		photoStore:      cfg.PhotoStore,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		pending:         livesync.NewPendingSet[int64, models.Vote](cfg.PendingTTL),
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.uuid == nil {
		svc.uuid = uuid.New()
	}

	return svc, nil
}

// SubmitEntry validates locally, uploads the photo and then inserts the entry
// pointing at the photo's public URL
func (s *service) SubmitEntry(ctx context.Context, input *SubmitEntryInput) (*SubmitEntryOutput, error) {
	if input == nil {
		return nil, ErrMissingEntryInfo
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len(input.Image) == 0 {
		return nil, ErrMissingEntryInfo
	}

	if input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	if !input.ContestType.IsValid() {
		return nil, ErrInvalidContestType
	}

	ext, contentType, err := photoType(input.ImageExtension, input.ImageContentType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d-%s.%s", s.clock.Now().UnixMilli(), s.uuid.NewUUID(), ext)
	if err := s.photoStore.Upload(ctx, &photo.UploadInput{
		Bucket:      PhotoBucket,
		Key:         key,
		Data:        input.Image,
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	output, err := s.contestRepo.CreateEntry(ctx, &contestRepo.CreateEntryInput{
		Entry: &models.ContestEntry{
			ContestType:              input.ContestType,
			Title:                    title,
			ImageURL:                 s.photoStore.PublicURL(PhotoBucket, key),
			OwnerID:                  input.ParticipantID,
			RepresentedParticipantID: input.RepresentedParticipantID,
			Description:              strings.TrimSpace(input.Description),
			AllergenFlags:            input.AllergenFlags,
		},
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("entry_id", output.Entry.ID).
		Str("contest_type", string(output.Entry.ContestType)).
		Str("owner_id", output.Entry.OwnerID).
		Msg("contest entry submitted")

	return &SubmitEntryOutput{Entry: output.Entry}, nil
}

// Rate shows the vote locally right away, then writes it. A failed write
// drops the local vote so the next load shows the store's value.
func (s *service) Rate(ctx context.Context, input *RateInput) (*RateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	if input.EntryID == 0 {
		return nil, ErrMissingEntry
	}

	vote := models.Vote{
		EntryID: input.EntryID,
		VoterID: input.ParticipantID,
		Status:  models.VoteStatusRated,
	}
	if input.RanOut {
		vote.Status = models.VoteStatusRanOut
	} else {
		if input.Rating < 0 || input.Rating > 5 {
			return nil, ErrInvalidRating
		}
		rating := input.Rating
		vote.Rating = &rating
	}

	now := s.clock.Now()
	vote.UpdatedAt = now.UTC()
	s.pending.Put(input.EntryID, vote, now)

	if err := s.contestRepo.UpsertVote(ctx, &contestRepo.UpsertVoteInput{Vote: &vote}); err != nil {
		s.pending.Drop(input.EntryID)
		return nil, err
	}

	return &RateOutput{Vote: &vote}, nil
}

// Load reads entries, votes and participants and attaches this client's
// pending votes
func (s *service) Load(ctx context.Context, input *LoadInput) (*Raw, error) {
	listInput := &contestRepo.ListEntriesInput{}
	if input != nil {
		listInput.ContestType = input.ContestType
	}

	entries, err := s.contestRepo.ListEntries(ctx, listInput)
	if err != nil {
		return nil, err
	}

	votes, err := s.contestRepo.ListVotes(ctx, &contestRepo.ListVotesInput{})
	if err != nil {
		return nil, err
	}

	raw := &Raw{
		Entries:      entries.Entries,
		Votes:        votes.Votes,
		Participants: []*models.Participant{},
		Pending:      s.pending.Snapshot(s.clock.Now()),
	}

	if s.participantRepo != nil {
		participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
		if err != nil {
			return nil, err
		}
		raw.Participants = participants.Participants
	}

	return raw, nil
}

// photoType resolves the stored extension and content type of an upload.
// Both must name a raster image.
func photoType(extension, contentType string) (string, string, error) {
	ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(extension)), ".")
	if ext == "" {
		ext = "jpg"
	}

	expected, ok := photo.RasterTypes[ext]
	if !ok {
		return "", "", ErrUnsupportedImage
	}

	if contentType == "" {
		return ext, expected, nil
	}

	mediaType, ok := photo.RasterMediaType(contentType)
	if !ok {
		return "", "", ErrUnsupportedImage
	}

	return ext, mediaType, nil
}
