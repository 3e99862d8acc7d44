package models

import (
	"time"
)

// ContestType identifies which contest an entry competes in
type ContestType string

const (
	// ContestTypeCheese is the cheese board contest
	ContestTypeCheese ContestType = "cheese"

	// ContestTypeSweater is the ugly sweater contest
	ContestTypeSweater ContestType = "sweater"
)

// IsValid reports whether the contest type is known
func (t ContestType) IsValid() bool {
	return t == ContestTypeCheese || t == ContestTypeSweater
}

// VoteStatus distinguishes a star rating from a "ran out" marker
type VoteStatus string

const (
	// VoteStatusRated is a regular star rating
	VoteStatusRated VoteStatus = "rated"

	// VoteStatusRanOut marks that the item ran out before the voter tried it
	VoteStatusRanOut VoteStatus = "ran_out"
)

// ContestEntry is a submission to one of the contests
type ContestEntry struct {
	// ID is assigned by the store in creation order
	ID int64 `json:"id"`

	ContestType ContestType `json:"contest_type"`
	Title       string      `json:"title"`
	ImageURL    string      `json:"image_url"`

	// OwnerID is the participant who submitted the entry
	OwnerID string `json:"owner_id"`

	// RepresentedParticipantID is who the entry is on behalf of
	RepresentedParticipantID string `json:"represented_participant_id"`

	Description   string   `json:"description"`
	AllergenFlags []string `json:"allergen_flags"`

	CreatedAt time.Time `json:"created_at"`
}

// Vote is one voter's opinion of one entry. There is at most one per (EntryID, VoterID).
type Vote struct {
	EntryID int64  `json:"entry_id"`
	VoterID string `json:"voter_id"`

	// Rating is nil for ran_out votes
	Rating *int       `json:"rating"`
	Status VoteStatus `json:"status"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsRated reports whether the vote contributes to rating aggregates
func (v *Vote) IsRated() bool {
	return v.Status == VoteStatusRated || v.Status == ""
}

// RatingValue returns the rating or zero when there is none
func (v *Vote) RatingValue() int {
	if v.Rating == nil {
		return 0
	}
	return *v.Rating
}
