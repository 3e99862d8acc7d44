package contest

// ContestError is an error returned by the contest service
type ContestError string

func (e ContestError) Error() string {
	return string(e)
}

const (
	// ErrMissingEntryInfo is returned when an entry has no title or no photo
	ErrMissingEntryInfo ContestError = "entry needs a name and a photo"

	// ErrUnsupportedImage is returned for photos that are not a raster image
	ErrUnsupportedImage ContestError = "photos must be JPEG, PNG, GIF, WebP or HEIC"

	// ErrInvalidContestType is returned for an unknown contest
	ErrInvalidContestType ContestError = "invalid contest type"

	// ErrInvalidRating is returned when a rating is outside 0..5
	ErrInvalidRating ContestError = "rating must be between 0 and 5"

	// ErrMissingEntry is returned when a vote names no entry
	ErrMissingEntry ContestError = "entry is required"

	// ErrMissingParticipant is returned when no participant is given
	ErrMissingParticipant ContestError = "participant is required"

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig ContestError = "config cannot be nil"

	// ErrNilContestRepo is returned when the contest repository is nil
	ErrNilContestRepo ContestError = "contest repository cannot be nil"

	// ErrNilPhotoStore is returned when the photo store is nil
	ErrNilPhotoStore ContestError = "photo store cannot be nil"
)
