package registry

// RegistryError is an error returned by the participant registry
type RegistryError string

func (e RegistryError) Error() string {
	return string(e)
}

const (
	// ErrMissingName is returned when the name is empty after trimming
	ErrMissingName RegistryError = "name is required"

	// ErrNameNotAllowed is returned when the name contains a blocked word
	ErrNameNotAllowed RegistryError = "name is not allowed"

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig RegistryError = "config cannot be nil"

	// ErrNilParticipantRepo is returned when the participant repository is nil
	ErrNilParticipantRepo RegistryError = "participant repository cannot be nil"

	// ErrNilIdentityStore is returned when the identity store is nil
	ErrNilIdentityStore RegistryError = "identity store cannot be nil"
)
