package whiteelephant

// WhiteElephantError is a custom error type for white elephant errors
type WhiteElephantError string

// Error implements the error interface
func (e WhiteElephantError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotHost            WhiteElephantError = "only the host can do that"
	ErrNoGiftEntry        WhiteElephantError = "add a gift to the pool before you can host"
	ErrNoEntries          WhiteElephantError = "there are no gifts to number"
	ErrEntriesChanged     WhiteElephantError = "gifts changed while numbers were being assigned, try again"
	ErrMissingParticipant WhiteElephantError = "participant ID cannot be empty"
	ErrNilConfig          WhiteElephantError = "config cannot be nil"
	ErrNilGiftRepo        WhiteElephantError = "gift exchange repository cannot be nil"
)
