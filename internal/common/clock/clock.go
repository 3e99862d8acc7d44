package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the narrow time source the services depend on. Both
// clockwork.NewRealClock() and clockwork.NewFakeClock() satisfy it.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/holidayhub/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// New returns the system clock
func New() clockwork.Clock {
	return clockwork.NewRealClock()
}
