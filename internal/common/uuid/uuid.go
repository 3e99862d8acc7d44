package uuid

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/holidayhub/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence hands out predictable ids (prefix-1, prefix-2, ...) for tests
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewUUID returns the next id in the sequence
func (s *Sequence) NewUUID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.Prefix + "-" + strconv.Itoa(s.next)
}
