package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/standupbot/internal/common/uuid UUID

// UUID creates identifiers for stored responses
type UUID interface {
	NewUUID() string
}

// Random generates version 4 UUIDs
type Random struct{}

// New returns the random generator used in production
func New() *Random {
	return &Random{}
}

// NewUUID returns a new random UUID
func (r *Random) NewUUID() string {
	return uuid.NewString()
}

// Sequence generates predictable IDs such as "response-1", "response-2"
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence returns a generator counting from 1
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewUUID returns the next ID in the sequence
func (s *Sequence) NewUUID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}
