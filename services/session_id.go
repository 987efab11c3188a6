package services

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newSessionID returns a ULID for stylist and quick-view session handles.
func newSessionID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
