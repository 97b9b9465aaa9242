package util

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID generates a new ULID string. IDs generated within the same
// millisecond stay ordered because the entropy source is monotonic.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewPrefixedID returns prefix followed by a fresh ULID, e.g. "bm_01H...".
func NewPrefixedID(prefix string) string {
	return prefix + NewULID()
}
