// Package id issues correlation and run identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID string. IDs issued by one process sort in issue order,
// which lets a caller tell its newest request apart from stale ones.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), mono)
	if err != nil {
		// Only reachable if the clock runs backwards far enough to
		// exhaust monotonic entropy.
		panic(err)
	}
	return id.String()
}

// Validate checks that s is a well-formed ULID.
func Validate(s string) error {
	if _, err := ulid.ParseStrict(s); err != nil {
		return fmt.Errorf("invalid id %q: %w", s, err)
	}
	return nil
}

// Time returns the issue time embedded in a ULID.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ulid.Time(u.Time()), nil
}
