// internal/util/id.go
package util

import (
	"crypto/rand"
	"fmt"
)

// GenerateID produces a short human-readable identifier: the given prefix
// followed by 6 uppercase hex characters from a cryptographically strong
// source. Uniqueness is enforced by the storage layer; callers must treat a
// duplicate-key error as retryable and regenerate.
func GenerateID(prefix string) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to fall back to.
		panic(fmt.Sprintf("util: failed to read random bytes: %v", err))
	}
	return fmt.Sprintf("%s%X", prefix, buf)
}
