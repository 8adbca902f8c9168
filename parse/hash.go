package parse

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// HashContent returns a fast, non-cryptographic fingerprint of text, used as
// a cache key. It is stable for identical input within a process run; it
// carries no collision guarantee beyond what cache keying needs and must not
// be used for anything security-sensitive.
func HashContent(text string) string {
	return strconv.FormatUint(xxhash.Sum64String(text), 16)
}
