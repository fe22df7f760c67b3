package crypt

import (
	"crypto/subtle"
	"fmt"
)

// ConstantTimeEqual compares two equal-length byte sequences without early
// exit, so timing reveals nothing about where a mismatch occurs. A length
// mismatch is a container-format violation (the compared digests are always
// fixed-width), not a password failure.
func ConstantTimeEqual(a, b []byte) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("%w: digest length mismatch (%d != %d)", ErrFormat, len(a), len(b))
	}

	return subtle.ConstantTimeCompare(a, b) == 1, nil
}
