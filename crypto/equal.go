package crypto

import "crypto/subtle"

// ConstantTimeEqual compares two byte slices in time independent of where
// the first differing byte occurs. It returns false for slices of unequal
// length; the length itself is not secret.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// PublicKeyEqual compares two public keys in constant time.
func PublicKeyEqual(a, b [PublicKeySize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
