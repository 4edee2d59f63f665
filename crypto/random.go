package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// RandomSource abstracts the CSPRNG for deterministic testing.
// Implementations must be safe for concurrent use.
type RandomSource io.Reader

// defaultRandomSource is the package-level CSPRNG used by every generating
// function. The default is the operating system's entropy source.
var defaultRandomSource RandomSource = rand.Reader

// SetRandomSource sets the package-level random source for testing.
// Pass nil to reset to the operating system CSPRNG.
func SetRandomSource(r RandomSource) {
	if r == nil {
		r = rand.Reader
	}
	defaultRandomSource = r
}

// GetRandomSource returns the current package-level random source.
func GetRandomSource() RandomSource {
	return defaultRandomSource
}

// RandomBytes fills buf with cryptographically secure random bytes.
func RandomBytes(buf []byte) error {
	if _, err := io.ReadFull(defaultRandomSource, buf); err != nil {
		return fmt.Errorf("random source exhausted: %w", err)
	}
	return nil
}

// RandomUint32 returns a cryptographically secure random 32-bit integer.
func RandomUint32() (uint32, error) {
	var buf [4]byte
	if err := RandomBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// RandomUint64 returns a cryptographically secure random 64-bit integer.
func RandomUint64() (uint64, error) {
	var buf [8]byte
	if err := RandomBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// NewSymmetricKey generates a fresh random key for symmetric encryption.
func NewSymmetricKey() (SharedKey, error) {
	var key SharedKey
	if err := RandomBytes(key[:]); err != nil {
		return SharedKey{}, err
	}
	return key, nil
}
