package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
)

// Sha256 computes the SHA-256 digest of data.
func Sha256(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// Sha512 computes the SHA-512 digest of data.
func Sha512(data []byte) [sha512.Size]byte {
	return sha512.Sum512(data)
}
