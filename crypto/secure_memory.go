package crypto

import (
	"errors"
	"runtime"
)

// SecureWipe erases the contents of a byte slice containing sensitive data.
// It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	for i := range data {
		data[i] = 0
	}

	// Keep the slice reachable so the zeroing is not optimized away.
	runtime.KeepAlive(data)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// WipeKeyPair securely erases the private key in a KeyPair.
// This should be called when a KeyPair is no longer needed.
func WipeKeyPair(kp *KeyPair) error {
	if kp == nil {
		return errors.New("cannot wipe nil KeyPair")
	}
	return SecureWipe(kp.Private[:])
}

// WipeSharedKey securely erases a precomputed shared key.
func WipeSharedKey(key *SharedKey) {
	if key == nil {
		return
	}
	ZeroBytes(key[:])
}
