package crypto

import (
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrDecryptionFailed is returned when a ciphertext fails Poly1305
// verification. Wrong keys, a wrong nonce and tampering are deliberately
// indistinguishable at this surface.
var ErrDecryptionFailed = errors.New("decryption failed: message authentication failed")

// Decrypt decrypts a message from a sender using authenticated public-key
// encryption. It fails closed: on authentication mismatch no partial
// plaintext is ever returned.
func Decrypt(ciphertext []byte, nonce Nonce, senderPK [PublicKeySize]byte, recipientSK [SecretKeySize]byte) ([]byte, error) {
	shared, err := PrecomputeSharedKey(senderPK, recipientSK)
	if err != nil {
		return nil, err
	}
	defer WipeSharedKey(&shared)

	return DecryptSymmetric(ciphertext, nonce, shared)
}

// DecryptSymmetric decrypts a message with a precomputed or random
// symmetric key. The ciphertext must carry its MAC, so anything shorter
// than 16 bytes is rejected.
func DecryptSymmetric(ciphertext []byte, nonce Nonce, key SharedKey) ([]byte, error) {
	if len(ciphertext) < MACSize {
		return nil, errors.New("ciphertext shorter than authenticator")
	}

	if len(ciphertext) > MaxEncryptionBuffer+MACSize {
		return nil, errors.New("ciphertext too large")
	}

	out, ok := secretbox.Open(nil, ciphertext, (*[NonceSize]byte)(&nonce), (*[SharedKeySize]byte)(&key))
	if !ok {
		return nil, ErrDecryptionFailed
	}

	return out, nil
}
